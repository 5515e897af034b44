package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/paths"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/settings"
)

// slugFallback is used when a name contains no usable characters at all.
const slugFallback = "profile"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks decomposes to NFD and removes combining marks, so accented
// letters slug to their base form ("Déjà Vu" -> "deja-vu").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a filesystem-safe identifier stem from a display name:
// diacritics stripped, lowercased, runs of non [a-z0-9] collapsed into a
// single hyphen, leading/trailing hyphens trimmed.
func Slug(name string) string {
	normalized, _, err := transform.String(stripMarks, name)
	if err != nil {
		normalized = name
	}
	slug := strings.ToLower(normalized)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return slugFallback
	}
	return slug
}

// Resolver answers uniqueness questions against a snapshot of the current
// profile list. It holds no other state; build a fresh one per operation.
type Resolver struct {
	profiles []settings.Profile
}

// NewResolver creates a Resolver over the given profiles.
func NewResolver(profiles []settings.Profile) *Resolver {
	return &Resolver{profiles: profiles}
}

// UniqueName resolves base to a display name unique (case-insensitive) among
// all profiles except excludeID. A blank base becomes "Profile N"; collisions
// resolve as "X (2)", "X (3)", and so on.
func (r *Resolver) UniqueName(base, excludeID string) string {
	name := strings.TrimSpace(base)
	if name == "" {
		name = fmt.Sprintf("Profile %d", len(r.profiles)+1)
	}
	if !r.nameTaken(name, excludeID) {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", name, i)
		if !r.nameTaken(candidate, excludeID) {
			return candidate
		}
	}
}

// UniqueFilename resolves base (with its extension) to a filename unique
// (case-insensitive) among all profiles except excludeID, suffixing the stem
// with "-2", "-3", ... on collision.
func (r *Resolver) UniqueFilename(base, excludeID string) string {
	stem := strings.TrimSuffix(base, paths.ProfileExt)
	candidate := stem + paths.ProfileExt
	if !r.filenameTaken(candidate, excludeID) {
		return candidate
	}
	for i := 2; ; i++ {
		candidate = fmt.Sprintf("%s-%d%s", stem, i, paths.ProfileExt)
		if !r.filenameTaken(candidate, excludeID) {
			return candidate
		}
	}
}

// UniqueID derives a stable profile id from name: its slug, numerically
// suffixed until it collides with no existing id. Ids are never re-derived
// after creation.
func (r *Resolver) UniqueID(name string) string {
	base := Slug(name)
	if !r.idTaken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !r.idTaken(candidate) {
			return candidate
		}
	}
}

func (r *Resolver) nameTaken(name, excludeID string) bool {
	for _, p := range r.profiles {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

func (r *Resolver) filenameTaken(filename, excludeID string) bool {
	for _, p := range r.profiles {
		if p.ID != excludeID && strings.EqualFold(p.Filename, filename) {
			return true
		}
	}
	return false
}

func (r *Resolver) idTaken(id string) bool {
	for _, p := range r.profiles {
		if strings.EqualFold(p.ID, id) {
			return true
		}
	}
	return false
}
