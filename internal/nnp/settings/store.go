package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/paths"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/storage"
)

// Store loads and persists the Settings document at a fixed path.
type Store struct {
	storage *storage.Storage
	path    string
	logger  *slog.Logger
}

// NewStore creates a Store persisting to the given path.
func NewStore(storage *storage.Storage, path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{storage: storage, path: path, logger: logger}
}

// Default returns the settings used when nothing has been persisted yet.
func Default() *Settings {
	return &Settings{
		ProfileDirectory: paths.DefaultProfileDir,
		Profiles:         []Profile{},
		Backup:           nil,
	}
}

// Load reads the persisted document, merging it with defaults. A missing or
// malformed document yields defaults rather than an error; individually
// malformed profile entries are dropped.
func (s *Store) Load() (*Settings, error) {
	data, err := s.storage.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read settings %s: %w", s.path, err)
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("settings document is malformed, starting from defaults",
			"path", s.path, "error", err)
		return Default(), nil
	}
	return coerce(&loaded, s.logger), nil
}

// Save persists the document.
func (s *Store) Save(st *Settings) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.storage.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

// coerce fills in defaults for missing or unusable fields.
func coerce(st *Settings, logger *slog.Logger) *Settings {
	st.ProfileDirectory = paths.SanitizeProfileDir(st.ProfileDirectory)

	kept := make([]Profile, 0, len(st.Profiles))
	for _, p := range st.Profiles {
		if p.ID == "" || p.Filename == "" {
			logger.Warn("dropping malformed profile entry", "id", p.ID, "name", p.Name)
			continue
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		kept = append(kept, p)
	}
	st.Profiles = kept

	if st.Backup != nil && st.Backup.CreatedAt == 0 {
		logger.Warn("dropping malformed backup entry")
		st.Backup = nil
	}
	return st
}
