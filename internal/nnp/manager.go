package nnp

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/domain"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/naming"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/paths"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/settings"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/storage"
)

// Manager orchestrates the profile and backup lifecycle: capturing snapshots
// of the Notebook Navigator settings file, switching between them with a
// single-slot backup, and keeping the persisted index and the filesystem from
// drifting apart.
//
// Operations run one at a time to completion; the Manager performs no
// internal locking and expects a single caller.
type Manager struct {
	store         *storage.Storage
	paths         *paths.Builder
	settingsStore *settings.Store
	settings      *settings.Settings
	registrar     Registrar
	handles       map[string]Handle
	logger        *slog.Logger
	now           func() time.Time
	refresh       func()
}

// NewManager creates a Manager. Call Init before any other method.
func NewManager(store *storage.Storage, builder *paths.Builder, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		store:         store,
		paths:         builder,
		settingsStore: settings.NewStore(store, builder.SettingsPath(), logger),
		handles:       map[string]Handle{},
		logger:        logger,
		now:           time.Now,
	}
}

// SetRegistrar installs the command registrar used for the dynamic
// activate-profile commands. Must be called before Init.
func (m *Manager) SetRegistrar(r Registrar) {
	m.registrar = r
}

// SetNow allows overriding the clock for testing.
func (m *Manager) SetNow(now func() time.Time) {
	if now == nil {
		m.now = time.Now
		return
	}
	m.now = now
}

// SetRefresh installs a hook invoked after the target settings file has been
// rewritten, so the presentation layer can ask for a plugin reload.
func (m *Manager) SetRefresh(refresh func()) {
	m.refresh = refresh
}

// Init loads persisted settings, ensures the storage folders exist, prunes
// metadata whose backing files vanished, and registers the per-profile
// commands.
func (m *Manager) Init() error {
	loaded, err := m.settingsStore.Load()
	if err != nil {
		return err
	}
	m.settings = loaded

	if err := m.ensureFolders(); err != nil {
		return err
	}
	if err := m.reconcileProfiles(); err != nil {
		return err
	}
	if err := m.reconcileBackup(); err != nil {
		return err
	}
	return m.rebuildCommands()
}

// Close unregisters all commands. The manager must not be used afterwards.
func (m *Manager) Close() {
	m.unregisterCommands()
}

// Profiles returns a copy of the current profile list.
func (m *Manager) Profiles() []settings.Profile {
	out := make([]settings.Profile, len(m.settings.Profiles))
	copy(out, m.settings.Profiles)
	return out
}

// Backup returns a copy of the current backup metadata, or nil.
func (m *Manager) Backup() *settings.Backup {
	if m.settings.Backup == nil {
		return nil
	}
	b := *m.settings.Backup
	return &b
}

// ProfileDirectory returns the configured profile subdirectory.
func (m *Manager) ProfileDirectory() string {
	return m.settings.ProfileDirectory
}

// TargetSettingsPath returns the path of the Notebook Navigator settings file.
func (m *Manager) TargetSettingsPath() string {
	return m.paths.TargetSettingsPath()
}

// Create captures the current target settings content as a new profile. A
// blank name gets a generated one; colliding names and filenames resolve with
// numeric suffixes.
func (m *Manager) Create(name string) (settings.Profile, error) {
	resolver := naming.NewResolver(m.settings.Profiles)
	resolvedName := resolver.UniqueName(name, "")

	content, err := m.readTargetSettings()
	if err != nil {
		return settings.Profile{}, err
	}

	filename := resolver.UniqueFilename(naming.Slug(resolvedName)+paths.ProfileExt, "")
	if err := m.store.WriteFile(m.profilePath(filename), content); err != nil {
		return settings.Profile{}, fmt.Errorf("write profile file: %w", err)
	}

	now := m.now().UnixMilli()
	profile := settings.Profile{
		ID:        resolver.UniqueID(resolvedName),
		Name:      resolvedName,
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.settings.Profiles = append(m.settings.Profiles, profile)
	if err := m.persist(); err != nil {
		return settings.Profile{}, err
	}
	if err := m.rebuildCommands(); err != nil {
		return settings.Profile{}, err
	}
	m.logger.Info("profile created", "id", profile.ID, "name", profile.Name, "filename", profile.Filename)
	return profile, nil
}

// Update overwrites the profile's snapshot with the current target settings
// content. Identity is unchanged, so commands are not re-registered.
func (m *Manager) Update(id string) error {
	profile := m.settings.FindProfile(id)
	if profile == nil {
		return fmt.Errorf("profile %q: %w", id, domain.ErrProfileNotFound)
	}

	content, err := m.readTargetSettings()
	if err != nil {
		return err
	}
	if err := m.store.WriteFile(m.profilePath(profile.Filename), content); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}

	profile.UpdatedAt = m.now().UnixMilli()
	if err := m.persist(); err != nil {
		return err
	}
	m.logger.Info("profile updated", "id", profile.ID, "name", profile.Name)
	return nil
}

// Rename changes a profile's display name and re-derives its filename,
// renaming the backing file on disk when it changes. The id never changes.
func (m *Manager) Rename(id, newName string) (settings.Profile, error) {
	profile := m.settings.FindProfile(id)
	if profile == nil {
		return settings.Profile{}, fmt.Errorf("profile %q: %w", id, domain.ErrProfileNotFound)
	}
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return settings.Profile{}, domain.ErrEmptyName
	}

	resolver := naming.NewResolver(m.settings.Profiles)
	resolvedName := resolver.UniqueName(trimmed, id)
	newFilename := resolver.UniqueFilename(naming.Slug(resolvedName)+paths.ProfileExt, id)

	if newFilename != profile.Filename {
		oldPath := m.profilePath(profile.Filename)
		newPath := m.profilePath(newFilename)
		if err := m.store.Rename(oldPath, newPath); err != nil {
			return settings.Profile{}, fmt.Errorf("rename profile file %s: %w", oldPath, err)
		}
	}

	profile.Name = resolvedName
	profile.Filename = newFilename
	profile.UpdatedAt = m.now().UnixMilli()
	if err := m.persist(); err != nil {
		return settings.Profile{}, err
	}
	if err := m.rebuildCommands(); err != nil {
		return settings.Profile{}, err
	}
	m.logger.Info("profile renamed", "id", profile.ID, "name", profile.Name, "filename", profile.Filename)
	return *profile, nil
}

// Delete removes a profile's snapshot file and metadata. A backing file that
// already vanished is tolerated.
func (m *Manager) Delete(id string) error {
	profile := m.settings.FindProfile(id)
	if profile == nil {
		return fmt.Errorf("profile %q: %w", id, domain.ErrProfileNotFound)
	}

	path := m.profilePath(profile.Filename)
	exists, err := m.store.Exists(path)
	if err != nil {
		return fmt.Errorf("stat profile file %s: %w", path, err)
	}
	if exists {
		if err := m.store.Remove(path); err != nil {
			return fmt.Errorf("remove profile file %s: %w", path, err)
		}
	}

	name := profile.Name
	m.settings.RemoveProfile(id)
	if err := m.persist(); err != nil {
		return err
	}
	if err := m.rebuildCommands(); err != nil {
		return err
	}
	m.logger.Info("profile deleted", "id", id, "name", name)
	return nil
}

// Activate replaces the target settings with the profile's snapshot, first
// capturing the pre-activation content into the backup slot. The target is
// never overwritten without a durable backup.
func (m *Manager) Activate(id string) error {
	profile := m.settings.FindProfile(id)
	if profile == nil {
		return fmt.Errorf("profile %q: %w", id, domain.ErrProfileNotFound)
	}

	current, err := m.readTargetSettings()
	if err != nil {
		return err
	}
	if err := m.captureBackup(current, profile); err != nil {
		return err
	}

	profilePath := m.profilePath(profile.Filename)
	content, err := m.store.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", profilePath, domain.ErrProfileFileMissing)
	}
	if err := m.store.WriteFile(m.paths.TargetSettingsPath(), content); err != nil {
		return fmt.Errorf("write target settings: %w", err)
	}

	// Activation made this profile's content the live truth; UpdatedAt tracks
	// that, not just content edits.
	profile.UpdatedAt = m.now().UnixMilli()
	if err := m.persist(); err != nil {
		return err
	}
	m.logger.Info("profile activated", "id", profile.ID, "name", profile.Name)
	if m.refresh != nil {
		m.refresh()
	}
	return nil
}

// readTargetSettings reads the Notebook Navigator settings file.
func (m *Manager) readTargetSettings() ([]byte, error) {
	path := m.paths.TargetSettingsPath()
	content, err := m.store.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s (is the %s plugin installed and configured?): %w",
			path, paths.TargetPluginID, domain.ErrSourceUnavailable)
	}
	return content, nil
}

func (m *Manager) profilePath(filename string) string {
	return m.paths.ProfilePath(m.settings.ProfileDirectory, filename)
}

func (m *Manager) persist() error {
	return m.settingsStore.Save(m.settings)
}

// ensureFolders creates the plugin folder and the profile subfolder. A
// non-folder entry occupying either path is an error, not something to
// silently replace.
func (m *Manager) ensureFolders() error {
	for _, dir := range []string{m.paths.PluginDir(), m.paths.ProfileDir(m.settings.ProfileDirectory)} {
		info, err := m.store.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%w: %s is occupied by a file", domain.ErrUnexpectedFile, dir)
			}
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", dir, err)
		}
		if err := m.store.MkdirAll(dir); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// reconcileProfiles drops metadata whose backing file no longer exists. The
// filesystem is the source of truth for existence; a missing file means the
// user deleted it out-of-band, so pruning is informational, not an error.
func (m *Manager) reconcileProfiles() error {
	kept := make([]settings.Profile, 0, len(m.settings.Profiles))
	pruned := 0
	for _, p := range m.settings.Profiles {
		exists, err := m.store.Exists(m.profilePath(p.Filename))
		if err != nil {
			return fmt.Errorf("stat profile file %s: %w", p.Filename, err)
		}
		if exists {
			kept = append(kept, p)
		} else {
			m.logger.Info("pruning profile with missing file", "id", p.ID, "name", p.Name, "filename", p.Filename)
			pruned++
		}
	}
	if pruned == 0 {
		return nil
	}
	m.settings.Profiles = kept
	if err := m.persist(); err != nil {
		return err
	}
	m.logger.Info("removed profiles with missing files", "count", pruned)
	return nil
}
