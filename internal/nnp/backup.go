package nnp

import (
	"fmt"

	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/domain"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/settings"
)

// Single-slot backup of the pre-activation target content. Every activation
// replaces it; there is no history.

// captureBackup writes content to the backup file and records its provenance.
// The file write comes first: if it fails, activation aborts before the
// target is touched.
func (m *Manager) captureBackup(content []byte, source *settings.Profile) error {
	if err := m.store.WriteFile(m.paths.BackupPath(), content); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	backup := &settings.Backup{CreatedAt: m.now().UnixMilli()}
	if source != nil {
		id, name := source.ID, source.Name
		backup.SourceProfileID = &id
		backup.SourceProfileName = &name
	}
	m.settings.Backup = backup
	return nil
}

// RevertBackup writes the backup slot's content back to the target settings
// file. The backup stays valid afterwards; only a vanished backup file clears
// it.
func (m *Manager) RevertBackup() error {
	if m.settings.Backup == nil {
		return domain.ErrNoBackup
	}

	path := m.paths.BackupPath()
	content, err := m.store.ReadFile(path)
	if err != nil {
		// The file went away out-of-band; clear the dangling metadata so the
		// next restore reports NoBackup instead.
		m.settings.Backup = nil
		if perr := m.persist(); perr != nil {
			return perr
		}
		return fmt.Errorf("cannot read %s: %w", path, domain.ErrBackupMissing)
	}

	if err := m.store.WriteFile(m.paths.TargetSettingsPath(), content); err != nil {
		return fmt.Errorf("write target settings: %w", err)
	}
	if err := m.persist(); err != nil {
		return err
	}
	m.logger.Info("backup restored", "path", path)
	if m.refresh != nil {
		m.refresh()
	}
	return nil
}

// reconcileBackup clears backup metadata whose file no longer exists.
func (m *Manager) reconcileBackup() error {
	if m.settings.Backup == nil {
		return nil
	}
	exists, err := m.store.Exists(m.paths.BackupPath())
	if err != nil {
		return fmt.Errorf("stat backup file: %w", err)
	}
	if exists {
		return nil
	}
	m.logger.Info("clearing backup metadata with missing file")
	m.settings.Backup = nil
	return m.persist()
}
