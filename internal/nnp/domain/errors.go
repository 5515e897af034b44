package domain

import "errors"

// Exported error variables allow callers to use errors.Is() for error checking.
var (
	// ErrProfileNotFound indicates the referenced profile id has no metadata entry.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmptyName indicates a user-supplied profile name is blank after trimming.
	ErrEmptyName = errors.New("profile name cannot be empty")

	// ErrSourceUnavailable indicates the Notebook Navigator settings file cannot
	// be read, usually because the plugin is not installed or never configured.
	ErrSourceUnavailable = errors.New("notebook navigator settings unavailable")

	// ErrProfileFileMissing indicates a profile's backing file vanished between
	// startup reconciliation and use.
	ErrProfileFileMissing = errors.New("profile file missing")

	// ErrNoBackup indicates a restore was requested with no backup present.
	ErrNoBackup = errors.New("no backup available")

	// ErrBackupMissing indicates backup metadata was present but its file
	// vanished; the dangling metadata is cleared when this is detected.
	ErrBackupMissing = errors.New("backup file missing")

	// ErrUnexpectedFile indicates a path that should be a folder is occupied by
	// a regular file.
	ErrUnexpectedFile = errors.New("expected a folder")
)
