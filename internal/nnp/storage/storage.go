package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Storage is a thin adapter over the vault filesystem. All content handled
// through it is an opaque byte blob; nothing here parses snapshot contents.
type Storage struct {
	fs afero.Fs
}

// New creates a new Storage backed by the given filesystem.
func New(fs afero.Fs) *Storage {
	return &Storage{fs: fs}
}

// FileSystem returns the underlying filesystem.
func (s *Storage) FileSystem() afero.Fs {
	return s.fs
}

// ReadFile reads the entire file.
func (s *Storage) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}

// WriteFile writes data to path, creating parent directories as needed.
// The write goes through a temp file in the same directory followed by a
// rename, so a crash mid-write never leaves a truncated destination.
func (s *Storage) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Exists checks if a path exists.
func (s *Storage) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}

// Stat returns file information.
func (s *Storage) Stat(path string) (os.FileInfo, error) {
	return s.fs.Stat(path)
}

// MkdirAll creates a directory and any missing parents.
func (s *Storage) MkdirAll(path string) error {
	return s.fs.MkdirAll(path, 0o755)
}

// Remove deletes a file.
func (s *Storage) Remove(path string) error {
	return s.fs.Remove(path)
}

// Rename moves a file, replacing the destination if present.
func (s *Storage) Rename(oldPath, newPath string) error {
	return s.fs.Rename(oldPath, newPath)
}
