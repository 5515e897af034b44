package paths

import (
	"path/filepath"
	"strings"
)

// Directory and file name constants for the plugin layout inside a vault.
const (
	ObsidianDirName   = ".obsidian"
	PluginsDirName    = "plugins"
	PluginID          = "notebook-navigator-profiles"
	TargetPluginID    = "notebook-navigator"
	DataFileName      = "data.json"
	BackupFileName    = "backup.json"
	ProfileExt        = ".json"
	DefaultProfileDir = "profiles"
)

// Builder constructs plugin storage paths relative to a vault directory.
type Builder struct {
	vaultDir string
}

// New creates a Builder for the given vault directory.
func New(vaultDir string) *Builder {
	return &Builder{vaultDir: vaultDir}
}

// VaultDir returns the vault root this builder is anchored to.
func (b *Builder) VaultDir() string {
	return b.vaultDir
}

// PluginDir returns the plugin's own storage directory.
func (b *Builder) PluginDir() string {
	return filepath.Join(b.vaultDir, ObsidianDirName, PluginsDirName, PluginID)
}

// SettingsPath returns the path of the persisted plugin settings document.
func (b *Builder) SettingsPath() string {
	return filepath.Join(b.PluginDir(), DataFileName)
}

// BackupPath returns the path of the single-slot backup file.
func (b *Builder) BackupPath() string {
	return filepath.Join(b.PluginDir(), BackupFileName)
}

// ProfileDir returns the directory holding profile snapshot files.
// profileDirectory is the configured subdirectory, already sanitized.
func (b *Builder) ProfileDir(profileDirectory string) string {
	return filepath.Join(b.PluginDir(), filepath.FromSlash(profileDirectory))
}

// ProfilePath returns the path of a single profile snapshot file.
func (b *Builder) ProfilePath(profileDirectory, filename string) string {
	return filepath.Join(b.ProfileDir(profileDirectory), filename)
}

// TargetSettingsPath returns the path of the Notebook Navigator settings file
// this tool snapshots and overwrites. The file is not owned by this plugin.
func (b *Builder) TargetSettingsPath() string {
	return filepath.Join(b.vaultDir, ObsidianDirName, PluginsDirName, TargetPluginID, DataFileName)
}

// SanitizeProfileDir normalizes a configured profile directory to a clean
// relative path with forward slashes and no leading or trailing separators.
// Empty or escaping values fall back to DefaultProfileDir.
func SanitizeProfileDir(dir string) string {
	cleaned := strings.Trim(strings.ReplaceAll(dir, "\\", "/"), " ")
	cleaned = strings.Trim(cleaned, "/")
	if cleaned == "" {
		return DefaultProfileDir
	}
	cleaned = filepath.ToSlash(filepath.Clean(cleaned))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return DefaultProfileDir
	}
	return cleaned
}
