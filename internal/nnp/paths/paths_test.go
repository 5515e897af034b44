package paths

import (
	"path/filepath"
	"testing"
)

func TestBuilderPaths(t *testing.T) {
	b := New("/vault")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"PluginDir", b.PluginDir(), "/vault/.obsidian/plugins/notebook-navigator-profiles"},
		{"SettingsPath", b.SettingsPath(), "/vault/.obsidian/plugins/notebook-navigator-profiles/data.json"},
		{"BackupPath", b.BackupPath(), "/vault/.obsidian/plugins/notebook-navigator-profiles/backup.json"},
		{"ProfileDir", b.ProfileDir("profiles"), "/vault/.obsidian/plugins/notebook-navigator-profiles/profiles"},
		{"ProfilePath", b.ProfilePath("profiles", "work.json"), "/vault/.obsidian/plugins/notebook-navigator-profiles/profiles/work.json"},
		{"TargetSettingsPath", b.TargetSettingsPath(), "/vault/.obsidian/plugins/notebook-navigator/data.json"},
	}
	for _, tt := range tests {
		want := filepath.FromSlash(tt.want)
		if tt.got != want {
			t.Errorf("%s: expected %q, got %q", tt.name, want, tt.got)
		}
	}
}

func TestProfileDir_NestedSubdirectory(t *testing.T) {
	b := New("/vault")
	got := b.ProfileDir("my/profiles")
	want := filepath.FromSlash("/vault/.obsidian/plugins/notebook-navigator-profiles/my/profiles")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitizeProfileDir(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"profiles", "profiles"},
		{"/profiles/", "profiles"},
		{"  nested/dir  ", "nested/dir"},
		{"nested//dir/", "nested/dir"},
		{"back\\slash", "back/slash"},
		{"", "profiles"},
		{"   ", "profiles"},
		{"/", "profiles"},
		{".", "profiles"},
		{"..", "profiles"},
		{"../escape", "profiles"},
	}
	for _, tt := range tests {
		if got := SanitizeProfileDir(tt.input); got != tt.want {
			t.Errorf("SanitizeProfileDir(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}
