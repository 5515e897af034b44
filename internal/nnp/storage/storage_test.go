package storage

import (
	"os"
	"testing"

	"github.com/spf13/afero"
)

func newTestStorage() (*Storage, afero.Fs) {
	fs := afero.NewMemMapFs()
	return New(fs), fs
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	s, _ := newTestStorage()

	path := "/vault/.obsidian/plugins/notebook-navigator-profiles/profiles/work.json"
	if err := s.WriteFile(path, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestWriteFile_ReplacesExistingContent(t *testing.T) {
	s, _ := newTestStorage()

	path := "/vault/data.json"
	if err := s.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := s.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", data)
	}
}

func TestWriteFile_LeavesNoTempFile(t *testing.T) {
	s, _ := newTestStorage()

	path := "/vault/data.json"
	if err := s.WriteFile(path, []byte("content")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := s.Exists(path + ".tmp")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("temp file should not remain after a successful write")
	}
}

func TestReadFile_MissingReportsNotExist(t *testing.T) {
	s, _ := newTestStorage()

	_, err := s.ReadFile("/nope.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestRename_MovesContent(t *testing.T) {
	s, _ := newTestStorage()

	if err := s.WriteFile("/dir/old.json", []byte("content")); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := s.Rename("/dir/old.json", "/dir/new.json"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	if exists, _ := s.Exists("/dir/old.json"); exists {
		t.Error("old path should be gone")
	}
	data, err := s.ReadFile("/dir/new.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("unexpected content after rename: %q", data)
	}
}

func TestRemove_DeletesFile(t *testing.T) {
	s, _ := newTestStorage()

	if err := s.WriteFile("/dir/file.json", []byte("x")); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := s.Remove("/dir/file.json"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := s.Exists("/dir/file.json"); exists {
		t.Error("file should be gone")
	}
}

func TestStat_DistinguishesFileAndFolder(t *testing.T) {
	s, fs := newTestStorage()

	if err := fs.MkdirAll("/dir", 0o755); err != nil {
		t.Fatalf("setup dir: %v", err)
	}
	if err := s.WriteFile("/dir/file.json", []byte("x")); err != nil {
		t.Fatalf("setup file: %v", err)
	}

	dirInfo, err := s.Stat("/dir")
	if err != nil {
		t.Fatalf("Stat dir: %v", err)
	}
	if !dirInfo.IsDir() {
		t.Error("expected /dir to be a directory")
	}

	fileInfo, err := s.Stat("/dir/file.json")
	if err != nil {
		t.Fatalf("Stat file: %v", err)
	}
	if fileInfo.IsDir() {
		t.Error("expected /dir/file.json to be a file")
	}
}
