package ioutils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "2024", "07")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", dir)
	}

	// Second call must be a no-op.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing directory: %v", err)
	}
}

func TestTouch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.txt")

	if err := Touch(path); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("new file has %d bytes, want empty", len(data))
	}

	// Touch must never truncate existing content.
	if err := os.WriteFile(path, []byte("1 2 3"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Touch(path); err != nil {
		t.Fatalf("Touch on existing file: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "1 2 3" {
		t.Errorf("content after Touch = %q, want %q", data, "1 2 3")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	if Exists(filepath.Join(dir, "missing.txt")) {
		t.Error("Exists reported true for a missing file")
	}

	path := filepath.Join(dir, "input.txt")
	if err := WriteFile(path, []byte("data\n")); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists reported false for a written file")
	}
	if !Exists(dir) {
		t.Error("Exists reported false for a directory")
	}
}
