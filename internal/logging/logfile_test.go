package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLogFile_None(t *testing.T) {
	lf, err := NewLogFile("none")
	if err != nil {
		t.Fatalf("NewLogFile() error = %v", err)
	}
	defer lf.Close()

	if lf.Path != "" {
		t.Errorf("Path should be empty for 'none' output, got %q", lf.Path)
	}
	if lf.Writer() != io.Discard {
		t.Error("Writer should be io.Discard")
	}
}

func TestNewLogFile_Stderr(t *testing.T) {
	for _, output := range []string{"", "-"} {
		lf, err := NewLogFile(output)
		if err != nil {
			t.Fatalf("NewLogFile(%q) error = %v", output, err)
		}
		defer lf.Close()

		if lf.Path != "" {
			t.Errorf("Path should be empty for %q output, got %q", output, lf.Path)
		}
		if lf.Writer() != os.Stderr {
			t.Errorf("Writer should be os.Stderr for %q output", output)
		}
	}
}

func TestNewLogFile_SpecifiedPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "tfcops.log")

	lf, err := NewLogFile(path)
	if err != nil {
		t.Fatalf("NewLogFile() error = %v", err)
	}
	defer lf.Close()

	if lf.Path != path {
		t.Errorf("Path = %q, want %q", lf.Path, path)
	}
	if _, err := lf.Writer().Write([]byte("line\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// Verify the file and its parent directory were created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Log file was not created: %s", path)
	}
}

func TestNewLogFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tfcops.log")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lf, err := NewLogFile(path)
	if err != nil {
		t.Fatalf("NewLogFile() error = %v", err)
	}
	if _, err := lf.Writer().Write([]byte("second\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := lf.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("unexpected file content %q", data)
	}
}
