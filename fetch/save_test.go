package fetch

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSave(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.bin")
	body := []byte{0x01, 0x02, 0xFF}

	if err := save(body, dest, slog.Default()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("expected %v, got %v", body, got)
	}

	// The temp file must be gone after the rename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the destination file, found %d entries", len(entries))
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nope", "out.bin")

	err := save([]byte("data"), dest, slog.Default())
	if !errors.Is(err, ErrFileIO) {
		t.Errorf("expected ErrFileIO, got: %v", err)
	}
}
