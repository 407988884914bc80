package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScanFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "B.PNG", "c.webp", "d.gif", "e.jpeg", "readme.txt", "data.bin"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	// Images inside subdirectories must not be picked up.
	nested := filepath.Join(dir, "nested")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(nested, "inner.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write nested: %v", err)
	}

	candidates, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(candidates) != 5 {
		t.Fatalf("expected 5 candidates, got %d: %#v", len(candidates), candidates)
	}

	seen := make(map[string]bool)
	for _, candidate := range candidates {
		seen[candidate.FileName] = true
		if candidate.Path != filepath.Join(dir, candidate.FileName) {
			t.Errorf("candidate path %q does not join dir and name", candidate.Path)
		}
	}
	for _, want := range []string{"a.jpg", "B.PNG", "c.webp", "d.gif", "e.jpeg"} {
		if !seen[want] {
			t.Errorf("missing candidate %s", want)
		}
	}
}

func TestScanEmptyDir(t *testing.T) {
	candidates, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(candidates))
	}
}

func TestScanMissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, ErrDirNotFound) {
		t.Fatalf("expected ErrDirNotFound, got %v", err)
	}
}

func TestScanPathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Scan(path); !errors.Is(err, ErrDirNotFound) {
		t.Fatalf("expected ErrDirNotFound, got %v", err)
	}
}
