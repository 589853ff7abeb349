package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkerIncludesByExtension(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "src", "main.rs"), "fn main() {}\n")
	writeFile(t, filepath.Join(tmpDir, "src", "notes.md"), "# notes\n")

	w := NewWalker(IncludesForExtensions([]string{"rs"}), nil)
	files, err := w.Walk(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if filepath.Base(files[0].Path) != "main.rs" {
		t.Errorf("unexpected file: %s", files[0].Path)
	}
}

func TestWalkerExcludes(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "lib", "app.ex"), "defmodule App do\nend\n")
	writeFile(t, filepath.Join(tmpDir, "generated", "gen.ex"), "defmodule Gen do\nend\n")

	w := NewWalker(IncludesForExtensions([]string{"ex"}), []string{"generated/**"})
	files, err := w.Walk(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if filepath.Base(files[0].Path) != "app.ex" {
		t.Errorf("unexpected file: %s", files[0].Path)
	}
}

func TestWalkerSkipsStateDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "main.py"), "def f():\n    pass\n")
	writeFile(t, filepath.Join(tmpDir, ".smells", "stale.py"), "def g():\n    pass\n")

	w := NewWalker(IncludesForExtensions([]string{"py"}), nil)
	files, err := w.Walk(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
}
