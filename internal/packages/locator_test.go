package packages

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirLocator_Locate(t *testing.T) {
	root := t.TempDir()
	pkgDir := filepath.Join(root, "my-pkg")
	if err := os.MkdirAll(filepath.Join(pkgDir, "schemas"), 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(pkgDir, "schemas", "config.schema.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewDirLocator(root)

	abs, err := l.Locate("my-pkg", "schemas/config.schema.json")
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("Locate = %q, want absolute path", abs)
	}
	if filepath.Base(abs) != "config.schema.json" {
		t.Errorf("Locate = %q, want the schema file", abs)
	}
}

func TestDirLocator_NotFound(t *testing.T) {
	l := NewDirLocator(t.TempDir())

	if _, err := l.Locate("my-pkg", "missing.json"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if _, err := l.Locate("no-such-pkg", "config.json"); err == nil {
		t.Fatal("expected error for missing package, got nil")
	}
}

func TestDirLocator_Root(t *testing.T) {
	if got := NewDirLocator("/tmp/pkgs").Root(); got != "/tmp/pkgs" {
		t.Errorf("Root = %q, want %q", got, "/tmp/pkgs")
	}
}
