package manifest

import (
	"path/filepath"
	"sort"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad_YAML(t *testing.T) {
	f, err := Load(testPath("extensions.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	kinds := f.Kinds()
	sort.Strings(kinds)
	if len(kinds) != 2 || kinds[0] != "drivers" || kinds[1] != "plugins" {
		t.Fatalf("Kinds = %v, want [drivers plugins]", kinds)
	}

	plugins := f.View("plugins")
	if got := len(plugins.Descriptors()); got != 2 {
		t.Fatalf("plugins count = %d, want 2", got)
	}

	d := plugins.Find("auth-guard")
	if d == nil {
		t.Fatal("Find(auth-guard) = nil")
	}
	if d.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", d.Version, "1.2.0")
	}
	if d.InstallType != InstallRegistry {
		t.Errorf("InstallType = %q, want %q", d.InstallType, InstallRegistry)
	}

	// Inline schemas must decode to JSON-compatible shapes.
	obj, ok := d.Schema.(map[string]any)
	if !ok {
		t.Fatalf("Schema is %T, want map[string]any", d.Schema)
	}
	if obj["type"] != "object" {
		t.Errorf("schema type = %v, want object", obj["type"])
	}

	if d := plugins.Find("no-schema"); d == nil || d.Schema != nil {
		t.Errorf("no-schema descriptor: schema should be absent, got %v", d.Schema)
	}

	drivers := f.View("drivers")
	if d := drivers.Find("pg-driver"); d == nil {
		t.Fatal("Find(pg-driver) = nil")
	} else if path, ok := d.Schema.(string); !ok || path != "schemas/config.schema.json" {
		t.Errorf("pg-driver schema = %v, want a path string", d.Schema)
	}
}

func TestLoad_JSON(t *testing.T) {
	f, err := Load(testPath("extensions.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	d := f.View("plugins").Find("auth-guard")
	if d == nil {
		t.Fatal("Find(auth-guard) = nil")
	}
	if _, ok := d.Schema.(map[string]any); !ok {
		t.Errorf("Schema is %T, want map[string]any", d.Schema)
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestView_FindMissing(t *testing.T) {
	view := NewView("plugins", nil)
	if view.Find("nope") != nil {
		t.Error("Find on empty view should return nil")
	}
	if view.Kind() != "plugins" {
		t.Errorf("Kind = %q, want plugins", view.Kind())
	}
}

func TestNormalizeYAML_NonStringKeys(t *testing.T) {
	in := map[any]any{
		"type": "object",
		1:      "numeric key",
	}
	out, ok := normalizeYAML(in).(map[string]any)
	if !ok {
		t.Fatalf("normalizeYAML returned %T, want map[string]any", normalizeYAML(in))
	}
	if out["1"] != "numeric key" {
		t.Errorf("numeric key not stringified: %v", out)
	}
}
