package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

// File is the on-disk manifest of installed extensions, grouped by kind
// ("plugins", "drivers", ...). YAML and JSON manifests both decode through
// the YAML parser.
type File struct {
	Extensions map[string][]Descriptor `yaml:"extensions" json:"extensions"`
}

// Load reads and parses a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	// Schema fields decoded from YAML need JSON-compatible shapes before
	// they reach the validation engine.
	for kind, descs := range f.Extensions {
		for i := range descs {
			s, err := toJSONValue(normalizeYAML(descs[i].Schema))
			if err != nil {
				return nil, fmt.Errorf("manifest %s: schema of %s %q: %w", path, kind, descs[i].Name, err)
			}
			descs[i].Schema = s
		}
		f.Extensions[kind] = descs
	}

	return &f, nil
}

// toJSONValue round-trips a decoded value through JSON so numbers use the
// schema engine's representation regardless of the decode path.
func toJSONValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// Kinds returns the extension kinds present in the manifest, in map order.
func (f *File) Kinds() []string {
	kinds := make([]string, 0, len(f.Extensions))
	for kind := range f.Extensions {
		kinds = append(kinds, kind)
	}
	return kinds
}

// View returns the read-only per-kind view consumed by the config facade.
func (f *File) View(kind string) *View {
	return &View{kind: kind, descriptors: f.Extensions[kind]}
}

// View is the list of known descriptors for one extension kind.
type View struct {
	kind        string
	descriptors []Descriptor
}

// NewView builds a view directly from descriptors, bypassing a manifest
// file. Used by tests and embedding hosts that keep their own store.
func NewView(kind string, descriptors []Descriptor) *View {
	return &View{kind: kind, descriptors: descriptors}
}

// Kind returns the extension kind this view covers.
func (v *View) Kind() string { return v.kind }

// Descriptors returns the descriptors in manifest order.
func (v *View) Descriptors() []Descriptor { return v.descriptors }

// Find returns the descriptor with the given name, or nil if not present.
func (v *View) Find(name string) *Descriptor {
	for i := range v.descriptors {
		if v.descriptors[i].Name == name {
			return &v.descriptors[i]
		}
	}
	return nil
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. yaml/v3 produces map[string]any for string-keyed maps but falls
// back to map[any]any for anything else, which the schema engine rejects.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
