package schema

import (
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Registry holds one configuration schema per extension name and detects
// conflicting registrations. Each registered schema is also compiled into a
// shared engine under an identifier derived from the extension name, giving
// schemas of one kind a common $ref namespace that other kinds never see.
//
// A Registry is plain mutable state for a single sequential batch; callers
// needing isolation construct a fresh instance or call Reset between batches.
type Registry struct {
	kind     string
	entries  map[string]any
	compiler *jsonschema.Compiler
}

// NewRegistry returns an empty Registry for the given extension kind.
func NewRegistry(kind string) *Registry {
	return &Registry{
		kind:     kind,
		entries:  make(map[string]any),
		compiler: jsonschema.NewCompiler(),
	}
}

// Kind returns the extension kind this registry serves.
func (r *Registry) Kind() string { return r.kind }

// Register stores value under name. Re-registering a structurally equal
// schema is a no-op; a structurally different schema is a conflict and
// leaves the existing entry untouched. Values are expected to come from the
// decoded-JSON domain (maps, slices, strings, bools, numbers, nil); anything
// else never compares equal and is rejected by the engine compile step.
func (r *Registry) Register(name string, value any) error {
	existing, ok := r.entries[name]
	if ok {
		if Equal(existing, value) {
			return nil
		}
		return newError(KindConflict, value,
			"Schema for extension %q conflicts with an existing schema registered under that name", name)
	}

	id := r.resourceID(name)
	if err := r.compiler.AddResource(id, value); err != nil {
		return wrapError(KindInvalidSchema, value, err, "Unsupported schema: %v", err)
	}
	if _, err := r.compiler.Compile(id); err != nil {
		return wrapError(KindInvalidSchema, value, err, "Unsupported schema: %v", err)
	}

	r.entries[name] = value
	return nil
}

// Lookup returns the schema registered under name, if any.
func (r *Registry) Lookup(name string) (any, bool) {
	value, ok := r.entries[name]
	return value, ok
}

// Names returns the registered extension names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops every entry and the engine resources compiled for them. Used
// between independent validation batches, never mid-batch.
func (r *Registry) Reset() {
	r.entries = make(map[string]any)
	r.compiler = jsonschema.NewCompiler()
}

// resourceID derives the engine identifier for an extension's schema.
func (r *Registry) resourceID(name string) string {
	return fmt.Sprintf("hostkit:///%s/%s.json", r.kind, name)
}

// seedCompiler adds every registered schema to c under its engine
// identifier, giving candidate compilations the same $ref namespace the
// shared engine resolves against.
func (r *Registry) seedCompiler(c *jsonschema.Compiler) error {
	for name, value := range r.entries {
		if err := c.AddResource(r.resourceID(name), value); err != nil {
			return fmt.Errorf("adding schema resource for %q: %w", name, err)
		}
	}
	return nil
}
