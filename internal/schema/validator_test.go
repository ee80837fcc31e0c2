package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_ValidSchema(t *testing.T) {
	v := NewValidator(NewRegistry("plugins"))

	schemas := []map[string]any{
		{"type": "object", "properties": map[string]any{"foo": map[string]any{"type": "string"}}},
		{"type": "object", "required": []any{"foo"}, "additionalProperties": false},
		{},
	}
	for _, s := range schemas {
		if err := v.Validate(s); err != nil {
			t.Errorf("Validate(%v) error: %v", s, err)
		}
	}
}

func TestValidator_AsyncSchemaRejected(t *testing.T) {
	v := NewValidator(NewRegistry("plugins"))

	s := map[string]any{
		"$async": true,
		"type":   "object",
		"properties": map[string]any{
			"foo": map[string]any{"type": "string"},
		},
	}

	err := v.Validate(s)
	if err == nil {
		t.Fatal("expected error for $async schema, got nil")
	}
	if KindOf(err) != KindInvalidSchema {
		t.Errorf("KindOf = %q, want %q", KindOf(err), KindInvalidSchema)
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unsupported schema") {
		t.Errorf("error = %q, want an %q prefix", err, "Unsupported schema")
	}
}

func TestValidator_AsyncFalseAccepted(t *testing.T) {
	v := NewValidator(NewRegistry("plugins"))
	if err := v.Validate(map[string]any{"$async": false, "type": "object"}); err != nil {
		t.Errorf("Validate with $async=false error: %v", err)
	}
}

func TestValidator_ResolvesSiblingSchemaRefs(t *testing.T) {
	reg := NewRegistry("plugins")
	if err := reg.Register("base", map[string]any{"type": "object"}); err != nil {
		t.Fatalf("Register(base) error: %v", err)
	}

	ref := map[string]any{"$ref": "hostkit:///plugins/base.json"}

	// A candidate referencing an already-registered sibling validates.
	v := NewValidator(reg)
	if err := v.Validate(ref); err != nil {
		t.Fatalf("Validate with sibling $ref error: %v", err)
	}

	// Validation must not have registered the candidate itself.
	if _, ok := reg.Lookup("candidate"); ok {
		t.Error("validation mutated the registry")
	}
}

func TestValidator_KindsDoNotShareRefNamespace(t *testing.T) {
	plugins := NewRegistry("plugins")
	if err := plugins.Register("base", map[string]any{"type": "object"}); err != nil {
		t.Fatalf("Register(base) error: %v", err)
	}

	// A drivers validator cannot see the plugins namespace.
	v := NewValidator(NewRegistry("drivers"))
	err := v.Validate(map[string]any{"$ref": "hostkit:///plugins/base.json"})
	if KindOf(err) != KindInvalidSchema {
		t.Errorf("KindOf = %q, want %q (err: %v)", KindOf(err), KindInvalidSchema, err)
	}
}

func TestValidator_EngineRejectionWrapped(t *testing.T) {
	v := NewValidator(NewRegistry("plugins"))

	// An unresolvable local $ref fails compilation.
	s := map[string]any{"$ref": "#/$defs/missing"}

	err := v.Validate(s)
	if err == nil {
		t.Fatal("expected error for unresolvable $ref, got nil")
	}
	if KindOf(err) != KindInvalidSchema {
		t.Errorf("KindOf = %q, want %q", KindOf(err), KindInvalidSchema)
	}
	if !strings.HasPrefix(err.Error(), "Unsupported schema") {
		t.Errorf("error = %q, want an %q prefix", err, "Unsupported schema")
	}

	var se *Error
	if !errors.As(err, &se) {
		t.Fatal("expected a schema *Error")
	}
	if se.Val == nil {
		t.Error("expected the original schema as Val")
	}
	if se.Unwrap() == nil {
		t.Error("expected the engine error to be preserved as cause")
	}
}
