package schema

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator checks that a schema value is structurally acceptable before it
// is registered. It is bound to one kind's Registry: candidate compilation
// sees every schema already registered for that kind, so a $ref targeting a
// sibling schema resolves, while other kinds' namespaces stay invisible.
type Validator struct {
	registry *Registry
}

// NewValidator returns a Validator over the given kind's registry.
func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate returns nil when value compiles as a JSON Schema document.
// Asynchronous-schema markers are rejected outright; every other failure is
// whatever the engine refuses to compile. Compilation runs against a fresh
// compiler seeded with the registry's resources, so probing a candidate
// never mutates the kind's shared engine.
func (v *Validator) Validate(value any) error {
	if obj, ok := value.(map[string]any); ok {
		if async, present := obj["$async"]; present {
			if b, isBool := async.(bool); !isBool || b {
				return newError(KindInvalidSchema, value,
					"Unsupported schema: $async schemas are not supported")
			}
		}
	}

	c := jsonschema.NewCompiler()
	if err := v.registry.seedCompiler(c); err != nil {
		return wrapError(KindInvalidSchema, value, err, "Unsupported schema: %v", err)
	}

	// Registered names compile under <name>.json, so this id cannot collide
	// with any extension's resource.
	id := fmt.Sprintf("hostkit:///%s/candidate", v.registry.Kind())
	if err := c.AddResource(id, value); err != nil {
		return wrapError(KindInvalidSchema, value, err, "Unsupported schema: %v", err)
	}
	if _, err := c.Compile(id); err != nil {
		return wrapError(KindInvalidSchema, value, err, "Unsupported schema: %v", err)
	}
	return nil
}
