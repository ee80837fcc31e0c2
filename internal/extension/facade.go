package extension

import (
	"errors"
	"fmt"

	"github.com/hostkit-labs/hostkit/internal/manifest"
	"github.com/hostkit-labs/hostkit/internal/schema"
)

// Problem is one reportable validation failure. Batch checks collect
// problems instead of aborting so one broken extension never hides the rest.
type Problem struct {
	Err string // human-readable description
	Val any    // the offending value
}

// ConfigFacade validates and registers configuration schemas for one
// extension kind. All facades of a kind share the kind's Registry; the
// resolver and validator are private per facade.
type ConfigFacade struct {
	view      *manifest.View
	resolver  *schema.Resolver
	validator *schema.Validator
	registry  *schema.Registry
}

// New builds a facade over a manifest view. The locator resolves schema file
// paths inside installed packages; the registry carries registration state
// across facades and batches of the same kind.
func New(view *manifest.View, locator schema.PackageLocator, registry *schema.Registry) *ConfigFacade {
	return &ConfigFacade{
		view:      view,
		resolver:  schema.NewResolver(locator),
		validator: schema.NewValidator(registry),
		registry:  registry,
	}
}

// Kind returns the extension kind this facade serves.
func (f *ConfigFacade) Kind() string { return f.view.Kind() }

// View returns the manifest view the facade was built from.
func (f *ConfigFacade) View() *manifest.View { return f.view }

// ExtensionDesc formats an extension's display identity as "name@version".
// Pure formatting, no resolution or I/O.
func (f *ConfigFacade) ExtensionDesc(name string, d *manifest.Descriptor) string {
	return fmt.Sprintf("%s@%s", name, d.Version)
}

// ReadExtensionSchema resolves, validates, and registers the schema declared
// by d. The descriptor must carry a schema reference; callers filter
// schema-less extensions before reaching this path, so a missing reference
// is a programming error, not a user-facing failure. The first failing stage
// short-circuits and nothing is registered.
func (f *ConfigFacade) ReadExtensionSchema(name string, d *manifest.Descriptor) error {
	if d == nil || d.Schema == nil {
		return &schema.Error{
			Kind:    schema.KindInvariantViolation,
			Message: fmt.Sprintf("Extension %q has no schema; why is this function being called?", name),
			Val:     d,
		}
	}

	resolved, err := f.resolver.Resolve(d.PkgName, d.Schema)
	if err != nil {
		return err
	}
	if err := f.validator.Validate(resolved.Value); err != nil {
		return err
	}
	return f.registry.Register(name, resolved.Value)
}

// GetSchemaProblems runs the registration path for d and converts each
// failure into a problem record instead of returning an error. A descriptor
// without a schema field yields no problems: schema is optional at this
// layer. A schema that passes every stage also yields no problems.
func (f *ConfigFacade) GetSchemaProblems(d *manifest.Descriptor, name string) []Problem {
	if d == nil || d.Schema == nil {
		return nil
	}

	err := f.ReadExtensionSchema(name, d)
	if err == nil {
		return nil
	}

	var se *schema.Error
	if errors.As(err, &se) {
		return []Problem{{Err: se.Message, Val: se.Val}}
	}
	return []Problem{{Err: err.Error(), Val: d.Schema}}
}

// GetConfigProblems validates the full descriptor, not just its schema
// field: required metadata presence, install type, schema field shape, and
// version well-formedness. It never fails; a nil descriptor is validated as
// an empty one and yields the problems that implies.
func (f *ConfigFacade) GetConfigProblems(d *manifest.Descriptor) []Problem {
	var problems []Problem

	result, err := manifest.ValidateDescriptor(d)
	if err != nil {
		// Descriptor schema failed to compile; report rather than raise.
		return []Problem{{Err: err.Error(), Val: d}}
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = fmt.Sprintf("%s: %s", issue.Path, issue.Message)
		}
		problems = append(problems, Problem{Err: msg, Val: issue.Value})
	}

	if d != nil && d.Version != "" {
		if err := manifest.CheckVersion(d.Version); err != nil {
			problems = append(problems, Problem{
				Err: fmt.Sprintf("Invalid extension version %q; expected semver", d.Version),
				Val: d.Version,
			})
		}
	}

	return problems
}
