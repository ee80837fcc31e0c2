package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/descriptor.schema.json
var descriptorSchemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of validating a descriptor against
// the descriptor-level schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/installType")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
	Value   any    // Offending value at Path, or the whole descriptor
}

// getDescriptorSchema compiles the embedded JSON schema once and returns it.
func getDescriptorSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(descriptorSchemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling descriptor schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("descriptor.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding descriptor schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("descriptor.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling descriptor schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateDescriptor checks a full descriptor against the descriptor-level
// schema. A nil descriptor is validated as an empty document and reports the
// missing required fields. The error return covers schema compilation
// failures only; descriptor problems come back as issues.
func ValidateDescriptor(d *Descriptor) (*ValidationResult, error) {
	schema, err := getDescriptorSchema()
	if err != nil {
		return nil, fmt.Errorf("loading descriptor schema: %w", err)
	}

	inst, err := descriptorInstance(d)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr, inst),
	}, nil
}

// descriptorInstance converts a descriptor into the generic JSON value the
// engine validates. Zero-valued optional fields are omitted so that the
// schema's required-field checks see true absence rather than empty strings.
func descriptorInstance(d *Descriptor) (any, error) {
	if d == nil {
		return map[string]any{}, nil
	}

	m := map[string]any{}
	if d.Name != "" {
		m["name"] = d.Name
	}
	if d.PkgName != "" {
		m["pkgName"] = d.PkgName
	}
	if d.Version != "" {
		m["version"] = d.Version
	}
	if d.MainClass != "" {
		m["mainClass"] = d.MainClass
	}
	if d.InstallType != "" {
		m["installType"] = string(d.InstallType)
	}
	if d.InstallSpec != "" {
		m["installSpec"] = d.InstallSpec
	}
	if d.Schema != nil {
		m["schema"] = d.Schema
	}

	// Round-trip through JSON so the instance uses the engine's number
	// representation regardless of how the schema field was decoded.
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("converting descriptor to JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError, inst any) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, inst, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error(), Value: inst}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf
// errors with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, inst any, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
			Value:   valueAt(inst, ve.InstanceLocation),
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, inst, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// valueAt follows an instance location into the validated document.
func valueAt(inst any, location []string) any {
	cur := inst
	for _, seg := range location {
		obj, ok := cur.(map[string]any)
		if !ok {
			return cur
		}
		cur, ok = obj[seg]
		if !ok {
			return nil
		}
	}
	return cur
}
