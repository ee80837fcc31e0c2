package manifest

import (
	"testing"
)

func validDescriptor() *Descriptor {
	return &Descriptor{
		Name:        "auth-guard",
		PkgName:     "auth-guard-pkg",
		Version:     "1.2.0",
		MainClass:   "com.example.AuthGuard",
		InstallType: InstallRegistry,
		InstallSpec: "auth-guard-pkg@^1.0.0",
	}
}

func TestValidateDescriptor_Valid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Descriptor)
	}{
		{"no schema", func(d *Descriptor) {}},
		{"inline schema", func(d *Descriptor) { d.Schema = map[string]any{"type": "object"} }},
		{"path schema", func(d *Descriptor) { d.Schema = "config.schema.json" }},
		{"no installSpec", func(d *Descriptor) { d.InstallSpec = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			tt.mutate(d)
			result, err := ValidateDescriptor(d)
			if err != nil {
				t.Fatalf("ValidateDescriptor error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues: %v", result.Issues)
			}
		})
	}
}

func TestValidateDescriptor_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Descriptor)
	}{
		{"missing name", func(d *Descriptor) { d.Name = "" }},
		{"missing pkgName", func(d *Descriptor) { d.PkgName = "" }},
		{"missing version", func(d *Descriptor) { d.Version = "" }},
		{"missing mainClass", func(d *Descriptor) { d.MainClass = "" }},
		{"missing installType", func(d *Descriptor) { d.InstallType = "" }},
		{"unknown installType", func(d *Descriptor) { d.InstallType = "carrier-pigeon" }},
		{"array schema field", func(d *Descriptor) { d.Schema = []any{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			tt.mutate(d)
			result, err := ValidateDescriptor(d)
			if err != nil {
				t.Fatalf("ValidateDescriptor error: %v", err)
			}
			if result.Valid {
				t.Fatalf("expected issues for %s, got valid", tt.name)
			}
			if len(result.Issues) == 0 {
				t.Fatalf("expected at least one issue for %s", tt.name)
			}
			for _, issue := range result.Issues {
				if issue.Message == "" {
					t.Errorf("issue with empty message: %+v", issue)
				}
			}
		})
	}
}

func TestValidateDescriptor_Nil(t *testing.T) {
	result, err := ValidateDescriptor(nil)
	if err != nil {
		t.Fatalf("ValidateDescriptor(nil) error: %v", err)
	}
	if result.Valid {
		t.Fatal("nil descriptor should report the missing required fields")
	}
}

func TestDescriptorSchemaCompiles(t *testing.T) {
	schema, err := getDescriptorSchema()
	if err != nil {
		t.Fatalf("getDescriptorSchema error: %v", err)
	}
	if schema == nil {
		t.Fatal("getDescriptorSchema returned nil schema")
	}
}
