// Package manifest reads the installed-extensions manifest and defines the
// descriptor type shared by the rest of the tool. It also carries the
// descriptor-level JSON Schema used to validate full descriptors (required
// metadata, install type, schema field shape) during batch checks.
package manifest
