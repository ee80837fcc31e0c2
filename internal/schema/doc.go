// Package schema implements the configuration-schema pipeline for installed
// extensions: resolving a descriptor's schema reference (inline object or
// file path inside the extension's package), checking that the schema is
// structurally valid JSON Schema, and registering it under the extension's
// name with conflict detection. One Registry and one Validator exist per
// extension kind so that unrelated kinds never share an $id/$ref namespace.
package schema
