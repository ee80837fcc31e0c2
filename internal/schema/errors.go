package schema

import (
	"errors"
	"fmt"
)

// Kind classifies a schema pipeline failure. The batch-reporting layer keys
// off these to turn failures into problem records.
type Kind string

const (
	// KindMalformedReference means the descriptor's schema field is neither
	// a path string nor a schema object.
	KindMalformedReference Kind = "malformed-schema-reference"

	// KindUnsupportedExtension means a schema file path has a suffix outside
	// the allow-list.
	KindUnsupportedExtension Kind = "unsupported-schema-extension"

	// KindFileNotFound means a schema file path did not resolve to an
	// existing file inside the extension's package.
	KindFileNotFound Kind = "schema-file-not-found"

	// KindLoadError means a located schema file could not be read or decoded.
	KindLoadError Kind = "schema-load-error"

	// KindInvalidSchema means the schema value itself failed the structural
	// check.
	KindInvalidSchema Kind = "invalid-schema"

	// KindConflict means a different schema is already registered under the
	// same extension name.
	KindConflict Kind = "schema-conflict"

	// KindInvariantViolation marks a caller contract breach, not a bad
	// input. It is never converted into a problem record.
	KindInvariantViolation Kind = "invariant-violation"
)

// Error is the failure type produced by the resolver, validator, and
// registry. Val carries the offending value (reference, path, or schema) so
// batch reporting can surface it alongside the message.
type Error struct {
	Kind    Kind
	Message string
	Val     any
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// newError builds an *Error with a formatted message.
func newError(kind Kind, val any, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Val: val}
}

// wrapError builds an *Error that preserves the underlying cause for
// errors.Is/As chains without folding it into the displayed message.
func wrapError(kind Kind, val any, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Val: val, cause: cause}
}

// KindOf returns the Kind of err, or "" if err is not a schema *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
