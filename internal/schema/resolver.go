package schema

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions lists the schema file suffixes the resolver accepts, in
// the order they appear in error messages.
var AllowedExtensions = []string{".json", ".js", ".cjs"}

// PackageLocator resolves a path relative to an installed package's root
// into an absolute path. It fails if the package or the file does not exist.
type PackageLocator interface {
	Locate(pkgName, relPath string) (string, error)
}

// Resolved is the outcome of resolving a schema reference. SourcePath is
// empty for inline schemas.
type Resolved struct {
	Value      any
	SourcePath string
}

// Resolver turns a descriptor's schema reference into a concrete schema
// value, loading it from the extension's package when the reference is a
// file path.
type Resolver struct {
	locator PackageLocator
	loaders map[string]FileLoader
}

// NewResolver builds a Resolver with the default loader set (.json, .js,
// .cjs) over the given package locator.
func NewResolver(locator PackageLocator) *Resolver {
	return &Resolver{locator: locator, loaders: defaultLoaders()}
}

// Resolve handles the three reference shapes:
//   - schema object: returned unchanged, no path logic involved
//   - path string: suffix-checked, located inside pkgName, and loaded
//   - anything else: malformed reference
func (r *Resolver) Resolve(pkgName string, ref any) (Resolved, error) {
	switch v := ref.(type) {
	case map[string]any:
		return Resolved{Value: v}, nil
	case string:
		return r.resolveFile(pkgName, v)
	default:
		return Resolved{}, newError(KindMalformedReference, ref,
			"Incorrectly formatted schema field; must be a path to a schema file or a schema object.")
	}
}

func (r *Resolver) resolveFile(pkgName, relPath string) (Resolved, error) {
	// Exact match only: the allowed suffixes are literal, ".JSON" is not one.
	ext := filepath.Ext(relPath)
	loader, ok := r.loaders[ext]
	if !ok {
		return Resolved{}, newError(KindUnsupportedExtension, relPath,
			"Schema file %s has an unsupported extension; allowed extensions are %s",
			relPath, strings.Join(AllowedExtensions, ", "))
	}

	abs, err := r.locator.Locate(pkgName, relPath)
	if err != nil {
		return Resolved{}, wrapError(KindFileNotFound, relPath, err,
			"Unable to register schema at path %s", relPath)
	}

	value, err := loader.Load(abs)
	if err != nil {
		return Resolved{}, wrapError(KindLoadError, relPath, err,
			"Unable to load schema at path %s", abs)
	}

	return Resolved{Value: value, SourcePath: abs}, nil
}
