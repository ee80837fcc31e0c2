package schema

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// FileLoader reads a schema file and returns the decoded schema value.
// Implementations are keyed by file suffix in the Resolver, so adding a new
// schema file format means registering one more loader.
type FileLoader interface {
	Load(path string) (any, error)
}

// jsonLoader decodes plain JSON schema documents. Numbers are decoded as
// json.Number so that values survive a round trip through the validation
// engine unchanged.
type jsonLoader struct{}

func (jsonLoader) Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file %s: %w", path, err)
	}
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding schema file %s: %w", path, err)
	}
	return value, nil
}

// moduleLoader decodes schema files written as JavaScript modules with a
// single default export of an object literal. Two conventional forms exist:
// "export default {...}" (.js) and "module.exports = {...}" (.cjs). The
// exported literal must be valid JSON; anything else is a load error.
type moduleLoader struct {
	marker string
}

func (l moduleLoader) Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema module %s: %w", path, err)
	}

	src := strings.TrimSpace(string(data))
	if !strings.HasPrefix(src, l.marker) {
		return nil, fmt.Errorf("schema module %s: expected a %q export", path, l.marker)
	}
	src = strings.TrimSpace(strings.TrimPrefix(src, l.marker))
	src = strings.TrimSuffix(src, ";")

	value, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decoding schema module %s: %w", path, err)
	}
	return value, nil
}

// defaultLoaders maps each allowed schema file suffix to its loader.
func defaultLoaders() map[string]FileLoader {
	return map[string]FileLoader{
		".json": jsonLoader{},
		".js":   moduleLoader{marker: "export default"},
		".cjs":  moduleLoader{marker: "module.exports ="},
	}
}
