package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersion verifies that a descriptor's version string is well-formed
// semver. A leading "v" is tolerated, matching what package registries emit.
func CheckVersion(version string) error {
	if _, err := semver.NewVersion(strings.TrimPrefix(version, "v")); err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}
	return nil
}
