// Package packages locates files inside installed extension packages. It
// implements the locator port consumed by the schema resolver over a flat
// install root where each package occupies <root>/<pkgName>/.
package packages

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirLocator resolves package-relative paths under a single install root.
type DirLocator struct {
	root string
}

// NewDirLocator returns a locator over the given install root.
func NewDirLocator(root string) *DirLocator {
	return &DirLocator{root: root}
}

// Root returns the install root this locator searches.
func (l *DirLocator) Root() string { return l.root }

// Locate resolves relPath inside pkgName's directory and verifies the file
// exists. The returned path is absolute.
func (l *DirLocator) Locate(pkgName, relPath string) (string, error) {
	p := filepath.Join(l.root, pkgName, relPath)
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s in package %s: %w", relPath, pkgName, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("locating %s in package %s: %w", relPath, pkgName, err)
	}
	return abs, nil
}
