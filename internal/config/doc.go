// Package config manages user-level settings stored at ~/.hostkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the manifest file path and the installed-packages root.
package config
