// Package extension exposes the per-kind configuration facade. It wires the
// schema resolver, validator, and registry into a single registration path
// and layers a non-throwing problem-collection API on top for batch checks
// across many extensions.
package extension
