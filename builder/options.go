// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// options.go: functional options.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
