// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn  ("0","1","2",...)
//   • left/right  = "L" / "R"

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn

	// Bipartite ID prefixes. Empty → defaults resolved in newBuilderConfig.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	// centerVertexID is the fixed hub ID used by Star and Wheel.
	centerVertexID = "Center"
)

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
