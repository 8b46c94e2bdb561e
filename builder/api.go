// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
// Topology factories live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromata/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds u→v, and v→u as well when g is directed so every family
// keeps a symmetric neighborhood in digraph mode.
func connect(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}
