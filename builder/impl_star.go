// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// impl_star.go: Star(n): hub "Center" plus leaves cfg.idFn(1..n-1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromata/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := connect(g, methodStar, centerVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
