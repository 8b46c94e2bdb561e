// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// impl_wheel.go: Wheel(n) = Cycle(n-1) + hub "Center" with spokes to every rim vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromata/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim C_{n-1} needs at least 3 vertices
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
