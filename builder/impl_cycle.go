// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// impl_cycle.go: Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices via cfg.idFn in ascending index order (0..n-1).
//   • Edges i → (i+1)%n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromata/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		// i == n-1 closes the ring back to 0
		for i := 0; i < n; i++ {
			if err = connect(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
