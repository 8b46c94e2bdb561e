// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// impl_path.go: Path(n): vertices 0..n-1, edges i→i+1 in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromata/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
