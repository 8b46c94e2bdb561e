// SPDX-License-Identifier: MIT
// Package: chromata/builder
//
// impl_bipartite.go: CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "<lp><i>", right IDs "<rp><j>" from cfg prefixes.
//   • Cross edges emitted left-major: (L0,R0), (L0,R1), ...

package builder

import (
	"fmt"

	"github.com/katalvlaran/chromata/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left, err := addPrefixed(g, cfg.leftPrefix, n1)
		if err != nil {
			return err
		}
		right, err := addPrefixed(g, cfg.rightPrefix, n2)
		if err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err = connect(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func addPrefixed(g *core.Graph, prefix string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("%s%d", prefix, i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, ids[i], err)
		}
	}

	return ids, nil
}
