// SPDX-License-Identifier: MIT
// Package: chromata/coloring
//
// validate.go: precondition checks and the soundness oracle.
// Neither is called by the enumerator.

package coloring

import "fmt"

// Validate reports the first edge that breaks an enumeration precondition:
// ErrVertexOutOfRange for an endpoint outside [0, VertexCount()), or
// ErrSelfLoop for u == v. It returns nil for a well-formed graph, in which
// case Exhaustive(g).Next always finds a coloring eventually.
//
// Complexity: O(E).
func Validate(g Graph) error {
	n := g.VertexCount()
	var err error
	g.EachEdge(func(u, v int) bool {
		switch {
		case u < 0 || u >= n || v < 0 || v >= n:
			err = fmt.Errorf("%w: edge (%d,%d) with %d vertices", ErrVertexOutOfRange, u, v, n)
		case u == v:
			err = fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
		}
		return err == nil
	})

	return err
}

// IsProper reports whether c assigns exactly one color to every vertex of g
// and no edge of g is monochromatic.
//
// Complexity: O(V + E).
func IsProper(g Graph, c Coloring) bool {
	n := g.VertexCount()
	if len(c) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if col, ok := c[i]; !ok || col < 0 {
			return false
		}
	}

	proper := true
	g.EachEdge(func(u, v int) bool {
		cu, okU := c[u]
		cv, okV := c[v]
		proper = okU && okV && cu != cv
		return proper
	})

	return proper
}
