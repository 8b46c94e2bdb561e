// Package core defines the in-memory Graph used across chromata: string-ID
// vertices, edges with stable textual IDs, and construction-time policy flags
// for directedness, self-loops and parallel edges.
//
// What
//
//   - Graph stores a vertex catalog and an edge catalog under two RW locks
//     (muVert for vertices, muEdge for edges and adjacency), so graphs can be
//     built from several goroutines.
//   - Vertices() is sorted by ID; Edges() is sorted by insertion order.
//     Both orders are relied on by the coloring adapters for determinism.
//
// Policy flags
//
//   - WithDirected(true): edges are one-way (coloring ignores direction).
//   - WithLoops(): permit v→v edges; otherwise AddEdge returns ErrLoopNotAllowed.
//   - WithMultiEdges(): permit parallel edges; otherwise ErrMultiEdgeNotAllowed.
//
// Errors
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Lock order is always muVert -> muEdge.
package core
