// Package coloring enumerates the proper vertex colorings of a finite graph,
// lazily, deterministically and exhaustively.
//
// What
//
//   - Exhaustive(g) wraps a radix.Counter sized to g.VertexCount(). Each
//     counter vector is a tentative color per vertex; Next keeps pulling
//     vectors until every edge has differently colored endpoints, then
//     returns that vector as a Coloring.
//   - The search starts at base 2 and grows the base only after every vector
//     of the current base was tried, so few-color assignments come first.
//     The first result uses at most Base() colors; it is not guaranteed to
//     be a minimum coloring.
//   - Results are not de-duplicated: permutations of a coloring are distinct
//     results, and colorings found at a small base are found again after the
//     base grows (the counter restarts at all zeros).
//
// Graph representations
//
//   - Any type implementing Graph (VertexCount + EachEdge).
//   - EdgeList / FromEdges for literal edge lists.
//   - CoreView over *core.Graph (string IDs, sorted by ID).
//   - GonumView over any gonum graph.Graph (int64 node IDs, sorted).
//
// Labeled[K] and ExhaustiveCore translate vertex indices back to the
// representation's own identifiers.
//
// Termination
//
//	Next never reports exhaustion on its own. A graph with a self-loop has no
//	proper coloring and Next would loop forever: call Validate first, or bound
//	the work with WithCandidateLimit.
//
// Complexity (V = vertices, E = edges, b = current base)
//
//   - Per candidate: O(E) edge checks, amortised O(1) counter step.
//   - Up to b^V candidates per base; memory O(V + E).
//
// Usage
//
//	e := coloring.Exhaustive(coloring.FromEdges([2]int{0, 1}, [2]int{1, 2}))
//	c, _ := e.Next() // map[0:0 1:1 2:0]
//
//	for c := range coloring.ExhaustiveCore(g).All() {
//	    ...
//	}
package coloring
