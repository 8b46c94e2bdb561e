// Package builder provides deterministic, functional-options constructors
// for classic graph families over core.Graph. The coloring tests, examples
// and the CLI use them as fixtures with known chromatic numbers.
//
// Families (chromatic number in parentheses):
//
//   - Path(n)                P_n, n ≥ 2 (2)
//   - Cycle(n)               C_n, n ≥ 3 (2 if n even, 3 if odd)
//   - Complete(n)            K_n, n ≥ 1 (n)
//   - CompleteBipartite(a,b) K_{a,b}, a,b ≥ 1 (2)
//   - Star(n)                hub "Center" + n-1 leaves, n ≥ 2 (2)
//   - Wheel(n)               C_{n-1} + hub "Center", n ≥ 4 (3 if n-1 even, 4 if odd)
//   - Grid(r,c)              r×c lattice with IDs "r,c" (2 when r*c > 1)
//
// Compose several constructors in one BuildGraph call; they run in order
// against the same graph.
//
// Options:
//
//   - WithIDScheme(fn):            vertex ID per index (default decimal).
//   - WithPartitionPrefix(l, r):   bipartite side labels (default "L"/"R").
//
// Errors:
//
//   - ErrTooFewVertices   size parameter below the family minimum.
//   - ErrConstructFailed  nil constructor passed to BuildGraph.
//   - core errors are wrapped with "<Method>: <op>: %w".
package builder
