// Package chromata enumerates proper vertex colorings of small graphs.
//
// What is chromata?
//
//	A lazy, deterministic, exhaustive search over color assignments:
//		• radix/    a growing-radix odometer producing candidate vectors
//		• coloring/ the proper-coloring filter, graph adapters and validation
//		• core/     thread-safe string-ID Graph used as an input model
//		• builder/  canonical topologies (path, cycle, complete, star, wheel, grid, K_{m,n})
//		• bfs/      traversal and connected components over core.Graph
//
// The candidate stream walks every vector over 2 colors, then every vector
// over 3 colors, and so on. The first coloring produced therefore uses the
// fewest colors the graph admits. The cost is exponential; chromata is a
// reference oracle, not a solver.
//
// Quick example:
//
//	tri := coloring.FromEdges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
//	c, _ := coloring.Exhaustive(tri).Next()
//	// c == coloring.Coloring{0: 2, 1: 1, 2: 0}
//
// The chromata binary in cmd/chromata exposes the same search on YAML, TOML,
// graph6 or builder-generated graphs.
//
//	go install github.com/katalvlaran/chromata/cmd/chromata@latest
package chromata
