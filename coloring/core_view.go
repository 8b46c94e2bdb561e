// SPDX-License-Identifier: MIT
// Package: chromata/coloring
//
// core_view.go: snapshot adapter from *core.Graph to Graph.
//
// Determinism:
//   - Vertex index i is the i-th ID of core.Graph.Vertices() (sorted asc).
//   - Edges follow core.Graph.Edges() (insertion order).
//   - Direction is ignored; a directed u→v constrains u and v like an
//     undirected edge.

package coloring

import "github.com/katalvlaran/chromata/core"

// CoreView is an index-based snapshot of a core.Graph. Later mutations of
// the source graph are not reflected.
type CoreView struct {
	ids   []string
	index map[string]int
	pairs [][2]int
}

// NewCoreView snapshots g.
// Complexity: O(V log V + E log E).
func NewCoreView(g *core.Graph) *CoreView {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	edges := g.Edges()
	pairs := make([][2]int, 0, len(edges))
	for _, e := range edges {
		pairs = append(pairs, [2]int{index[e.From], index[e.To]})
	}

	return &CoreView{ids: ids, index: index, pairs: pairs}
}

// VertexCount implements Graph.
func (v *CoreView) VertexCount() int { return len(v.ids) }

// EachEdge implements Graph.
func (v *CoreView) EachEdge(fn func(u, w int) bool) {
	for _, p := range v.pairs {
		if !fn(p[0], p[1]) {
			return
		}
	}
}

// Label returns the vertex ID at index i.
func (v *CoreView) Label(i int) string { return v.ids[i] }

// Index returns the index of vertex id.
func (v *CoreView) Index(id string) (int, bool) {
	i, ok := v.index[id]
	return i, ok
}

// ExhaustiveCore enumerates proper colorings of g keyed by vertex ID.
func ExhaustiveCore(g *core.Graph, opts ...Option) *LabeledEnumerator[string] {
	return Labeled[string](NewCoreView(g), opts...)
}
