// SPDX-License-Identifier: MIT
// Package: chromata/coloring
//
// gonum_view.go: snapshot adapter from a gonum graph.Graph to Graph.
//
// Determinism:
//   - Vertex index i is the i-th node ID in ascending order.
//   - Each unordered pair is reported once, ordered by (min, max) index.

package coloring

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// GonumView is an index-based snapshot of a gonum graph (for example one
// decoded from graph6). Directed graphs are treated as undirected.
type GonumView struct {
	ids   []int64
	pairs [][2]int
}

// NewGonumView snapshots g.
// Complexity: O(V log V + E log E).
func NewGonumView(g graph.Graph) *GonumView {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	seen := make(map[[2]int]struct{})
	var pairs [][2]int
	for i, uid := range ids {
		for _, n := range graph.NodesOf(g.From(uid)) {
			j := index[n.ID()]
			key := [2]int{min(i, j), max(i, j)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})

	return &GonumView{ids: ids, pairs: pairs}
}

// VertexCount implements Graph.
func (v *GonumView) VertexCount() int { return len(v.ids) }

// EachEdge implements Graph.
func (v *GonumView) EachEdge(fn func(u, w int) bool) {
	for _, p := range v.pairs {
		if !fn(p[0], p[1]) {
			return
		}
	}
}

// Label returns the gonum node ID at index i.
func (v *GonumView) Label(i int) int64 { return v.ids[i] }
