package bfs

import (
	"sort"

	"github.com/katalvlaran/chromata/core"
)

// Components splits g into groups of mutually reachable vertices, ignoring
// edge direction. Groups are ordered by their smallest vertex ID and each
// group is sorted.
//
// Only WithContext is meaningful here; depth limits and hooks are ignored.
//
// Complexity: O(V + E log E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.MaxDepth = 0
	o.OnVisit = DefaultOptions().OnVisit

	nf := neighborsOf(g, true)
	visited := make(map[string]bool)
	var groups [][]string
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		w := newWalker(o, nf, visited)
		if err := w.run(id); err != nil {
			return nil, err
		}
		group := w.res.Order
		sort.Strings(group)
		groups = append(groups, group)
	}

	return groups, nil
}
