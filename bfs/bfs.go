package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chromata/core"
)

type queueItem struct {
	id    string
	depth int
}

// neighborFn lists the vertices adjacent to id, sorted.
type neighborFn func(id string) ([]string, error)

// walker encapsulates mutable BFS state. visited may be shared across
// several walks (see Components).
type walker struct {
	opts      Options
	neighbors neighborFn
	queue     []queueItem
	visited   map[string]bool
	res       *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(o, neighborsOf(g, o.IgnoreDirection), make(map[string]bool))
	return w.res, w.run(startID)
}

func newWalker(o Options, nf neighborFn, visited map[string]bool) *walker {
	return &walker{
		opts:      o,
		neighbors: nf,
		visited:   visited,
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
}

func (w *walker) run(start string) error {
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})

	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = item.id
			w.queue = append(w.queue, queueItem{id: nbr, depth: next})
		}
	}

	return nil
}

// neighborsOf returns g.NeighborIDs, or for directed graphs traversed
// without regard to direction, a symmetric adjacency snapshot.
func neighborsOf(g *core.Graph, ignoreDirection bool) neighborFn {
	if !g.Directed() || !ignoreDirection {
		return g.NeighborIDs
	}

	sym := make(map[string]map[string]struct{})
	link := func(a, b string) {
		if sym[a] == nil {
			sym[a] = make(map[string]struct{})
		}
		sym[a][b] = struct{}{}
	}
	for _, e := range g.Edges() {
		link(e.From, e.To)
		link(e.To, e.From)
	}

	return func(id string) ([]string, error) {
		if !g.HasVertex(id) {
			return nil, core.ErrVertexNotFound
		}
		out := make([]string, 0, len(sym[id]))
		for nbr := range sym[id] {
			out = append(out, nbr)
		}
		sort.Strings(out)
		return out, nil
	}
}
