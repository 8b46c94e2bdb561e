package coloring

import "iter"

// Labeler is a Graph that can name its vertices.
type Labeler[K comparable] interface {
	Graph
	Label(i int) K
}

// LabeledEnumerator wraps an Enumerator and re-keys each Coloring by the
// graph's own vertex identifiers.
type LabeledEnumerator[K comparable] struct {
	inner *Enumerator
	graph Labeler[K]
}

// Labeled builds a LabeledEnumerator over g; see Exhaustive for options.
func Labeled[K comparable](g Labeler[K], opts ...Option) *LabeledEnumerator[K] {
	return &LabeledEnumerator[K]{inner: Exhaustive(g, opts...), graph: g}
}

// Next returns the next proper coloring keyed by label.
func (l *LabeledEnumerator[K]) Next() (map[K]int, bool) {
	c, ok := l.inner.Next()
	if !ok {
		return nil, false
	}
	out := make(map[K]int, len(c))
	for i, col := range c {
		out[l.graph.Label(i)] = col
	}

	return out, true
}

// All returns a single-use sequence over the remaining labeled colorings.
func (l *LabeledEnumerator[K]) All() iter.Seq[map[K]int] {
	return func(yield func(map[K]int) bool) {
		for {
			c, ok := l.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Take returns the next k labeled colorings.
func (l *LabeledEnumerator[K]) Take(k int) []map[K]int {
	out := make([]map[K]int, 0, max(min(k, takePrealloc), 0))
	for len(out) < k {
		c, ok := l.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}

	return out
}

// Err reports why Next stopped; see Enumerator.Err.
func (l *LabeledEnumerator[K]) Err() error { return l.inner.Err() }

// Base reports the current radix of the underlying generator.
func (l *LabeledEnumerator[K]) Base() int { return l.inner.Base() }

// Candidates reports how many candidates have been tested so far.
func (l *LabeledEnumerator[K]) Candidates() uint64 { return l.inner.Candidates() }
