// SPDX-License-Identifier: MIT
// Package: chromata/coloring
//
// enumerator.go: the proper-coloring filter over radix.Counter.
//
// Loop: GENERATE → TEST → (reject → GENERATE | accept → EMIT).
// There is no terminal state unless a candidate limit is configured.

package coloring

import (
	"iter"

	"github.com/katalvlaran/chromata/radix"
)

const (
	// ctxPollInterval is how many candidates pass between context checks.
	ctxPollInterval = 1 << 10

	// takePrealloc caps the capacity Take reserves up front; k bounds the
	// result, not the allocation.
	takePrealloc = 64
)

// Enumerator yields proper colorings of a Graph one at a time. It owns its
// generator exclusively and is not safe for concurrent use.
type Enumerator struct {
	graph  Graph
	opts   Options
	ctr    *radix.Counter
	tested uint64
	err    error // why Next stopped; nil while running
}

// Exhaustive builds an Enumerator over g, sized to g.VertexCount() and
// starting at DefaultStartBase unless WithStartBase says otherwise.
// It never fails; g must be non-nil and must not change while enumerating.
//
// Complexity: O(V) to construct; each candidate costs O(E).
func Exhaustive(g Graph, opts ...Option) *Enumerator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Enumerator{
		graph: g,
		opts:  o,
		ctr:   radix.New(g.VertexCount(), o.StartBase),
	}
}

// Next returns the next proper coloring. ok is false only after a
// configured candidate limit was reached or the context was cancelled (see
// Err); without either Next never gives up, so a graph with a self-loop
// blocks forever (see Validate).
//
// Edges whose endpoints fall outside [0, VertexCount()) panic with an index
// out of range: that is a bug in the Graph implementation.
func (e *Enumerator) Next() (c Coloring, ok bool) {
	for {
		if e.err != nil {
			return nil, false
		}
		if e.opts.CandidateLimit > 0 && e.tested >= e.opts.CandidateLimit {
			e.err = ErrLimitReached
			continue
		}
		if e.tested%ctxPollInterval == 0 {
			if err := e.opts.Ctx.Err(); err != nil {
				e.err = err
				continue
			}
		}

		digits := e.ctr.Next()
		e.tested++
		e.opts.OnCandidate(digits, e.ctr.Base())

		if bichromatic(e.graph, digits) {
			return toColoring(digits), true
		}
	}
}

// All returns a single-use sequence over the remaining colorings.
//
//	for c := range e.All() { ... break when done ... }
func (e *Enumerator) All() iter.Seq[Coloring] {
	return func(yield func(Coloring) bool) {
		for {
			c, ok := e.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Take returns the next k colorings (fewer only if a candidate limit hits).
func (e *Enumerator) Take(k int) []Coloring {
	out := make([]Coloring, 0, max(min(k, takePrealloc), 0))
	for len(out) < k {
		c, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}

	return out
}

// Err reports why Next stopped returning colorings: ErrLimitReached, the
// context error, or nil while the enumeration is still live.
func (e *Enumerator) Err() error { return e.err }

// Base reports the current radix of the underlying generator.
func (e *Enumerator) Base() int { return e.ctr.Base() }

// Candidates reports how many candidates have been tested so far.
func (e *Enumerator) Candidates() uint64 { return e.tested }

// bichromatic reports whether every edge of g has differently colored ends.
func bichromatic(g Graph, digits []int) bool {
	ok := true
	g.EachEdge(func(u, v int) bool {
		if digits[u] == digits[v] {
			ok = false
		}
		return ok
	})

	return ok
}

func toColoring(digits []int) Coloring {
	c := make(Coloring, len(digits))
	for i, d := range digits {
		c[i] = d
	}

	return c
}
