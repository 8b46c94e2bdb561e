// SPDX-License-Identifier: MIT
// Package: chromata/coloring
//
// types.go: Graph contract, Coloring, options and sentinel errors.

package coloring

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors. Validate reports the first two; ErrLimitReached comes
// from Enumerator.Err.
var (
	// ErrSelfLoop is returned when an edge joins a vertex to itself; such a
	// graph has no proper coloring and the enumerator would never yield.
	ErrSelfLoop = errors.New("coloring: self-loop makes graph uncolorable")

	// ErrVertexOutOfRange is returned when an edge endpoint is outside
	// [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("coloring: edge endpoint out of range")

	// ErrLimitReached is reported by Enumerator.Err once the configured
	// candidate limit stopped the enumeration.
	ErrLimitReached = errors.New("coloring: candidate limit reached")
)

// DefaultStartBase is the radix the search starts from: with fewer than two
// colors no graph with an edge is properly colorable.
const DefaultStartBase = 2

// Graph is the capability the enumerator needs: a vertex count and a way to
// walk the edges as dense zero-based endpoint indices. EachEdge stops early
// when fn returns false. Implementations must not mutate during enumeration.
type Graph interface {
	VertexCount() int
	EachEdge(fn func(u, v int) bool)
}

// Coloring maps a vertex index to its color.
type Coloring map[int]int

// Colors reports the number of distinct colors used.
func (c Coloring) Colors() int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// Slice returns the positional view [c[0], ..., c[n-1]]; vertices missing
// from c are reported as -1.
func (c Coloring) Slice(n int) []int {
	out := make([]int, n)
	for i := range out {
		col, ok := c[i]
		if !ok {
			col = -1
		}
		out[i] = col
	}

	return out
}

// Option configures an Enumerator via functional arguments.
type Option func(*Options)

// Options holds the knobs of an Enumerator.
type Options struct {
	// Ctx stops the enumeration when done; it is polled every
	// ctxPollInterval candidates.
	Ctx context.Context

	// StartBase is the radix of the first candidate (≥ 1).
	StartBase int

	// CandidateLimit, if > 0, stops the enumerator after this many candidates
	// were tested; Next then reports ok == false. 0 means unlimited.
	CandidateLimit uint64

	// OnCandidate is called for every candidate tested, before the edge
	// check. digits is a read-only view valid only during the call.
	OnCandidate func(digits []int, base int)
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - StartBase = DefaultStartBase
//   - no candidate limit
//   - no-op OnCandidate hook
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		StartBase:      DefaultStartBase,
		CandidateLimit: 0,
		OnCandidate:    func([]int, int) {},
	}
}

// WithContext sets a context whose cancellation stops the enumeration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartBase starts the search at radix b, e.g. from a known lower bound
// on the chromatic number. Panics if b < 1.
func WithStartBase(b int) Option {
	if b < 1 {
		panic(fmt.Sprintf("coloring: WithStartBase(%d): base must be ≥ 1", b))
	}

	return func(o *Options) { o.StartBase = b }
}

// WithCandidateLimit bounds the number of candidates tested over the
// enumerator's lifetime. n == 0 restores the unlimited default.
func WithCandidateLimit(n uint64) Option {
	return func(o *Options) { o.CandidateLimit = n }
}

// WithOnCandidate registers a hook invoked for every candidate tested.
func WithOnCandidate(fn func(digits []int, base int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}
