// SPDX-License-Identifier: MIT
// Package: chromata/core
//
// methods_edges.go: edge lifecycle and queries.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic ("e" + decimal).
// Concurrency: mutations under muEdge write lock, queries under read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix prefixes textual edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints
// are added implicitly.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Under muEdge, check the multi-edge policy, allocate an ID, link adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if !g.allowMulti && g.adjacency[from][to] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to, Directed: g.directed}
	e.ID, e.seq = nextEdgeID(g)
	g.edges[e.ID] = e
	linkEdge(g, e)

	return e.ID, nil
}

// RemoveEdge deletes one edge by ID.
//
// Errors:
//   - ErrEdgeNotFound: if eid is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	unlinkEdge(g, e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether at least one edge from→to exists
// (either direction for undirected edges).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.adjacency[from][to] > 0
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// linkEdge records e in the adjacency counters; caller holds muEdge.
func linkEdge(g *Graph, e *Edge) {
	bump(g, e.From, e.To, 1)
	if !e.Directed && e.From != e.To {
		bump(g, e.To, e.From, 1)
	}
}

// unlinkEdge reverses linkEdge; caller holds muEdge.
func unlinkEdge(g *Graph, e *Edge) {
	bump(g, e.From, e.To, -1)
	if !e.Directed && e.From != e.To {
		bump(g, e.To, e.From, -1)
	}
}

func bump(g *Graph, from, to string, delta int) {
	inner := g.adjacency[from]
	if inner == nil {
		inner = make(map[string]int)
		g.adjacency[from] = inner
	}
	inner[to] += delta
	if inner[to] <= 0 {
		delete(inner, to)
	}
}

// nextEdgeID reserves the next sequence number and renders it as "e<n>";
// caller holds muEdge.
func nextEdgeID(g *Graph) (string, uint64) {
	g.nextEdgeID++
	n := g.nextEdgeID
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}
