// SPDX-License-Identifier: MIT
// Package: chromata/core
//
// methods_vertices.go: vertex lifecycle and queries.
// Determinism: Vertices() returns IDs sorted ascending.
// Concurrency: catalog under muVert; adjacency bootstrap under muEdge.

package core

import "sort"

// AddVertex inserts a vertex with the given ID. Idempotent if the vertex
// already exists.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	// bootstrap the adjacency bucket so NeighborIDs works on isolated vertices
	g.muEdge.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]int)
	}
	g.muEdge.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every incident edge.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(E) scan of the edge catalog.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdge.Lock()
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			unlinkEdge(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacency, id)
	for _, inner := range g.adjacency {
		delete(inner, id)
	}
	g.muEdge.Unlock()

	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the sorted, de-duplicated IDs reachable from id by
// one edge (both directions for undirected edges).
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(d log d) for out-degree d.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr, cnt := range g.adjacency[id] {
		if cnt > 0 {
			out = append(out, nbr)
		}
	}
	sort.Strings(out)

	return out, nil
}
