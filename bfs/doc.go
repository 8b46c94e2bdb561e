// Package bfs provides breadth-first search over a core.Graph and a
// connected-components split built on it.
//
// BFS explores vertices in increasing distance from a start vertex, with an
// optional visit hook and depth limit. Neighbors are taken in sorted order,
// so Order is deterministic for a given graph.
//
// Components groups vertices that can reach each other ignoring edge
// direction. Vertices with no distinct neighbors form singleton groups.
// Coloring constraints never cross a component boundary, which makes the
// split a useful summary when validating input graphs.
package bfs
