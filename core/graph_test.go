package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromata/core"
)

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())

	g = core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Directed())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a")) // idempotent

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("z"))
}

func TestGraph_AddEdgePolicies(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "a")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("a", "a")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	// undirected: the reverse pair is the same edge
	_, err = g.AddEdge("b", "a")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	loops := core.NewGraph(core.WithLoops())
	_, err = loops.AddEdge("x", "x")
	require.NoError(t, err)
	assert.True(t, loops.HasEdge("x", "x"))

	multi := core.NewGraph(core.WithMultiEdges())
	_, err = multi.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = multi.AddEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, multi.EdgeCount())
}

func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	// more than nine edges, so lexicographic ID order would differ
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%02d", i), fmt.Sprintf("v%02d", i+1))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
		assert.Equal(t, fmt.Sprintf("v%02d", i), e.From)
	}
}

func TestGraph_DirectedHasEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))

	// opposite direction is a distinct edge in a digraph
	_, err = g.AddEdge("b", "a")
	require.NoError(t, err)
}

func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")

	require.ErrorIs(t, g.RemoveEdge("nope"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(e1))
	assert.False(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
	assert.Equal(t, 2, g.EdgeCount())

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("zz"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("c"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []string{"a", "b"}, g.Vertices())

	nbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestGraph_NeighborIDs(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "c")
	_, _ = g.AddEdge("a", "b")

	nbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs)

	nbrs, err = g.NeighborIDs("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, nbrs)

	_, err = g.NeighborIDs("q")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const workers, per = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < per; i++ {
				_, _ = g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("w%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*per, g.EdgeCount())
	seen := make(map[string]bool, workers*per)
	for _, e := range g.Edges() {
		assert.False(t, seen[e.ID], "duplicate edge ID %s", e.ID)
		seen[e.ID] = true
	}
}
