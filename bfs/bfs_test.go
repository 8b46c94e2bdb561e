package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromata/bfs"
	"github.com/katalvlaran/chromata/builder"
	"github.com/katalvlaran/chromata/core"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "5", "2", "4", "3"}, res.Order)
	assert.Equal(t, 3, res.Depth["3"])

	path, err := res.PathTo("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, path)
}

func TestBFS_MaxDepthAndHook(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	var seen []string
	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2), bfs.WithOnVisit(func(id string, _ int) error {
		seen = append(seen, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
	assert.Equal(t, res.Order, seen)

	_, err = res.PathTo("4")
	assert.Error(t, err)
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "1" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_Direction(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("b", "a")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Order)

	res, err = bfs.BFS(g, "a", bfs.WithIgnoreDirection())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Order)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, e := range [][2]string{{"b", "a"}, {"c", "b"}, {"x", "y"}, {"z", "z"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("m"))

	groups, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"m"}, {"x", "y"}, {"z"}}, groups)

	groups, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, groups)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
