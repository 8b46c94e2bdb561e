package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromata/coloring"
	"github.com/katalvlaran/chromata/core"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		g    coloring.Graph
		want error
	}{
		{"ok", coloring.FromEdges([2]int{0, 1}, [2]int{1, 2}), nil},
		{"empty", coloring.EdgeList{}, nil},
		{"loop", coloring.EdgeList{N: 2, Pairs: [][2]int{{0, 1}, {1, 1}}}, coloring.ErrSelfLoop},
		{"range", coloring.EdgeList{N: 2, Pairs: [][2]int{{0, 2}}}, coloring.ErrVertexOutOfRange},
		{"negative", coloring.EdgeList{N: 2, Pairs: [][2]int{{-1, 0}}}, coloring.ErrVertexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := coloring.Validate(tc.g)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_CoreLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("x", "x")
	require.NoError(t, err)

	assert.ErrorIs(t, coloring.Validate(coloring.NewCoreView(g)), coloring.ErrSelfLoop)
}

func TestIsProper(t *testing.T) {
	g := coloring.FromEdges([2]int{0, 1}, [2]int{1, 2})

	assert.True(t, coloring.IsProper(g, coloring.Coloring{0: 0, 1: 1, 2: 0}))
	assert.False(t, coloring.IsProper(g, coloring.Coloring{0: 1, 1: 1, 2: 0}))
	// missing vertex
	assert.False(t, coloring.IsProper(g, coloring.Coloring{0: 0, 1: 1}))
	// extra vertex
	assert.False(t, coloring.IsProper(g, coloring.Coloring{0: 0, 1: 1, 2: 0, 3: 1}))
	// wrong key set with the right size
	assert.False(t, coloring.IsProper(g, coloring.Coloring{0: 0, 1: 1, 7: 0}))
	// negative color
	assert.False(t, coloring.IsProper(g, coloring.Coloring{0: 0, 1: -1, 2: 0}))
}
