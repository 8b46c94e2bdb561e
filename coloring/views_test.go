package coloring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/chromata/builder"
	"github.com/katalvlaran/chromata/coloring"
	"github.com/katalvlaran/chromata/core"
)

func TestFromEdges(t *testing.T) {
	l := coloring.FromEdges([2]int{3, 1}, [2]int{0, 2})
	assert.Equal(t, 4, l.VertexCount())
	assert.Equal(t, 0, coloring.FromEdges().VertexCount())

	var seen [][2]int
	l.EachEdge(func(u, v int) bool {
		seen = append(seen, [2]int{u, v})
		return false // stop after the first
	})
	assert.Equal(t, [][2]int{{3, 1}}, seen)
}

func TestCoreView_IndexAndLabels(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("a", "b")
	require.NoError(t, g.AddVertex("d"))

	v := coloring.NewCoreView(g)
	assert.Equal(t, 4, v.VertexCount())
	assert.Equal(t, "a", v.Label(0))
	assert.Equal(t, "d", v.Label(3))
	i, ok := v.Index("c")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = v.Index("zz")
	assert.False(t, ok)

	var pairs [][2]int
	v.EachEdge(func(u, w int) bool {
		pairs = append(pairs, [2]int{u, w})
		return true
	})
	assert.Equal(t, [][2]int{{1, 2}, {0, 1}}, pairs)
}

func TestExhaustiveCore_Path(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)

	c, ok := coloring.ExhaustiveCore(g).Next()
	require.True(t, ok)
	assert.Equal(t, map[string]int{"0": 0, "1": 1, "2": 0}, c)
}

func TestExhaustiveCore_StarLabels(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(3))
	require.NoError(t, err)

	// sorted IDs: "1", "2", "Center"
	e := coloring.ExhaustiveCore(g)
	c, ok := e.Next()
	require.True(t, ok)
	assert.Equal(t, map[string]int{"1": 1, "2": 1, "Center": 0}, c)
	assert.Equal(t, uint64(4), e.Candidates())
	assert.Equal(t, 2, e.Base())
}

func TestExhaustiveCore_DirectedIgnored(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(3))
	require.NoError(t, err)

	c, ok := coloring.ExhaustiveCore(g).Next()
	require.True(t, ok)
	assert.Equal(t, map[string]int{"0": 2, "1": 1, "2": 0}, c)
}

func TestExhaustiveCore_TakeAndAll(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)

	got := coloring.ExhaustiveCore(g).Take(2)
	assert.Equal(t, []map[string]int{{"0": 1, "1": 0}, {"0": 0, "1": 1}}, got)

	n := 0
	for c := range coloring.ExhaustiveCore(g, coloring.WithCandidateLimit(8)).All() {
		assert.Len(t, c, 2)
		n++
	}
	// base 2 has 2 of 4 proper; the next 4 candidates of base 3 hold 3
	assert.Equal(t, 5, n)
}

func TestGonumView_Simple(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(g.NewEdge(simple.Node(10), simple.Node(20)))
	g.SetEdge(g.NewEdge(simple.Node(20), simple.Node(30)))
	g.AddNode(simple.Node(5))

	v := coloring.NewGonumView(g)
	assert.Equal(t, 4, v.VertexCount())
	assert.Equal(t, int64(5), v.Label(0))

	var pairs [][2]int
	v.EachEdge(func(a, b int) bool {
		pairs = append(pairs, [2]int{a, b})
		return true
	})
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}}, pairs)

	c, ok := coloring.Labeled[int64](v).Next()
	require.True(t, ok)
	assert.Equal(t, map[int64]int{5: 0, 10: 0, 20: 1, 30: 0}, c)
}

func TestGonumView_DirectedPairOnce(t *testing.T) {
	g := simple.NewDirectedGraph()
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
	g.SetEdge(g.NewEdge(simple.Node(1), simple.Node(0)))

	v := coloring.NewGonumView(g)
	n := 0
	v.EachEdge(func(int, int) bool { n++; return true })
	assert.Equal(t, 1, n)
}

func TestGonumView_Graph6(t *testing.T) {
	for _, tc := range []struct {
		name string
		code graph6.Graph
		want map[int64]int
	}{
		{"triangle", "Bw", map[int64]int{0: 2, 1: 1, 2: 0}},
		{"path", "Bg", map[int64]int{0: 0, 1: 1, 2: 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, graph6.IsValid(tc.code))
			c, ok := coloring.Labeled[int64](coloring.NewGonumView(tc.code)).Next()
			require.True(t, ok)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestExhaustiveCore_TakeHugeKUnderLimit(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)

	e := coloring.ExhaustiveCore(g, coloring.WithCandidateLimit(4))
	got := e.Take(math.MaxInt)
	assert.Equal(t, []map[string]int{{"0": 1, "1": 0}, {"0": 0, "1": 1}}, got)
	assert.ErrorIs(t, e.Err(), coloring.ErrLimitReached)
}
