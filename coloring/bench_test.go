package coloring_test

import (
	"testing"

	"github.com/katalvlaran/chromata/builder"
	"github.com/katalvlaran/chromata/coloring"
)

// BenchmarkExhaustive_Wheel7 measures the first coloring of W_7 (chromatic
// number 3): every vector of base 2 is rejected before the base grows.
func BenchmarkExhaustive_Wheel7(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(7))
	if err != nil {
		b.Fatal(err)
	}
	view := coloring.NewCoreView(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = coloring.Exhaustive(view).Next()
	}
}

// BenchmarkExhaustive_GridStream pulls many colorings from a 3×3 grid.
func BenchmarkExhaustive_GridStream(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		b.Fatal(err)
	}
	e := coloring.Exhaustive(coloring.NewCoreView(g))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Next()
	}
}
