package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/grid"
)

// benchmarkSearch measures a corner-to-corner search on a 100×100 grid with
// a seeded 25% barrier scatter. The grid is rebuilt each iteration because
// Search mutates cell states.
func benchmarkSearch(b *testing.B, mode astar.Mode) {
	const n = 100
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, _ := grid.New(n, n*8)
		start, _ := g.CellAt(0, 0)
		end, _ := g.CellAt(n-1, n-1)
		start.MarkStart()
		end.MarkEnd()
		opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithDensity(0.25)}
		if err := builder.Apply(g, opts, builder.Scatter()); err != nil {
			b.Fatalf("setup: %v", err)
		}
		g.RebuildAdjacency()
		b.StartTimer()

		if _, err := astar.Search(g, start, end, astar.WithMode(mode)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Lazy(b *testing.B)        { benchmarkSearch(b, astar.ModeLazy) }
func BenchmarkSearch_DecreaseKey(b *testing.B) { benchmarkSearch(b, astar.ModeDecreaseKey) }
