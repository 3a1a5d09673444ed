package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathviz/grid"
)

//----------------------------------------------------------------------------//
// New and CellAt Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects meaningless dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name        string
		rows, width int
	}{
		{"ZeroRows", 0, 800},
		{"NegativeRows", -3, 800},
		{"ZeroWidth", 10, 0},
		{"WidthBelowRows", 10, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.width)
			if !errors.Is(err, grid.ErrInvalidDimensions) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.width, err, grid.ErrInvalidDimensions)
			}
		})
	}
}

// TestNew_Layout checks cell count, initial state and integer-division gap.
func TestNew_Layout(t *testing.T) {
	g, err := grid.New(3, 100)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Gap != 33 {
		t.Errorf("Gap = %d; want 33", g.Gap)
	}
	n := 0
	g.ForEach(func(c *grid.Cell) {
		n++
		if c.State != grid.Empty {
			t.Errorf("cell %v state = %v; want empty", c, c.State)
		}
		if c.Grid() != g {
			t.Errorf("cell %v not owned by grid", c)
		}
	})
	if n != 9 {
		t.Errorf("cell count = %d; want 9", n)
	}
}

// TestCellAt_OutOfBounds makes sure indices are rejected, never clamped.
func TestCellAt_OutOfBounds(t *testing.T) {
	g, _ := grid.New(4, 40)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {9, 9}} {
		c, err := g.CellAt(rc[0], rc[1])
		if !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("CellAt(%d,%d) error = %v; want ErrOutOfBounds", rc[0], rc[1], err)
		}
		if c != nil {
			t.Errorf("CellAt(%d,%d) returned %v; want nil", rc[0], rc[1], c)
		}
	}
	c, err := g.CellAt(3, 2)
	if err != nil {
		t.Fatalf("CellAt(3,2) error: %v", err)
	}
	if r, col := c.Pos(); r != 3 || col != 2 {
		t.Errorf("Pos() = (%d,%d); want (3,2)", r, col)
	}
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

func positions(cells []*grid.Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.Row, c.Col}
	}
	return out
}

func equalPositions(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestRebuildAdjacency_Order checks neighbor order down, up, left, right and bounds.
func TestRebuildAdjacency_Order(t *testing.T) {
	g, _ := grid.New(3, 30)
	g.RebuildAdjacency()

	center, _ := g.CellAt(1, 1)
	want := [][2]int{{2, 1}, {0, 1}, {1, 0}, {1, 2}}
	if got := positions(center.Neighbors); !equalPositions(got, want) {
		t.Errorf("center neighbors = %v; want %v", got, want)
	}

	corner, _ := g.CellAt(0, 0)
	want = [][2]int{{1, 0}, {0, 1}}
	if got := positions(corner.Neighbors); !equalPositions(got, want) {
		t.Errorf("corner neighbors = %v; want %v", got, want)
	}
}

// TestRebuildAdjacency_Barriers checks barriers are excluded at rebuild time only.
func TestRebuildAdjacency_Barriers(t *testing.T) {
	g, _ := grid.New(3, 30)
	wall, _ := g.CellAt(1, 2)
	wall.MarkBarrier()
	g.RebuildAdjacency()

	center, _ := g.CellAt(1, 1)
	want := [][2]int{{2, 1}, {0, 1}, {1, 0}}
	if got := positions(center.Neighbors); !equalPositions(got, want) {
		t.Errorf("neighbors = %v; want %v", got, want)
	}

	// A barrier painted after the rebuild is still listed until the next rebuild.
	late, _ := g.CellAt(0, 1)
	late.MarkBarrier()
	if got := positions(center.Neighbors); !equalPositions(got, want) {
		t.Errorf("stale neighbors = %v; want %v", got, want)
	}
	g.RebuildAdjacency()
	want = [][2]int{{2, 1}, {1, 0}}
	if got := positions(center.Neighbors); !equalPositions(got, want) {
		t.Errorf("rebuilt neighbors = %v; want %v", got, want)
	}
}

// TestRebuildAdjacency_Idempotent verifies two rebuilds in a row agree.
func TestRebuildAdjacency_Idempotent(t *testing.T) {
	g, _ := grid.New(5, 50)
	for _, rc := range [][2]int{{1, 1}, {2, 3}, {4, 0}} {
		c, _ := g.CellAt(rc[0], rc[1])
		c.MarkBarrier()
	}
	g.RebuildAdjacency()
	first := map[[2]int][][2]int{}
	g.ForEach(func(c *grid.Cell) { first[[2]int{c.Row, c.Col}] = positions(c.Neighbors) })

	g.RebuildAdjacency()
	g.ForEach(func(c *grid.Cell) {
		if got := positions(c.Neighbors); !equalPositions(got, first[[2]int{c.Row, c.Col}]) {
			t.Errorf("cell %v neighbors changed: %v -> %v", c, first[[2]int{c.Row, c.Col}], got)
		}
	})
}

//----------------------------------------------------------------------------//
// State, Reset and Pointer Tests
//----------------------------------------------------------------------------//

// TestMutators checks each mutator sets exactly its tag with no validation.
func TestMutators(t *testing.T) {
	g, _ := grid.New(2, 20)
	c, _ := g.CellAt(0, 0)
	steps := []struct {
		mark func()
		is   func() bool
		want grid.State
	}{
		{c.MarkStart, c.IsStart, grid.Start},
		{c.MarkEnd, c.IsEnd, grid.End},
		{c.MarkBarrier, c.IsBarrier, grid.Barrier},
		{c.MarkOpen, c.IsOpen, grid.Open},
		{c.MarkClosed, c.IsClosed, grid.Closed},
		{c.MarkPath, c.IsPath, grid.Path},
		{c.MarkEmpty, c.IsEmpty, grid.Empty},
	}
	for _, s := range steps {
		s.mark()
		if c.State != s.want || !s.is() {
			t.Errorf("state = %v; want %v", c.State, s.want)
		}
	}

	// Two starts are allowed at this layer.
	other, _ := g.CellAt(1, 1)
	c.MarkStart()
	other.MarkStart()
	if g.Count(grid.Start) != 2 {
		t.Errorf("Count(Start) = %d; want 2", g.Count(grid.Start))
	}
}

// TestReset returns only the listed states to Empty.
func TestReset(t *testing.T) {
	g, _ := grid.New(2, 20)
	states := []grid.State{grid.Open, grid.Closed, grid.Barrier, grid.Path}
	i := 0
	g.ForEach(func(c *grid.Cell) { c.State = states[i]; i++ })

	g.Reset(grid.Open, grid.Closed, grid.Path)
	if g.Count(grid.Empty) != 3 || g.Count(grid.Barrier) != 1 {
		t.Errorf("after Reset: empty=%d barrier=%d; want 3 and 1", g.Count(grid.Empty), g.Count(grid.Barrier))
	}
	g.Reset()
	if g.Count(grid.Barrier) != 1 {
		t.Error("Reset() with no states changed the grid")
	}
}

// TestCellIndex checks the y→row, x→col mapping with floor division.
func TestCellIndex(t *testing.T) {
	cases := []struct {
		x, y, rows, width int
		row, col          int
	}{
		{0, 0, 80, 800, 0, 0},
		{9, 9, 80, 800, 0, 0},
		{10, 0, 80, 800, 0, 1},
		{0, 10, 80, 800, 1, 0},
		{799, 15, 80, 800, 1, 79},
		{105, 333, 3, 100, 10, 3},
		{-5, 25, 5, 50, 2, -1},
		{25, -1, 5, 50, -1, 2},
		{-10, -11, 5, 50, -2, -1},
		{7, 7, 0, 50, -1, -1},
		{7, 7, 5, 4, -1, -1},
	}
	for _, tc := range cases {
		row, col := grid.CellIndex(tc.x, tc.y, tc.rows, tc.width)
		if row != tc.row || col != tc.col {
			t.Errorf("CellIndex(%d,%d,%d,%d) = (%d,%d); want (%d,%d)",
				tc.x, tc.y, tc.rows, tc.width, row, col, tc.row, tc.col)
		}
	}

	g, _ := grid.New(3, 100)
	row, col := g.CellIndex(105, 333)
	if _, err := g.CellAt(row, col); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("pointer outside drawing area should map out of bounds, got (%d,%d)", row, col)
	}
	g5, _ := grid.New(5, 50)
	for _, p := range [][2]int{{-5, 25}, {25, -1}, {-1, -1}} {
		row, col := g5.CellIndex(p[0], p[1])
		if _, err := g5.CellAt(row, col); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("pointer (%d,%d) left of or above the grid mapped to (%d,%d)", p[0], p[1], row, col)
		}
	}
	if x, y := g.Origin(2, 1); x != 33 || y != 66 {
		t.Errorf("Origin(2,1) = (%d,%d); want (33,66)", x, y)
	}
}

// TestStateGlyphs checks the glyph round trip used by text maps.
func TestStateGlyphs(t *testing.T) {
	for s := grid.Empty; s <= grid.Path; s++ {
		got, ok := grid.StateFromGlyph(s.Glyph())
		if !ok || got != s {
			t.Errorf("StateFromGlyph(%q) = %v,%v; want %v", s.Glyph(), got, ok, s)
		}
	}
	if _, ok := grid.StateFromGlyph('z'); ok {
		t.Error("StateFromGlyph('z') reported ok")
	}
	if grid.State(42).String() != "state(42)" {
		t.Errorf("unknown state String = %q", grid.State(42).String())
	}
}

// TestManhattan checks the heuristic distance.
func TestManhattan(t *testing.T) {
	g, _ := grid.New(5, 50)
	a, _ := g.CellAt(0, 0)
	b, _ := g.CellAt(4, 4)
	c, _ := g.CellAt(3, 1)
	if d := grid.Manhattan(a, b); d != 8 {
		t.Errorf("Manhattan(a,b) = %d; want 8", d)
	}
	if d := grid.Manhattan(b, c); d != 4 {
		t.Errorf("Manhattan(b,c) = %d; want 4", d)
	}
}
