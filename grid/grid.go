package grid

import (
	"fmt"
)

// neighborOffsets lists (dRow, dCol) in the order neighbors are recorded:
// down, up, left, right.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

// New builds a rows×rows grid of Empty cells for a square drawing area of
// pixelWidth pixels. Cell size is pixelWidth / rows with integer division.
// Returns ErrInvalidDimensions if rows <= 0, pixelWidth <= 0, or pixelWidth < rows.
// Complexity: O(rows²) time and memory.
func New(rows, pixelWidth int) (*Grid, error) {
	if rows <= 0 || pixelWidth <= 0 || pixelWidth < rows {
		return nil, fmt.Errorf("%w: rows=%d width=%d", ErrInvalidDimensions, rows, pixelWidth)
	}
	g := &Grid{
		Rows:  rows,
		Width: pixelWidth,
		Gap:   pixelWidth / rows,
		cells: make([][]*Cell, rows),
	}
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]*Cell, rows)
		for c := 0; c < rows; c++ {
			g.cells[r][c] = &Cell{Row: r, Col: c, grid: g}
		}
	}

	return g, nil
}

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Rows
}

// CellAt returns the cell at (row, col). Indices are never clamped:
// anything outside the grid yields ErrOutOfBounds.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, row, col, g.Rows, g.Rows)
	}
	return g.cells[row][col], nil
}

// Owns reports whether c belongs to this grid.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && c.grid == g
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Count returns how many cells are currently in state s.
func (g *Grid) Count(s State) int {
	n := 0
	g.ForEach(func(c *Cell) {
		if c.State == s {
			n++
		}
	})
	return n
}

// Reset returns every cell whose state is one of states to Empty.
// With no states given it resets nothing.
func (g *Grid) Reset(states ...State) {
	if len(states) == 0 {
		return
	}
	g.ForEach(func(c *Cell) {
		for _, s := range states {
			if c.State == s {
				c.State = Empty
				return
			}
		}
	})
}

// RebuildAdjacency recomputes every cell's neighbor list from the current
// barrier layout. Must be called before each search; the lists go stale as
// soon as barriers change.
// Complexity: O(R²·4).
func (g *Grid) RebuildAdjacency() {
	g.ForEach(func(c *Cell) {
		c.Neighbors = c.Neighbors[:0]
		for _, d := range neighborOffsets {
			nr, nc := c.Row+d[0], c.Col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			n := g.cells[nr][nc]
			if n.State == Barrier {
				continue
			}
			c.Neighbors = append(c.Neighbors, n)
		}
	})
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b *Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
