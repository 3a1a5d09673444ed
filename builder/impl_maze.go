// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_maze.go - perfect maze by randomized depth-first carving.
//
// Contract:
//   • Requires cfg.rng (ErrNeedRandSource otherwise).
//   • Every cell is blocked first, then rooms at even (row, col) are carved
//     and joined through the wall cell between them, so the rooms form a
//     spanning tree: exactly one route between any two rooms.
//   • On odd-sized grids all four corners are rooms. On even-sized grids the
//     last row and column stay walls apart from Start, End and kept cells.
//   • Carving only reopens barriers; Start and End are never touched.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

const methodMaze = "Maze"

// mazeSteps are the room-to-room moves: down, up, left, right.
var mazeSteps = [4][2]int{{2, 0}, {-2, 0}, {0, -2}, {0, 2}}

// mazeCarver holds the carving state for one Maze run.
type mazeCarver struct {
	g       *grid.Grid
	cfg     builderConfig
	visited map[[2]int]bool
}

// Maze returns a Layout that replaces the grid with a perfect maze rooted at (0,0).
// Complexity: O(rows²) time and memory.
func Maze() Layout {
	return func(g *grid.Grid, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
		}
		g.ForEach(func(c *grid.Cell) { block(c, cfg) })

		m := &mazeCarver{g: g, cfg: cfg, visited: make(map[[2]int]bool, g.Rows*g.Rows/4+1)}
		m.carve(0, 0)
		return nil
	}
}

// carve opens room (row, col), then visits unvisited rooms in shuffled order,
// opening the wall between.
func (m *mazeCarver) carve(row, col int) {
	m.visited[[2]int{row, col}] = true
	m.open(row, col)

	steps := mazeSteps
	m.cfg.rng.Shuffle(len(steps), func(i, j int) { steps[i], steps[j] = steps[j], steps[i] })

	for _, s := range steps {
		nr, nc := row+s[0], col+s[1]
		if !m.g.InBounds(nr, nc) || m.visited[[2]int{nr, nc}] {
			continue
		}
		m.open(row+s[0]/2, col+s[1]/2)
		m.carve(nr, nc)
	}
}

func (m *mazeCarver) open(row, col int) {
	if c, err := m.g.CellAt(row, col); err == nil && c.IsBarrier() {
		c.MarkEmpty()
	}
}
