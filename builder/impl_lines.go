// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_lines.go - Wall, Column and Border layouts.
//
// Contract:
//   • Index must lie within the grid (else ErrTooSmall).
//   • Gap indices from WithGaps stay open; out-of-range gaps are ignored.
//   • Start, End and WithKeepClear cells are never blocked.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

const (
	methodWall   = "Wall"
	methodColumn = "Column"
)

// Wall returns a Layout that blocks every cell of row except gap columns.
func Wall(row int) Layout {
	return func(g *grid.Grid, cfg builderConfig) error {
		if row < 0 || row >= g.Rows {
			return fmt.Errorf("%s: row=%d not in [0,%d): %w", methodWall, row, g.Rows, ErrTooSmall)
		}
		for col := 0; col < g.Rows; col++ {
			if cfg.gaps[col] {
				continue
			}
			c, _ := g.CellAt(row, col)
			block(c, cfg)
		}
		return nil
	}
}

// Column returns a Layout that blocks every cell of col except gap rows.
func Column(col int) Layout {
	return func(g *grid.Grid, cfg builderConfig) error {
		if col < 0 || col >= g.Rows {
			return fmt.Errorf("%s: col=%d not in [0,%d): %w", methodColumn, col, g.Rows, ErrTooSmall)
		}
		for row := 0; row < g.Rows; row++ {
			if cfg.gaps[row] {
				continue
			}
			c, _ := g.CellAt(row, col)
			block(c, cfg)
		}
		return nil
	}
}

// Border returns a Layout that blocks the outermost ring of cells.
// Gaps do not apply.
func Border() Layout {
	return func(g *grid.Grid, cfg builderConfig) error {
		last := g.Rows - 1
		g.ForEach(func(c *grid.Cell) {
			if c.Row == 0 || c.Col == 0 || c.Row == last || c.Col == last {
				block(c, cfg)
			}
		})
		return nil
	}
}
