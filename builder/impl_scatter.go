// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_scatter.go - seeded random barrier scatter.
//
// Contract:
//   • Requires cfg.rng (ErrNeedRandSource otherwise).
//   • Visits cells row-major and draws exactly one Float64 per cell, so a
//     fixed seed and grid size always yield the same layout.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

const methodScatter = "Scatter"

// Scatter returns a Layout that blocks each cell with probability density.
func Scatter() Layout {
	return func(g *grid.Grid, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}
		g.ForEach(func(c *grid.Cell) {
			if cfg.rng.Float64() < cfg.density {
				block(c, cfg)
			}
		})
		return nil
	}
}
