// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// api.go - public entry point composing layouts.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Layout applies a deterministic barrier mutation to g using the resolved
// builderConfig. Layouts validate parameters first and return sentinel
// errors; they make no partial changes on validation failure.
type Layout func(g *grid.Grid, cfg builderConfig) error

// Apply resolves opts and runs every layout on g in order. The first error
// is returned wrapped as "Apply: %w".
func Apply(g *grid.Grid, opts []BuilderOption, layouts ...Layout) error {
	cfg := newBuilderConfig(opts...)
	for _, l := range layouts {
		if err := l(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}
	return nil
}

// block turns c into a barrier unless it is a start, an end, or kept clear.
func block(c *grid.Cell, cfg builderConfig) {
	if c.IsStart() || c.IsEnd() || cfg.keep[[2]int{c.Row, c.Col}] {
		return
	}
	c.MarkBarrier()
}
