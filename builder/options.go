// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Layouts themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a layout by mutating builderConfig before use.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic layouts. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the barrier probability used by Scatter.
// Panics with ErrInvalidDensity unless 0 <= p <= 1.
func WithDensity(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic(ErrInvalidDensity.Error())
	}
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithGaps lists indices Wall and Column leave open.
func WithGaps(idx ...int) BuilderOption {
	return func(c *builderConfig) {
		for _, i := range idx {
			c.gaps[i] = true
		}
	}
}

// WithKeepClear lists (row, col) cells no layout may turn into a barrier.
func WithKeepClear(cells ...[2]int) BuilderOption {
	return func(c *builderConfig) {
		for _, rc := range cells {
			c.keep[rc] = true
		}
	}
}

// WithCellSize sets the pixel size per cell for grids created by Parse.
// Panics on px < 1.
func WithCellSize(px int) BuilderOption {
	if px < 1 {
		panic("builder: WithCellSize(px < 1)")
	}
	return func(c *builderConfig) {
		c.cellSize = px
	}
}
