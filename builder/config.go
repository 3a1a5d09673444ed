// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil    (stochastic layouts fail with ErrNeedRandSource)
//   • density  = 0.3
//   • gaps     = none
//   • keep     = none   (Start/End cells are always kept regardless)
//   • cellSize = 10 px  (text maps only)

package builder

import "math/rand"

const (
	defaultDensity  = 0.3
	defaultCellSize = 10
)

// builderConfig aggregates all knobs used by layouts.
// It is passed by VALUE to layouts.
type builderConfig struct {
	rng      *rand.Rand
	density  float64
	gaps     map[int]bool
	keep     map[[2]int]bool
	cellSize int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		density:  defaultDensity,
		gaps:     map[int]bool{},
		keep:     map[[2]int]bool{},
		cellSize: defaultCellSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
