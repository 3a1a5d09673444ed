// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.

package builder

import "errors"

// ErrTooSmall indicates a layout parameter (row or column index, map size)
// falls outside what the grid can hold.
var ErrTooSmall = errors.New("builder: parameter out of range")

// ErrNeedRandSource indicates a stochastic layout ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadMap indicates a text map that is empty, not square, uses an unknown
// glyph, or holds more than one start or end.
var ErrBadMap = errors.New("builder: malformed map")

// ErrInvalidDensity is the panic value of WithDensity for p outside [0,1].
var ErrInvalidDensity = errors.New("builder: density out of range")
