// Package grid defines the cell state tag, the Cell and Grid types,
// and sentinel errors for grid construction and lookup.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive row count or pixel width,
	// or a width too small to give every cell at least one pixel.
	ErrInvalidDimensions = errors.New("grid: rows and width must be positive and width >= rows")
	// ErrOutOfBounds indicates a requested (row, col) lies outside the grid.
	ErrOutOfBounds = errors.New("grid: cell index out of bounds")
)

// State tags what a cell currently represents.
type State int

const (
	// Empty is a plain walkable cell. It is the zero value.
	Empty State = iota
	// Open marks a cell sitting in the search frontier.
	Open
	// Closed marks a cell the search has fully explored.
	Closed
	// Barrier marks an impassable cell.
	Barrier
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
	// Path marks a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Open:    "open",
	Closed:  "closed",
	Barrier: "barrier",
	Start:   "start",
	End:     "end",
	Path:    "path",
}

// glyphs are the single-rune forms used by plain text maps and renderers.
var glyphs = [...]rune{
	Empty:   '.',
	Open:    'o',
	Closed:  'x',
	Barrier: '#',
	Start:   'S',
	End:     'E',
	Path:    '*',
}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Glyph returns the rune used for s in plain text output.
func (s State) Glyph() rune {
	if s < 0 || int(s) >= len(glyphs) {
		return '?'
	}
	return glyphs[s]
}

// StateFromGlyph is the inverse of State.Glyph.
func StateFromGlyph(r rune) (State, bool) {
	for s, g := range glyphs {
		if g == r {
			return State(s), true
		}
	}
	return Empty, false
}

// Cell is a single grid unit. Neighbors point into the owning Grid and are
// only as fresh as the last RebuildAdjacency call.
type Cell struct {
	Row, Col  int
	State     State
	Neighbors []*Cell

	grid *Grid
}

// Grid is a square board of Rows×Rows cells laid out row-major.
// Width is the total pixel width the grid was built for and Gap the per-cell
// size in pixels (Width / Rows, remainder pixels unused).
type Grid struct {
	Rows  int
	Width int
	Gap   int

	cells [][]*Cell
}
