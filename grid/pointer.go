package grid

// CellIndex maps a pointer position to a (row, col) pair for a rows×rows grid
// drawn across totalWidth pixels: row comes from pointerY and col from
// pointerX, both floor-divided by the cell size totalWidth/rows.
//
// The result is not clamped. Pointers outside the drawing area, including
// those left of or above it, produce indices outside the grid; callers reject
// those through CellAt. If rows <= 0 or totalWidth < rows there is no cell
// size and CellIndex returns (-1, -1).
func CellIndex(pointerX, pointerY, rows, totalWidth int) (row, col int) {
	if rows <= 0 || totalWidth < rows {
		return -1, -1
	}
	gap := totalWidth / rows
	return floorDiv(pointerY, gap), floorDiv(pointerX, gap)
}

// floorDiv divides rounding toward negative infinity, so -1/gap is -1, not 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CellIndex is the method form of the package-level CellIndex using the
// grid's own dimensions.
func (g *Grid) CellIndex(pointerX, pointerY int) (row, col int) {
	return CellIndex(pointerX, pointerY, g.Rows, g.Width)
}

// Origin returns the top-left pixel of cell (row, col) in the drawing area.
func (g *Grid) Origin(row, col int) (x, y int) {
	return col * g.Gap, row * g.Gap
}
