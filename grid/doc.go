// Package grid models the square board a path search runs on: a Rows×Rows
// collection of cells, each carrying a state tag and a list of traversable
// neighbors.
//
// What:
//
//   - Cell holds its (row, col) position, a State (Empty, Open, Closed, Barrier,
//     Start, End, Path) and an ordered neighbor list.
//   - Grid owns every Cell and rebuilds adjacency on request.
//   - CellIndex translates a pointer coordinate into a (row, col) pair.
//
// Why:
//
//   - Search code needs an explicit adjacency snapshot, not live barrier checks.
//   - Renderers map State to colors; the grid itself knows nothing about colors.
//
// Adjacency:
//
//   - RebuildAdjacency computes up to 4 orthogonal neighbors per cell in the
//     order down, up, left, right, skipping cells that are Barrier right now.
//   - The result is a snapshot. Painting a barrier afterwards does not remove it
//     from neighbor lists until the next RebuildAdjacency call.
//
// Complexity:
//
//   - New:              O(R²) time and memory.
//   - RebuildAdjacency: O(R²·4) time, O(R²·4) memory for neighbor lists.
//   - CellAt:           O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or pixel width not positive, or cells would be 0 px.
//   - ErrOutOfBounds: CellAt called with indices outside the grid.
package grid
