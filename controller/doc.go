// Package controller owns the interactive state around a grid: which cell is
// the start, which is the end, and when a search runs.
//
// A Controller replaces the global window and grid state a front-end would
// otherwise keep. Front-ends translate input into Click, Erase, Clear,
// ResetSearch and Run calls, and supply an astar.Renderer that redraws the
// grid (and polls for quit) between search steps.
//
// Click state machine, checked in order for the clicked cell:
//
//  1. the current start: start and end are both cleared;
//  2. the current end: end is cleared;
//  3. no start yet: the cell becomes the start;
//  4. no end yet: the cell becomes the end;
//  5. otherwise the cell becomes a barrier.
//
// Run requires both endpoints (ErrNotReady otherwise), clears the marks of a
// previous run, rebuilds adjacency and runs astar.Search.
package controller
