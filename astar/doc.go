// Package astar runs A* shortest-path search over a grid.Grid and drives a
// render callback so each step of the search can be watched.
//
// Overview:
//
//   - Edges have uniform cost 1; the heuristic is the Manhattan distance to the
//     goal, which is admissible and consistent for 4-directional movement.
//   - The frontier is a min-heap of (priority, insertion counter, cell). Equal
//     priorities pop first-in first-out.
//   - A membership set mirrors the heap, because a heap cannot answer
//     "is this cell queued" cheaply.
//   - Cells change state as the search runs: discovered cells become Open,
//     expanded cells other than the start become Closed, and on success the
//     path is walked back from the goal and marked Path one cell at a time.
//
// Frontier modes:
//
//   - ModeLazy (default): when a queued cell's distance improves, distTo and
//     cameFrom are updated but its queue entry keeps the old priority. The cell
//     may be expanded later than it should, which in rare layouts yields a
//     longer path than the optimum.
//   - ModeDecreaseKey: the queued entry is re-prioritised in place with
//     heap.Fix, giving textbook A* behaviour.
//
// Rendering and cancellation:
//
//   - The renderer is called once per expansion, after all neighbors are
//     relaxed, and once per reconstructed path step, plus a final render.
//   - Returning an error from the renderer stops the search at that point.
//     Cell states are left exactly as exploration had made them.
//   - A context, if given, is checked before each expansion.
//
// Adjacency:
//
//   - Search never rebuilds adjacency. Call grid.RebuildAdjacency first; a
//     barrier painted after that call is still traversed.
//
// Complexity:
//
//   - Time:  O(V log V) for V = Rows², each cell is pushed a bounded number of times.
//   - Space: O(V) for distTo, priority, cameFrom and the frontier.
//
// Example usage:
//
//	g.RebuildAdjacency()
//	res, err := astar.Search(g, start, end, astar.WithRenderFunc(draw))
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
package astar
