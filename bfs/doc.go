// Package bfs provides breadth-first search over a grid.Grid's adjacency,
// returning hop distances, parent links and visit order.
//
// It walks exactly the neighbor lists the last grid.RebuildAdjacency produced,
// so its distances are the ground truth an A* run over the same snapshot must
// match. BFS never changes cell states.
package bfs
