// Package pathviz is a playground for watching A* explore a square grid.
//
// What is pathviz?
//
//	A small set of packages that separate the search from whatever draws it:
//		• grid:       cells, state tags, adjacency and pointer hit-testing
//		• astar:      the search engine with a render callback between steps
//		• bfs:        breadth-first reachability, used to check path lengths
//		• builder:    walls, scatter, mazes and text maps
//		• render:     palette, text, PNG snapshots and frame recording
//		• controller: start/end/barrier state machine and search runs
//		• terminal:   an interactive tcell front-end with an optional tone
//
// Quick start:
//
//	go run ./cmd/pathviz play
//	go run ./cmd/pathviz solve --rows 21 --maze --seed 4 --plain
//
// Everything runs on the caller's goroutine. The render callback is the only
// place a search yields, and the only place it can be stopped.
package pathviz
