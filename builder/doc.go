// Package builder lays barriers, starts and ends onto a grid.Grid so
// searches can be set up from code, tests and the command line instead of
// by hand with a pointer.
//
// The package offers the following key components:
//
//   - Layouts (functions of type Layout, composed by Apply):
//     – Wall(row):     a full barrier row, with gap columns left open.
//     – Column(col):   the same, vertically.
//     – Scatter():     seeded random barriers with a given density.
//     – Border():      barriers around the grid edge.
//     – Maze():        a seeded perfect maze carved depth-first.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand, WithDensity, WithGaps, WithKeepClear.
//   - Text maps:
//     – Parse / ParseString: '.', '#', 'S', 'E' lines into a Map.
//
// Guarantees:
//
//   - Determinism: same layouts, options and seed ⇒ identical barrier sets.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Layouts never overwrite Start or End cells and never panic at runtime.
package builder
