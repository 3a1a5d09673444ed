// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartNotInGrid is returned when the start cell is nil or foreign.
	ErrStartNotInGrid = errors.New("bfs: start cell not in grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo when dest was never reached.
	ErrUnreachable = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c *grid.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context,
// no depth limit and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(*grid.Cell, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c *grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: hop distance from the start for every reached cell.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result struct {
	Order  []*grid.Cell
	Depth  map[*grid.Cell]int
	Parent map[*grid.Cell]*grid.Cell
}

// Reached reports whether dest was visited.
func (r *Result) Reached(dest *grid.Cell) bool {
	_, ok := r.Depth[dest]
	return ok
}

// PathTo reconstructs the path from the start cell to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest *grid.Cell) ([]*grid.Cell, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := []*grid.Cell{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
