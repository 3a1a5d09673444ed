// Package astar defines configuration, callbacks, results and sentinel
// errors for the A* grid search.
//
// Options:
//
//	– Renderer:      callback invoked after each expansion and each path step.
//	– Ctx:           cancellation checked once per expansion.
//	– Mode:          ModeLazy (stale priorities kept) or ModeDecreaseKey.
//	– OnPop:         observer called for every cell taken off the frontier.
//	– InitialRender: render once before the first pop.
//
// Errors (sentinel):
//
//	– ErrInvalidSearchRequest  nil grid, nil or foreign start/end, or start/end is a Barrier.
//	– ErrRenderAborted         the render callback returned an error.
//	– ErrBadMode               WithMode got an unknown Mode (panics).
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrInvalidSearchRequest indicates Search was called with arguments it
	// cannot run on. The wrapped message names the reason.
	ErrInvalidSearchRequest = errors.New("astar: invalid search request")

	// ErrRenderAborted indicates the render callback returned an error and
	// the search stopped. The callback's error is wrapped alongside.
	ErrRenderAborted = errors.New("astar: render callback aborted search")

	// ErrBadMode indicates WithMode received a value outside the known modes.
	ErrBadMode = errors.New("astar: unknown frontier mode")
)

// Mode selects how the frontier treats a queued cell whose distance improves.
type Mode int

const (
	// ModeLazy keeps the cell's original queue entry and priority. Only
	// distTo and cameFrom are updated. The cell may then be popped later
	// than its improved priority warrants.
	ModeLazy Mode = iota

	// ModeDecreaseKey rewrites the queued entry's priority in place and
	// restores heap order.
	ModeDecreaseKey
)

// String returns "lazy" or "decrease-key".
func (m Mode) String() string {
	switch m {
	case ModeLazy:
		return "lazy"
	case ModeDecreaseKey:
		return "decrease-key"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "lazy", "":
		return ModeLazy, nil
	case "decrease-key", "decreasekey":
		return ModeDecreaseKey, nil
	default:
		return ModeLazy, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// Renderer reflects the current cell states to the user. A non-nil error
// requests cancellation; Search unwinds and returns it wrapped in
// ErrRenderAborted.
type Renderer interface {
	Render() error
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func() error

// Render calls f.
func (f RenderFunc) Render() error { return f() }

// Options configures a single Search run.
type Options struct {
	Ctx           context.Context
	Renderer      Renderer
	Mode          Mode
	OnPop         func(c *grid.Cell)
	InitialRender bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a no-op
// renderer, ModeLazy, a no-op OnPop hook and no initial render.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Renderer: RenderFunc(func() error { return nil }),
		Mode:     ModeLazy,
		OnPop:    func(*grid.Cell) {},
	}
}

// WithContext sets a context checked once per expansion. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRenderer sets the render callback. nil is ignored.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithRenderFunc is WithRenderer for a plain function. nil is ignored.
func WithRenderFunc(fn func() error) Option {
	return func(o *Options) {
		if fn != nil {
			o.Renderer = RenderFunc(fn)
		}
	}
}

// WithMode selects the frontier mode. Panics with ErrBadMode on unknown values.
func WithMode(m Mode) Option {
	if m != ModeLazy && m != ModeDecreaseKey {
		panic(ErrBadMode.Error())
	}
	return func(o *Options) {
		o.Mode = m
	}
}

// WithOnPop registers a hook called with each cell as it leaves the frontier,
// before the goal test. nil is ignored.
func WithOnPop(fn func(c *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithInitialRender renders once before the first pop so the start and end
// markers are visible before exploration begins.
func WithInitialRender() Option {
	return func(o *Options) {
		o.InitialRender = true
	}
}

// Result is the outcome of a Search.
//
//   - Found:  a path was reached and marked. False means the frontier ran dry.
//   - Path:   cells from start to end inclusive; nil when not found.
//   - Hops:   len(Path)-1, or -1 when not found.
//   - Order:  cells in the order they were popped.
//   - Pushes: frontier insertions, including the start.
//   - Renders: render callback invocations.
type Result struct {
	Found   bool
	Path    []*grid.Cell
	Hops    int
	Order   []*grid.Cell
	Pushes  int
	Renders int
}
