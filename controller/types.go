package controller

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/pathviz/astar"
)

// Sentinel errors for controller operations.
var (
	// ErrNotReady is returned by Run when the start or end cell is unset.
	ErrNotReady = errors.New("controller: start and end must both be set")
	// ErrQuit is returned by renderers to request that a running search stop
	// and the front-end exit.
	ErrQuit = errors.New("controller: quit requested")
)

// Options configures a Controller.
type Options struct {
	// Mode selects the frontier strategy used by Run.
	Mode astar.Mode
	// InitialRender draws once before the first pop.
	InitialRender bool
	// Logger receives run, clear and reset events.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns lazy mode, an initial render and the component logger.
func DefaultOptions() Options {
	return Options{
		Mode:          astar.ModeLazy,
		InitialRender: true,
		Logger:        slog.Default().With(slog.String("component", "controller")),
	}
}

// WithMode selects the frontier strategy.
func WithMode(m astar.Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithoutInitialRender skips the render before the first pop.
func WithoutInitialRender() Option {
	return func(o *Options) { o.InitialRender = false }
}

// WithLogger replaces the logger. A nil logger panics.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("controller: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
