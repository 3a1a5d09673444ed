package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/grid"
)

// Controller owns a grid and its start and end cells.
// It is not safe for concurrent use.
type Controller struct {
	rows, width int
	opts        Options
	log         *slog.Logger

	g          *grid.Grid
	start, end *grid.Cell
}

// New builds a Controller over a fresh rows×rows grid drawn across width pixels.
func New(rows, width int, opts ...Option) (*Controller, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.New(rows, width)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	return &Controller{rows: rows, width: width, opts: o, log: o.Logger, g: g}, nil
}

// Grid returns the current grid. Clear replaces it.
func (c *Controller) Grid() *grid.Grid { return c.g }

// Start returns the start cell or nil.
func (c *Controller) Start() *grid.Cell { return c.start }

// End returns the end cell or nil.
func (c *Controller) End() *grid.Cell { return c.end }

// Ready reports whether both endpoints are set.
func (c *Controller) Ready() bool { return c.start != nil && c.end != nil }

// Click applies the click state machine to (row, col).
func (c *Controller) Click(row, col int) error {
	cell, err := c.g.CellAt(row, col)
	if err != nil {
		return err
	}

	switch {
	case cell == c.start:
		c.start.MarkEmpty()
		c.start = nil
		if c.end != nil {
			c.end.MarkEmpty()
			c.end = nil
		}
	case cell == c.end:
		c.end.MarkEmpty()
		c.end = nil
	case c.start == nil:
		cell.MarkStart()
		c.start = cell
	case c.end == nil:
		cell.MarkEnd()
		c.end = cell
	default:
		cell.MarkBarrier()
	}
	return nil
}

// Erase returns (row, col) to Empty, forgetting it as start or end.
func (c *Controller) Erase(row, col int) error {
	cell, err := c.g.CellAt(row, col)
	if err != nil {
		return err
	}
	switch cell {
	case c.start:
		c.start = nil
	case c.end:
		c.end = nil
	}
	cell.MarkEmpty()
	return nil
}

// ClickPointer maps a pointer position to a cell and clicks it.
// Positions outside the grid return grid.ErrOutOfBounds.
func (c *Controller) ClickPointer(x, y int) error {
	row, col := c.g.CellIndex(x, y)
	return c.Click(row, col)
}

// ErasePointer maps a pointer position to a cell and erases it.
func (c *Controller) ErasePointer(x, y int) error {
	row, col := c.g.CellIndex(x, y)
	return c.Erase(row, col)
}

// Clear replaces the grid with a fresh one and forgets both endpoints.
func (c *Controller) Clear() error {
	g, err := grid.New(c.rows, c.width)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	c.g, c.start, c.end = g, nil, nil
	c.log.Info("grid cleared", slog.Int("rows", c.rows))
	return nil
}

// ResetSearch removes the open, closed and path marks left by a run,
// keeping barriers and endpoints.
func (c *Controller) ResetSearch() {
	c.g.Reset(grid.Open, grid.Closed, grid.Path)
	c.log.Debug("search marks reset")
}

// Run rebuilds adjacency and searches from start to end, calling r after each
// step. The grid keeps whatever marks the search left, also on error.
func (c *Controller) Run(ctx context.Context, r astar.Renderer) (*astar.Result, error) {
	if !c.Ready() {
		return nil, ErrNotReady
	}
	c.ResetSearch()
	c.g.RebuildAdjacency()

	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithMode(c.opts.Mode),
		astar.WithRenderer(r),
	}
	if c.opts.InitialRender {
		opts = append(opts, astar.WithInitialRender())
	}

	c.log.Info("search started",
		slog.String("start", c.start.String()),
		slog.String("end", c.end.String()),
		slog.String("mode", c.opts.Mode.String()))

	res, err := astar.Search(c.g, c.start, c.end, opts...)
	switch {
	case errors.Is(err, ErrQuit):
		c.log.Info("search stopped by quit")
		return nil, err
	case err != nil:
		c.log.Error("search failed", slog.Any("error", err))
		return nil, err
	case res.Found:
		c.log.Info("path found",
			slog.Int("hops", res.Hops),
			slog.Int("expanded", len(res.Order)))
	default:
		c.log.Info("no path",
			slog.Int("expanded", len(res.Order)))
	}
	return res, nil
}
