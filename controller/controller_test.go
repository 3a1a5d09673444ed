package controller_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/grid"
)

func newController(t *testing.T, opts ...controller.Option) (*controller.Controller, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]controller.Option{controller.WithLogger(logger)}, opts...)
	c, err := controller.New(5, 50, opts...)
	require.NoError(t, err)
	return c, &buf
}

func state(t *testing.T, c *controller.Controller, row, col int) grid.State {
	t.Helper()
	cell, err := c.Grid().CellAt(row, col)
	require.NoError(t, err)
	return cell.State
}

func TestNew_InvalidDimensions(t *testing.T) {
	_, err := controller.New(0, 10)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { controller.WithLogger(nil) })
}

func TestClick_StateMachine(t *testing.T) {
	c, _ := newController(t)

	require.NoError(t, c.Click(0, 0))
	assert.Equal(t, grid.Start, state(t, c, 0, 0))
	assert.False(t, c.Ready())

	require.NoError(t, c.Click(4, 4))
	assert.Equal(t, grid.End, state(t, c, 4, 4))
	assert.True(t, c.Ready())

	require.NoError(t, c.Click(2, 2))
	assert.Equal(t, grid.Barrier, state(t, c, 2, 2))

	// Clicking the end clears only the end.
	require.NoError(t, c.Click(4, 4))
	assert.Equal(t, grid.Empty, state(t, c, 4, 4))
	assert.Nil(t, c.End())
	assert.NotNil(t, c.Start())

	// The next click sets a new end.
	require.NoError(t, c.Click(3, 3))
	assert.Equal(t, c.End(), mustCell(t, c, 3, 3))

	// Clicking the start clears both endpoints.
	require.NoError(t, c.Click(0, 0))
	assert.Nil(t, c.Start())
	assert.Nil(t, c.End())
	assert.Equal(t, grid.Empty, state(t, c, 0, 0))
	assert.Equal(t, grid.Empty, state(t, c, 3, 3))
	assert.Equal(t, grid.Barrier, state(t, c, 2, 2))
}

func mustCell(t *testing.T, c *controller.Controller, row, col int) *grid.Cell {
	t.Helper()
	cell, err := c.Grid().CellAt(row, col)
	require.NoError(t, err)
	return cell
}

func TestClick_OutOfBounds(t *testing.T) {
	c, _ := newController(t)
	assert.ErrorIs(t, c.Click(5, 0), grid.ErrOutOfBounds)
	assert.ErrorIs(t, c.ClickPointer(10, 55), grid.ErrOutOfBounds)
	assert.ErrorIs(t, c.Erase(-1, 0), grid.ErrOutOfBounds)
}

func TestClickPointer_Axes(t *testing.T) {
	c, _ := newController(t)
	// x selects the column, y selects the row; the cell size is 10.
	require.NoError(t, c.ClickPointer(42, 13))
	assert.Equal(t, grid.Start, state(t, c, 1, 4))

	require.NoError(t, c.ErasePointer(49, 19))
	assert.Nil(t, c.Start())
	assert.Equal(t, grid.Empty, state(t, c, 1, 4))

	// Just left of or above the grid is rejected, not snapped to row or column 0.
	assert.ErrorIs(t, c.ClickPointer(-5, 25), grid.ErrOutOfBounds)
	assert.ErrorIs(t, c.ClickPointer(25, -1), grid.ErrOutOfBounds)
	assert.ErrorIs(t, c.ErasePointer(-1, 0), grid.ErrOutOfBounds)
	assert.Equal(t, 25, c.Grid().Count(grid.Empty))
}

func TestErase_ForgetsEndpoints(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Click(0, 0))
	require.NoError(t, c.Click(1, 1))
	require.NoError(t, c.Erase(1, 1))
	assert.Nil(t, c.End())
	require.NoError(t, c.Erase(0, 0))
	assert.Nil(t, c.Start())
}

func TestRun_NotReady(t *testing.T) {
	c, _ := newController(t)
	_, err := c.Run(context.Background(), nil)
	assert.ErrorIs(t, err, controller.ErrNotReady)

	require.NoError(t, c.Click(0, 0))
	_, err = c.Run(context.Background(), nil)
	assert.ErrorIs(t, err, controller.ErrNotReady)
}

func TestRun_FindsPathAndLogs(t *testing.T) {
	c, logs := newController(t, controller.WithMode(astar.ModeDecreaseKey))
	require.NoError(t, c.Click(0, 0))
	require.NoError(t, c.Click(4, 4))
	for col := 0; col < 4; col++ {
		require.NoError(t, c.Click(2, col))
	}

	renders := 0
	res, err := c.Run(context.Background(), astar.RenderFunc(func() error {
		renders++
		return nil
	}))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 8, res.Hops)
	assert.Contains(t, res.Path, mustCell(t, c, 2, 4))
	// initial render + one per non-goal pop + one per path step + final
	assert.Equal(t, res.Renders, renders)
	assert.Equal(t, 1+(len(res.Order)-1)+res.Hops+1, renders)

	out := logs.String()
	assert.Contains(t, out, "search started")
	assert.Contains(t, out, "mode=decrease-key")
	assert.Contains(t, out, "path found")
	assert.Contains(t, out, "hops=8")
}

func TestRun_RebuildsAdjacencyAndResetsMarks(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Click(0, 0))
	require.NoError(t, c.Click(0, 4))

	res, err := c.Run(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Hops)

	// Wall off the end; the next run must see the new barriers.
	require.NoError(t, c.Click(0, 3))
	require.NoError(t, c.Click(1, 4))
	res, err = c.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, c.Grid().Count(grid.Path))
	assert.Equal(t, grid.End, state(t, c, 0, 4))
}

func TestRun_QuitFromRenderer(t *testing.T) {
	c, logs := newController(t)
	require.NoError(t, c.Click(0, 0))
	require.NoError(t, c.Click(4, 4))

	calls := 0
	_, err := c.Run(context.Background(), astar.RenderFunc(func() error {
		calls++
		if calls == 3 {
			return controller.ErrQuit
		}
		return nil
	}))
	assert.ErrorIs(t, err, controller.ErrQuit)
	assert.ErrorIs(t, err, astar.ErrRenderAborted)
	assert.Contains(t, logs.String(), "search stopped by quit")
	// Cells explored so far keep their marks.
	assert.Positive(t, c.Grid().Count(grid.Closed))
}

func TestClear(t *testing.T) {
	c, logs := newController(t)
	require.NoError(t, c.Click(0, 0))
	require.NoError(t, c.Click(4, 4))
	require.NoError(t, c.Click(2, 2))
	old := c.Grid()

	require.NoError(t, c.Clear())
	assert.NotSame(t, old, c.Grid())
	assert.Nil(t, c.Start())
	assert.Nil(t, c.End())
	assert.Equal(t, 25, c.Grid().Count(grid.Empty))
	assert.True(t, strings.Contains(logs.String(), "grid cleared"))
}

func ExampleController() {
	c, _ := controller.New(3, 30, controller.WithLogger(slog.New(slog.DiscardHandler)))
	_ = c.Click(0, 0)
	_ = c.Click(2, 2)
	_ = c.Click(1, 1)

	res, err := c.Run(context.Background(), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Found, res.Hops)
	// Output: true 4
}
