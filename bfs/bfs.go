package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  *grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	queue   []queueItem
	visited mapset.Set[*grid.Cell]
	res     *Result
}

// BFS runs breadth-first search over g's current adjacency from start.
// Returns ErrGridNil or ErrStartNotInGrid for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(g *grid.Grid, start *grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Owns(start) {
		return nil, ErrStartNotInGrid
	}

	n := g.Rows * g.Rows
	w := &walker{
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: mapset.New[*grid.Cell](),
		res: &Result{
			Order:  make([]*grid.Cell, 0, n),
			Depth:  make(map[*grid.Cell]int, n),
			Parent: make(map[*grid.Cell]*grid.Cell, n),
		},
	}

	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent and queues it.
func (w *walker) enqueue(c *grid.Cell, d int, parent *grid.Cell) {
	w.visited.Put(c)
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = parent
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range item.cell.Neighbors {
			if !w.visited.Has(nb) {
				w.enqueue(nb, next, item.cell)
			}
		}
	}
	return nil
}
