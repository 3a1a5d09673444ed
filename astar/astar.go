package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathviz/grid"
)

// inf marks an undiscovered cell in distTo and priority.
const inf = math.MaxInt

// Search finds a shortest path in hop count from start to end over the
// grid's current adjacency, marking cells as it goes.
//
// Returns a Result whose Found field reports success. An exhausted frontier
// is not an error: Found is false and the Open/Closed markings stay in place.
//
// Preconditions and validation (in order):
//  1. g must be non-nil.
//  2. start and end must be non-nil.
//  3. start and end must belong to g.
//  4. neither start nor end may be a Barrier.
//
// Each failure returns ErrInvalidSearchRequest wrapped with the reason.
// A renderer error returns ErrRenderAborted; a cancelled context returns
// the context's error.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	n := g.Rows * g.Rows
	r := &runner{
		g:        g,
		start:    start,
		end:      end,
		opts:     cfg,
		distTo:   make(map[*grid.Cell]int, n),
		priority: make(map[*grid.Cell]int, n),
		cameFrom: make(map[*grid.Cell]*grid.Cell, n),
		open:     make(frontier, 0, n),
		queued:   mapset.New[*grid.Cell](),
		entries:  make(map[*grid.Cell]*entry, n),
		res:      &Result{Hops: -1},
	}
	r.init()
	if err := r.run(); err != nil {
		return nil, err
	}

	return r.res, nil
}

func validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: grid is nil", ErrInvalidSearchRequest)
	case start == nil:
		return fmt.Errorf("%w: start is unset", ErrInvalidSearchRequest)
	case end == nil:
		return fmt.Errorf("%w: end is unset", ErrInvalidSearchRequest)
	case !g.Owns(start):
		return fmt.Errorf("%w: start %v belongs to another grid", ErrInvalidSearchRequest, start)
	case !g.Owns(end):
		return fmt.Errorf("%w: end %v belongs to another grid", ErrInvalidSearchRequest, end)
	case start.IsBarrier():
		return fmt.Errorf("%w: start %v is a barrier", ErrInvalidSearchRequest, start)
	case end.IsBarrier():
		return fmt.Errorf("%w: end %v is a barrier", ErrInvalidSearchRequest, end)
	}
	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g          *grid.Grid
	start, end *grid.Cell
	opts       Options

	distTo   map[*grid.Cell]int        // best known hops from start; inf if undiscovered
	priority map[*grid.Cell]int        // distTo + heuristic, queue ordering only
	cameFrom map[*grid.Cell]*grid.Cell // best known predecessor
	open     frontier                  // min-heap of queued entries
	queued   mapset.Set[*grid.Cell]    // mirrors the cells currently in open
	entries  map[*grid.Cell]*entry     // queued entry per cell, for ModeDecreaseKey
	counter  int                       // insertion counter for tie-breaking

	res *Result
}

// init sets every distance to +∞ and queues the start with counter 0.
func (r *runner) init() {
	r.g.ForEach(func(c *grid.Cell) {
		r.distTo[c] = inf
		r.priority[c] = inf
	})
	r.distTo[r.start] = 0
	r.priority[r.start] = grid.Manhattan(r.start, r.end)

	heap.Init(&r.open)
	r.push(r.start)
}

// push queues c at its current priority with the next insertion counter.
func (r *runner) push(c *grid.Cell) {
	e := &entry{cell: c, priority: r.priority[c], seq: r.counter}
	r.counter++
	heap.Push(&r.open, e)
	r.queued.Put(c)
	r.entries[c] = e
	r.res.Pushes++
}

// pop removes the minimum entry and drops the cell from the membership set.
func (r *runner) pop() *grid.Cell {
	e := heap.Pop(&r.open).(*entry)
	r.queued.Remove(e.cell)
	delete(r.entries, e.cell)
	r.res.Order = append(r.res.Order, e.cell)
	r.opts.OnPop(e.cell)

	return e.cell
}

// run is the main loop: pop, goal test, relax, render, close.
func (r *runner) run() error {
	if r.opts.InitialRender {
		if err := r.render(); err != nil {
			return err
		}
	}

	for r.open.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}

		current := r.pop()
		if current == r.end {
			return r.reconstruct()
		}

		r.relax(current)

		err := r.render()
		if current != r.start {
			current.MarkClosed()
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of current by one hop.
func (r *runner) relax(current *grid.Cell) {
	for _, nb := range current.Neighbors {
		cand := r.distTo[current] + 1
		if cand >= r.distTo[nb] {
			continue
		}
		r.cameFrom[nb] = current
		r.distTo[nb] = cand
		r.priority[nb] = cand + grid.Manhattan(nb, r.end)

		if r.queued.Has(nb) {
			// Already queued: ModeLazy leaves the stale entry as is.
			if r.opts.Mode == ModeDecreaseKey {
				e := r.entries[nb]
				e.priority = r.priority[nb]
				heap.Fix(&r.open, e.index)
			}
			continue
		}
		r.push(nb)
		nb.MarkOpen()
	}
}

// render invokes the callback and wraps any error it returns.
func (r *runner) render() error {
	r.res.Renders++
	if err := r.opts.Renderer.Render(); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderAborted, err)
	}
	return nil
}
