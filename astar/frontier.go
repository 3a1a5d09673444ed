package astar

import "github.com/katalvlaran/pathviz/grid"

// entry is one queued cell. seq is the insertion counter used to break
// priority ties first-in first-out. index is maintained by the heap so an
// entry can be fixed in place.
type entry struct {
	cell     *grid.Cell
	priority int
	seq      int
	index    int
}

// frontier is a min-heap of *entry ordered by (priority, seq). Since seq is
// unique the order is total and never depends on cell identity.
type frontier []*entry

// Len returns the number of queued entries.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by insertion order.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

// Swap swaps two entries and keeps their indices current.
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

// Push appends x, which must be an *entry. Called by heap.Push.
func (f *frontier) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*f)
	*f = append(*f, e)
}

// Pop removes the last entry. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*f = old[:n-1]

	return e
}
