package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

func TestFrontier_EqualPrioritiesPopFIFO(t *testing.T) {
	g, err := grid.New(3, 30)
	require.NoError(t, err)

	var f frontier
	heap.Init(&f)
	var want []*grid.Cell
	seq := 0
	g.ForEach(func(c *grid.Cell) {
		heap.Push(&f, &entry{cell: c, priority: 4, seq: seq})
		want = append(want, c)
		seq++
	})

	var got []*grid.Cell
	for f.Len() > 0 {
		got = append(got, heap.Pop(&f).(*entry).cell)
	}
	assert.Equal(t, want, got)
}

func TestFrontier_FixAfterDecrease(t *testing.T) {
	g, _ := grid.New(2, 20)
	a, _ := g.CellAt(0, 0)
	b, _ := g.CellAt(1, 1)

	var f frontier
	ea := &entry{cell: a, priority: 9, seq: 0}
	eb := &entry{cell: b, priority: 5, seq: 1}
	heap.Push(&f, ea)
	heap.Push(&f, eb)

	ea.priority = 3
	heap.Fix(&f, ea.index)

	first := heap.Pop(&f).(*entry)
	assert.Equal(t, a, first.cell)
	assert.Equal(t, -1, first.index)
}
