package astar

import "github.com/katalvlaran/pathviz/grid"

// reconstruct marks end as End, walks cameFrom backwards marking each
// predecessor as Path with a render after every step, then marks the cell
// with no predecessor (the start) as Start and renders once more.
//
// Result.Path is stored start→end even though the marking runs end→start.
func (r *runner) reconstruct() error {
	current := r.end
	current.MarkEnd()
	path := []*grid.Cell{current}

	for {
		prev, ok := r.cameFrom[current]
		if !ok {
			break
		}
		current = prev
		current.MarkPath()
		path = append(path, current)
		if err := r.render(); err != nil {
			return err
		}
	}
	current.MarkStart()

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	r.res.Found = true
	r.res.Path = path
	r.res.Hops = len(path) - 1

	return r.render()
}
