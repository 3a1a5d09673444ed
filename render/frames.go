package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/pathviz/grid"
)

// FrameRecorder saves one PNG per Render call into Dir, named
// frame_00000.png, frame_00001.png, ... It satisfies astar.Renderer, so a
// search can be recorded headlessly and stitched into an animation later.
type FrameRecorder struct {
	Dir  string
	Grid *grid.Grid
	Opts []ImageOption

	n int
}

// NewFrameRecorder creates dir if needed and returns a recorder for g.
func NewFrameRecorder(dir string, g *grid.Grid, opts ...ImageOption) (*FrameRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: frames dir: %w", err)
	}
	return &FrameRecorder{Dir: dir, Grid: g, Opts: opts}, nil
}

// Render writes the next frame, captioned with its index.
func (f *FrameRecorder) Render() error {
	name := filepath.Join(f.Dir, fmt.Sprintf("frame_%05d.png", f.n))
	opts := append([]ImageOption{WithCaption(fmt.Sprintf("step %d", f.n))}, f.Opts...)
	if err := SavePNG(f.Grid, name, opts...); err != nil {
		return err
	}
	f.n++
	return nil
}

// Frames returns how many frames have been written.
func (f *FrameRecorder) Frames() int { return f.n }
