package render

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/pathviz/grid"
)

// Palette maps each cell state to a color. GridLine colors the separators
// drawn between cells in image output.
type Palette struct {
	States   map[grid.State]color.RGBA
	GridLine color.RGBA
}

// DefaultPalette returns the classic scheme: white empty, green open, red
// closed, black barrier, orange start, blue end, purple path, grey lines.
func DefaultPalette() Palette {
	return Palette{
		States: map[grid.State]color.RGBA{
			grid.Empty:   {255, 255, 255, 255},
			grid.Open:    {0, 255, 0, 255},
			grid.Closed:  {255, 0, 0, 255},
			grid.Barrier: {0, 0, 0, 255},
			grid.Start:   {255, 165, 0, 255},
			grid.End:     {0, 0, 255, 255},
			grid.Path:    {128, 0, 128, 255},
		},
		GridLine: color.RGBA{128, 128, 128, 255},
	}
}

// Color returns the color for s, falling back to the Empty color.
func (p Palette) Color(s grid.State) color.RGBA {
	if c, ok := p.States[s]; ok {
		return c
	}
	return p.States[grid.Empty]
}

// Hex returns the color for s as "#rrggbb".
func (p Palette) Hex(s grid.State) string {
	c := p.Color(s)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
