package render

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/katalvlaran/pathviz/grid"
)

const captionHeight = 20

// ImageOptions configures image output.
type ImageOptions struct {
	// CellPx overrides the cell size. Zero uses the grid's own Gap.
	CellPx int
	// Caption, when non-empty, is drawn in a band below the grid.
	Caption string
	// Lines draws grid lines between cells.
	Lines   bool
	Palette Palette
}

// ImageOption mutates ImageOptions.
type ImageOption func(*ImageOptions)

// DefaultImageOptions returns grid-sized cells with lines and DefaultPalette.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Lines: true, Palette: DefaultPalette()}
}

// WithCellPx sets the cell size in pixels. Values below 1 are ignored.
func WithCellPx(px int) ImageOption {
	return func(o *ImageOptions) {
		if px >= 1 {
			o.CellPx = px
		}
	}
}

// WithCaption draws s below the grid.
func WithCaption(s string) ImageOption {
	return func(o *ImageOptions) { o.Caption = s }
}

// WithoutLines disables grid lines.
func WithoutLines() ImageOption {
	return func(o *ImageOptions) { o.Lines = false }
}

// WithImagePalette overrides the colors.
func WithImagePalette(p Palette) ImageOption {
	return func(o *ImageOptions) { o.Palette = p }
}

var monoFace = sync.OnceValues(func() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
})

// Draw paints g into a new gg context: a filled square per cell, then grid
// lines, then the caption band.
func Draw(g *grid.Grid, opts ...ImageOption) (*gg.Context, error) {
	o := DefaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}
	gap := g.Gap
	if o.CellPx > 0 {
		gap = o.CellPx
	}
	size := g.Rows * gap
	height := size
	if o.Caption != "" {
		height += captionHeight
	}

	dc := gg.NewContext(size, height)
	dc.SetColor(o.Palette.Color(grid.Empty))
	dc.Clear()

	g.ForEach(func(c *grid.Cell) {
		dc.SetColor(o.Palette.Color(c.State))
		dc.DrawRectangle(float64(c.Col*gap), float64(c.Row*gap), float64(gap), float64(gap))
		dc.Fill()
	})

	if o.Lines {
		dc.SetColor(o.Palette.GridLine)
		dc.SetLineWidth(1)
		for i := 0; i <= g.Rows; i++ {
			p := float64(i * gap)
			dc.DrawLine(0, p, float64(size), p)
			dc.DrawLine(p, 0, p, float64(size))
		}
		dc.Stroke()
	}

	if o.Caption != "" {
		face, err := monoFace()
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(o.Palette.Color(grid.Barrier))
		dc.DrawStringAnchored(o.Caption, 4, float64(size)+captionHeight/2, 0, 0.5)
	}

	return dc, nil
}

// Image returns g as an image.
func Image(g *grid.Grid, opts ...ImageOption) (image.Image, error) {
	dc, err := Draw(g, opts...)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG writes g to path as a PNG.
func SavePNG(g *grid.Grid, path string, opts ...ImageOption) error {
	dc, err := Draw(g, opts...)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes g to w as a PNG.
func EncodePNG(w io.Writer, g *grid.Grid, opts ...ImageOption) error {
	dc, err := Draw(g, opts...)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
