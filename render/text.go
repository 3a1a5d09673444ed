package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathviz/grid"
)

// TextOptions configures text output.
type TextOptions struct {
	// Plain writes one glyph per cell with no escape sequences.
	Plain bool
	// CellWidth is the number of terminal columns per cell in colored output.
	CellWidth int
	// Palette supplies the cell colors for colored output.
	Palette Palette
}

// TextOption mutates TextOptions.
type TextOption func(*TextOptions)

// DefaultTextOptions returns colored output, two columns per cell, DefaultPalette.
func DefaultTextOptions() TextOptions {
	return TextOptions{CellWidth: 2, Palette: DefaultPalette()}
}

// WithPlain switches to glyph output.
func WithPlain() TextOption {
	return func(o *TextOptions) { o.Plain = true }
}

// WithCellWidth sets the columns per cell. Values below 1 are ignored.
func WithCellWidth(w int) TextOption {
	return func(o *TextOptions) {
		if w >= 1 {
			o.CellWidth = w
		}
	}
}

// WithPalette overrides the colors.
func WithPalette(p Palette) TextOption {
	return func(o *TextOptions) { o.Palette = p }
}

// Text renders g one line per row.
func Text(g *grid.Grid, opts ...TextOption) string {
	o := DefaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var styles map[grid.State]lipgloss.Style
	if !o.Plain {
		styles = make(map[grid.State]lipgloss.Style, len(o.Palette.States))
		for s := range o.Palette.States {
			styles[s] = lipgloss.NewStyle().Background(lipgloss.Color(o.Palette.Hex(s)))
		}
	}
	block := strings.Repeat(" ", o.CellWidth)

	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Rows; col++ {
			c, _ := g.CellAt(row, col)
			if o.Plain {
				b.WriteRune(c.State.Glyph())
				continue
			}
			b.WriteString(styles[c.State].Render(block))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// TextRenderer writes a full text frame to W on every Render call.
// It satisfies astar.Renderer.
type TextRenderer struct {
	W      io.Writer
	Grid   *grid.Grid
	Opts   []TextOption
	Clear  bool
	frames int
}

// Render writes the current grid, preceded by a screen clear when Clear is set.
func (r *TextRenderer) Render() error {
	r.frames++
	prefix := ""
	if r.Clear {
		prefix = clearScreen
	}
	if _, err := fmt.Fprint(r.W, prefix+Text(r.Grid, r.Opts...)); err != nil {
		return fmt.Errorf("render: text frame %d: %w", r.frames, err)
	}
	return nil
}

// Frames returns how many frames have been written.
func (r *TextRenderer) Frames() int { return r.frames }
