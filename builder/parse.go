// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// parse.go - text maps.
//
// Format:
//   • One line per grid row; every row as long as there are rows (square).
//   • '.' empty, '#' barrier, 'S' start, 'E' end.
//   • Blank lines and lines starting with "//" are skipped.
//   • At most one 'S' and one 'E'.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/pathviz/grid"
)

// Map is a parsed text map. Start and End are nil when absent.
type Map struct {
	Grid       *grid.Grid
	Start, End *grid.Cell
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...BuilderOption) (*Map, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a text map into a new grid whose pixel width is
// rows × cell size (WithCellSize, default 10).
func Parse(r io.Reader, opts ...BuilderOption) (*Map, error) {
	cfg := newBuilderConfig(opts...)

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("Parse: no rows: %w", ErrBadMap)
	}

	rows := len(lines)
	g, err := grid.New(rows, rows*cfg.cellSize)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	m := &Map{Grid: g}

	for row, line := range lines {
		if n := utf8.RuneCountInString(line); n != rows {
			return nil, fmt.Errorf("Parse: row %d has %d cells, want %d: %w", row, n, rows, ErrBadMap)
		}
		col := 0
		for _, ch := range line {
			c, _ := g.CellAt(row, col)
			if err := m.place(c, ch); err != nil {
				return nil, fmt.Errorf("Parse: (%d,%d): %w", row, col, err)
			}
			col++
		}
	}

	return m, nil
}

func (m *Map) place(c *grid.Cell, ch rune) error {
	switch ch {
	case '.':
	case '#':
		c.MarkBarrier()
	case 'S':
		if m.Start != nil {
			return fmt.Errorf("second start: %w", ErrBadMap)
		}
		c.MarkStart()
		m.Start = c
	case 'E':
		if m.End != nil {
			return fmt.Errorf("second end: %w", ErrBadMap)
		}
		c.MarkEnd()
		m.End = c
	default:
		return fmt.Errorf("unknown glyph %q: %w", ch, ErrBadMap)
	}
	return nil
}
