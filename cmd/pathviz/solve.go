package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
)

var errVerify = errors.New("pathviz: search disagrees with breadth-first distances")

type solveOptions struct {
	mapFile   string
	rows      int
	cellPx    int
	wall      int
	gaps      []int
	random    float64
	maze      bool
	seed      int64
	start     string
	end       string
	mode      string
	png       string
	frames    string
	plain     bool
	clipboard bool
	verify    bool
}

func newSolveCmd() *cobra.Command {
	o := solveOptions{wall: -1, mode: astar.ModeLazy.String()}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run A* headlessly on a map or generated layout",
		Long: `Run A* headlessly on a text map or a generated layout and print the result.

Map files use one line per row: '.' empty, '#' barrier, 'S' start, 'E' end.
Generated grids default to the start in the top-left corner and the end in the
bottom-right corner.

Examples:
  pathviz solve --map maze.txt --plain
  pathviz solve --rows 20 --wall 10 --gap 0 --png out.png
  pathviz solve --rows 40 --random 0.3 --seed 7 --frames frames/ --verify
  pathviz solve --rows 31 --maze --seed 3 --mode decrease-key --png maze.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.mapFile, "map", "", "Text map file")
	f.IntVarP(&o.rows, "rows", "n", 20, "Rows of a generated grid")
	f.IntVar(&o.cellPx, "cell-px", 10, "Cell size in pixels for image output")
	f.IntVar(&o.wall, "wall", o.wall, "Block this row, except --gap columns")
	f.IntSliceVar(&o.gaps, "gap", nil, "Columns left open in --wall")
	f.Float64Var(&o.random, "random", 0, "Scatter barriers with this density")
	f.BoolVar(&o.maze, "maze", false, "Carve a random perfect maze (odd --rows keeps all corners open)")
	f.Int64Var(&o.seed, "seed", 1, "Seed for --random and --maze")
	f.StringVar(&o.start, "start", "", "Start cell as row,col")
	f.StringVar(&o.end, "end", "", "End cell as row,col")
	f.StringVar(&o.mode, "mode", o.mode, "Frontier mode: lazy or decrease-key")
	f.StringVar(&o.png, "png", "", "Write the final grid to this PNG file")
	f.StringVar(&o.frames, "frames", "", "Write one PNG per search step into this directory")
	f.BoolVar(&o.plain, "plain", false, "Print glyphs instead of colored blocks")
	f.BoolVar(&o.clipboard, "clipboard", false, "Copy the plain text result to the clipboard")
	f.BoolVar(&o.verify, "verify", false, "Check the path length against breadth-first search")

	return cmd
}

func runSolve(cmd *cobra.Command, o solveOptions) error {
	log := slog.Default().With(slog.String("component", "solve"))

	mode, err := astar.ParseMode(o.mode)
	if err != nil {
		return err
	}
	m, err := o.load()
	if err != nil {
		return err
	}
	if m.Start == nil || m.End == nil {
		return fmt.Errorf("solve: %w", controller.ErrNotReady)
	}

	g := m.Grid
	g.RebuildAdjacency()

	opts := []astar.Option{astar.WithContext(cmd.Context()), astar.WithMode(mode)}
	var rec *render.FrameRecorder
	if o.frames != "" {
		rec, err = render.NewFrameRecorder(o.frames, g, render.WithCellPx(o.cellPx))
		if err != nil {
			return err
		}
		opts = append(opts, astar.WithRenderer(rec), astar.WithInitialRender())
	}

	log.Info("search started",
		slog.Int("rows", g.Rows),
		slog.String("start", m.Start.String()),
		slog.String("end", m.End.String()),
		slog.String("mode", mode.String()))

	res, err := astar.Search(g, m.Start, m.End, opts...)
	if err != nil {
		return err
	}
	log.Info("search finished",
		slog.Bool("found", res.Found),
		slog.Int("hops", res.Hops),
		slog.Int("expanded", len(res.Order)))

	out := cmd.OutOrStdout()
	var textOpts []render.TextOption
	if o.plain {
		textOpts = append(textOpts, render.WithPlain())
	}
	fmt.Fprint(out, render.Text(g, textOpts...))
	fmt.Fprintln(out, summary(res))

	if o.verify {
		if err := verify(out, m, res, mode); err != nil {
			return err
		}
	}
	if rec != nil {
		fmt.Fprintf(out, "frames: %d in %s\n", rec.Frames(), o.frames)
	}
	if o.png != "" {
		if err := render.SavePNG(g, o.png, render.WithCellPx(o.cellPx), render.WithCaption(summary(res))); err != nil {
			return err
		}
		log.Info("image written", slog.String("path", o.png))
	}
	if o.clipboard {
		if err := clipboard.WriteAll(render.Text(g, render.WithPlain())); err != nil {
			log.Warn("clipboard unavailable", slog.Any("error", err))
		}
	}
	return nil
}

// load reads the map file or generates a grid from the layout flags.
// --start and --end override the endpoints of a map.
func (o solveOptions) load() (*builder.Map, error) {
	if o.cellPx < 1 {
		return nil, fmt.Errorf("--cell-px must be positive")
	}

	var m *builder.Map
	if o.mapFile != "" {
		f, err := os.Open(o.mapFile)
		if err != nil {
			return nil, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		if m, err = builder.Parse(f, builder.WithCellSize(o.cellPx)); err != nil {
			return nil, err
		}
	} else {
		g, err := grid.New(o.rows, o.rows*o.cellPx)
		if err != nil {
			return nil, err
		}
		m = &builder.Map{Grid: g}
		if o.start == "" {
			m.Start, _ = g.CellAt(0, 0)
			m.Start.MarkStart()
		}
		if o.end == "" {
			m.End, _ = g.CellAt(o.rows-1, o.rows-1)
			m.End.MarkEnd()
		}
	}

	if err := place(m.Grid, &m.Start, m.End, o.start, grid.Start); err != nil {
		return nil, fmt.Errorf("--start: %w", err)
	}
	if err := place(m.Grid, &m.End, m.Start, o.end, grid.End); err != nil {
		return nil, fmt.Errorf("--end: %w", err)
	}

	var (
		bopts   = []builder.BuilderOption{builder.WithGaps(o.gaps...)}
		layouts []builder.Layout
	)
	if o.maze {
		layouts = append(layouts, builder.Maze())
	}
	if o.wall >= 0 {
		layouts = append(layouts, builder.Wall(o.wall))
	}
	if o.random > 0 {
		if o.random > 1 {
			return nil, fmt.Errorf("--random %v: %w", o.random, builder.ErrInvalidDensity)
		}
		bopts = append(bopts, builder.WithDensity(o.random))
		layouts = append(layouts, builder.Scatter())
	}
	if o.maze || o.random > 0 {
		bopts = append(bopts, builder.WithSeed(o.seed))
	}
	if err := builder.Apply(m.Grid, bopts, layouts...); err != nil {
		return nil, err
	}
	return m, nil
}

// place moves an endpoint to the "row,col" cell in pos. An empty pos
// keeps the current endpoint. When the cell is already the other endpoint
// it keeps its tag, so start == end stays a single Start cell.
func place(g *grid.Grid, endpoint **grid.Cell, other *grid.Cell, pos string, s grid.State) error {
	if pos == "" {
		return nil
	}
	row, col, err := parseCell(pos)
	if err != nil {
		return err
	}
	c, err := g.CellAt(row, col)
	if err != nil {
		return err
	}
	if *endpoint != nil && *endpoint != other {
		(*endpoint).MarkEmpty()
	}
	if c != other {
		c.State = s
	}
	*endpoint = c
	return nil
}

func parseCell(s string) (row, col int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cell %q (use row,col)", s)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	return row, col, nil
}

func summary(res *astar.Result) string {
	if !res.Found {
		return fmt.Sprintf("found: false expanded: %d", len(res.Order))
	}
	return fmt.Sprintf("found: true hops: %d expanded: %d", res.Hops, len(res.Order))
}

// verify compares the search result with breadth-first distances over the
// same adjacency. Lazy mode may return a longer path; that is reported, not
// failed.
func verify(w io.Writer, m *builder.Map, res *astar.Result, mode astar.Mode) error {
	b, err := bfs.BFS(m.Grid, m.Start)
	if err != nil {
		return err
	}
	shortest, reached := b.Depth[m.End]
	switch {
	case reached != res.Found:
		return fmt.Errorf("%w: search found=%t, breadth-first reached=%t", errVerify, res.Found, reached)
	case !reached:
		fmt.Fprintln(w, "verify: ok (unreachable)")
	case res.Hops == shortest:
		fmt.Fprintf(w, "verify: ok (shortest %d)\n", shortest)
	case mode == astar.ModeDecreaseKey:
		return fmt.Errorf("%w: hops %d, shortest %d", errVerify, res.Hops, shortest)
	default:
		fmt.Fprintf(w, "verify: lazy path %d hops, shortest %d\n", res.Hops, shortest)
	}
	return nil
}
