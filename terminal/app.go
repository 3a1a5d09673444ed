package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
)

const helpLine = "click: start/end/wall  right: erase  space: run  r: reset  c: clear  q: quit"

// Options configures an App.
type Options struct {
	// Delay pauses after each search render so exploration is visible.
	Delay   time.Duration
	Cue     Cue
	Palette render.Palette
	Logger  *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns no delay, a silent cue and the default palette.
func DefaultOptions() Options {
	return Options{
		Cue:     Silent{},
		Palette: render.DefaultPalette(),
		Logger:  slog.Default().With(slog.String("component", "terminal")),
	}
}

// WithDelay sets the pause after each search render. Negative values panic.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic("terminal: negative delay")
	}
	return func(o *Options) { o.Delay = d }
}

// WithCue sets the outcome cue. nil is ignored.
func WithCue(c Cue) Option {
	return func(o *Options) {
		if c != nil {
			o.Cue = c
		}
	}
}

// WithLogger replaces the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// App draws a controller's grid on a tcell screen and feeds it input.
type App struct {
	screen tcell.Screen
	ctl    *controller.Controller
	opts   Options
	log    *slog.Logger
	styles map[grid.State]tcell.Style

	events chan tcell.Event
	done   chan struct{}

	status string
	// last painted cell while a button is held, so a drag does not toggle
	// the same cell on every motion event.
	dragging bool
	lastRow  int
	lastCol  int
}

// New returns an App for an initialized screen. The caller owns the screen
// and calls Fini on it.
func New(screen tcell.Screen, ctl *controller.Controller, opts ...Option) *App {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	styles := make(map[grid.State]tcell.Style, len(o.Palette.States))
	for s, c := range o.Palette.States {
		styles[s] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return &App{
		screen: screen,
		ctl:    ctl,
		opts:   o,
		log:    o.Logger,
		styles: styles,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		status: "ready",
	}
}

// Status returns the current status line.
func (a *App) Status() string { return a.status }

// Run processes input until quit or ctx is done. Quitting returns nil.
// Run is called at most once per App.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer close(a.done)
	go a.feed()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			err := a.HandleEvent(ctx, ev)
			if errors.Is(err, controller.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			a.Draw()
		}
	}
}

// feed forwards screen events until the screen is finalized or Run returns.
func (a *App) feed() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// HandleEvent applies one input event. It returns controller.ErrQuit when the
// user asks to leave.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) error {
	if isQuit(ev) {
		return controller.ErrQuit
	}
	if ev.Key() != tcell.KeyRune {
		return nil
	}
	switch ev.Rune() {
	case ' ':
		return a.search(ctx)
	case 'r':
		a.ctl.ResetSearch()
		a.status = "reset"
	case 'c':
		if err := a.ctl.Clear(); err != nil {
			return err
		}
		a.status = "cleared"
	}
	return nil
}

func (a *App) search(ctx context.Context) error {
	a.status = "searching"
	res, err := a.ctl.Run(ctx, a)
	switch {
	case errors.Is(err, controller.ErrNotReady):
		a.status = "place a start and an end first"
		return nil
	case err != nil:
		return err
	case res.Found:
		a.status = fmt.Sprintf("path found: %d hops, %d expanded", res.Hops, len(res.Order))
		a.opts.Cue.Found()
	default:
		a.status = fmt.Sprintf("no path: %d expanded", len(res.Order))
		a.opts.Cue.Missing()
	}
	return nil
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	if btn&(tcell.Button1|tcell.Button2) == 0 {
		a.dragging = false
		return
	}
	x, y := ev.Position()
	g := a.ctl.Grid()
	px, py := x, y*g.Gap
	row, col := g.CellIndex(px, py)
	if a.dragging && row == a.lastRow && col == a.lastCol {
		return
	}
	a.dragging, a.lastRow, a.lastCol = true, row, col

	var err error
	if btn&tcell.Button1 != 0 {
		err = a.ctl.ClickPointer(px, py)
	} else {
		err = a.ctl.ErasePointer(px, py)
	}
	if err != nil {
		// clicks outside the grid are ignored
		a.log.Debug("pointer outside grid", slog.Int("x", x), slog.Int("y", y))
	}
}

// Render redraws the grid between search steps. It drains pending input
// without blocking: quit aborts the search, resize resyncs, anything else
// is dropped. It satisfies astar.Renderer.
func (a *App) Render() error {
	if err := a.drain(); err != nil {
		return err
	}
	a.Draw()
	if a.opts.Delay > 0 {
		time.Sleep(a.opts.Delay)
	}
	return nil
}

func (a *App) drain() error {
	for {
		select {
		case ev, ok := <-a.events:
			if !ok {
				return controller.ErrQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return controller.ErrQuit
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		default:
			return nil
		}
	}
}

// Draw paints the grid, the status line and the help line, then shows them.
func (a *App) Draw() {
	a.screen.Clear()
	g := a.ctl.Grid()
	g.ForEach(func(c *grid.Cell) {
		x, y := g.Origin(c.Row, c.Col)
		style := a.styles[c.State]
		for i := 0; i < g.Gap; i++ {
			a.screen.SetContent(x+i, y/g.Gap, ' ', nil, style)
		}
	})
	a.text(0, g.Rows, a.status)
	a.text(0, g.Rows+1, helpLine)
	a.screen.Show()
}

func (a *App) text(x, y int, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
