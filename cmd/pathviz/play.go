package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/terminal"
)

// cellColumns is how many terminal columns one grid cell occupies.
const cellColumns = 2

type playOptions struct {
	rows    int
	delay   time.Duration
	sound   bool
	logFile string
	mode    string
}

func newPlayCmd(logLevel *string) *cobra.Command {
	o := playOptions{mode: astar.ModeLazy.String()}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Draw barriers and watch A* in the terminal",
		Long: `Draw barriers and watch A* in the terminal.

Left click places the start, then the end, then barriers. Right click erases.
Space runs the search, r resets it, c clears the grid, q quits.

Examples:
  pathviz play
  pathviz play --rows 20 --delay 20ms --sound
  pathviz play --log-file pathviz.log --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, o, *logLevel)
		},
	}

	cmd.Flags().IntVarP(&o.rows, "rows", "n", 0, "Grid rows; 0 fits the terminal")
	cmd.Flags().DurationVar(&o.delay, "delay", 5*time.Millisecond, "Pause after each search step")
	cmd.Flags().BoolVar(&o.sound, "sound", false, "Play a tone when a search finishes")
	cmd.Flags().StringVar(&o.logFile, "log-file", "", "Write logs to this file instead of discarding them")
	cmd.Flags().StringVar(&o.mode, "mode", o.mode, "Frontier mode: lazy or decrease-key")

	return cmd
}

func runPlay(cmd *cobra.Command, o playOptions, logLevel string) error {
	mode, err := astar.ParseMode(o.mode)
	if err != nil {
		return err
	}
	if o.delay < 0 {
		return fmt.Errorf("--delay must not be negative")
	}

	// The terminal owns stdout and stderr while the screen is up.
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger, err := newLogger(f, logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
	} else {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}
	log := slog.Default().With(slog.String("component", "play"))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	rows, err := fitRows(screen, o.rows)
	if err != nil {
		return err
	}

	ctl, err := controller.New(rows, rows*cellColumns, controller.WithMode(mode))
	if err != nil {
		return err
	}

	var cue terminal.Cue = terminal.Silent{}
	if o.sound {
		b, err := terminal.NewBeeper()
		if err != nil {
			// Non-fatal, play continues without sound
			log.Warn("audio unavailable", slog.Any("error", err))
		} else {
			defer b.Close()
			cue = b
		}
	}

	log.Info("session started", slog.Int("rows", rows), slog.String("mode", mode.String()))
	app := terminal.New(screen, ctl, terminal.WithDelay(o.delay), terminal.WithCue(cue))
	err = app.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// fitRows returns rows, or the largest row count the screen can show when
// rows is zero. Two lines are kept for the status and help text.
func fitRows(screen tcell.Screen, rows int) (int, error) {
	w, h := screen.Size()
	limit := min(w/cellColumns, h-2)
	if limit < 1 {
		return 0, fmt.Errorf("terminal %dx%d is too small", w, h)
	}
	if rows == 0 {
		return limit, nil
	}
	if rows < 0 || rows > limit {
		return 0, fmt.Errorf("--rows %d does not fit a %dx%d terminal (max %d)", rows, w, h, limit)
	}
	return rows, nil
}
