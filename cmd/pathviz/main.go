// Command pathviz explores grid A* searches interactively in a terminal
// (pathviz play) or headlessly from maps and generated layouts (pathviz solve).
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
