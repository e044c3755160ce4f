package app

import (
	"context"
	"log"

	"chunk-life/internal/input"
	"chunk-life/internal/render"
	"chunk-life/internal/universe"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// RunTerminal runs the simulation in the controlling terminal until the user
// quits or ctx is cancelled. The terminal is restored on every exit path.
func RunTerminal(ctx context.Context, cfg *Config, logger *log.Logger) error {
	u, err := NewUniverse(cfg, logger)
	if err != nil {
		return err
	}
	term, err := render.OpenTerminal(cfg.Viewport(), cfg.Glyphs())
	if err != nil {
		return err
	}
	defer term.Close()
	return runTerminal(ctx, cfg, u, term, logger)
}

func runTerminal(ctx context.Context, cfg *Config, u *universe.Universe, term *render.Terminal, logger *log.Logger) error {
	events := make(chan input.Command, 16)
	loop := NewLoop(u, term, events, cfg.Interval, cfg.Auto, logger)
	term.SetStatus(loop.Status)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	g.Go(func() error {
		// Finalizing the screen unblocks the pump's PollEvent.
		defer term.Close()
		defer stop()
		return loop.Run(runCtx)
	})
	g.Go(func() error {
		return pumpEvents(runCtx, term.Screen(), events)
	})
	return g.Wait()
}

// pumpEvents translates screen events into commands. It returns once the
// screen is finalized or ctx is done.
func pumpEvents(ctx context.Context, screen tcell.Screen, events chan<- input.Command) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		cmd := input.FromEvent(ev)
		if cmd == input.None {
			continue
		}
		select {
		case events <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}
