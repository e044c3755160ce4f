// Package app wires the universe to its front ends.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"chunk-life/internal/core"
	"chunk-life/internal/input"
	"chunk-life/internal/render"
	"chunk-life/internal/ui"
	"chunk-life/internal/universe"
)

// Loop is the single writer of a universe. Each turn it waits for whichever
// comes first: the step timer, one input command, or cancellation.
type Loop struct {
	universe *universe.Universe
	renderer render.Renderer
	events   <-chan input.Command
	interval time.Duration
	auto     bool
	logger   *log.Logger
}

// NewLoop binds u to r and registers itself as the universe's controls.
func NewLoop(u *universe.Universe, r render.Renderer, events <-chan input.Command, interval time.Duration, auto bool, logger *log.Logger) *Loop {
	l := &Loop{
		universe: u,
		renderer: r,
		events:   events,
		interval: interval,
		auto:     auto,
		logger:   logger,
	}
	u.SetControls(l)
	return l
}

// Auto reports whether the loop steps on every timer tick.
func (l *Loop) Auto() bool { return l.auto }

// IncrementViewport forwards a pan to the renderer.
func (l *Loop) IncrementViewport(dx, dy int) { l.renderer.IncrementViewport(dx, dy) }

// ToggleAutoRun flips between automatic and manual stepping.
func (l *Loop) ToggleAutoRun() {
	l.auto = !l.auto
	l.logger.Printf("auto-run %v at generation %d", l.auto, l.universe.Generation())
}

// Run draws the initial frame and then serves timer ticks and commands until
// Quit, a closed event channel, cancellation or an error.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.draw(); err != nil {
		return err
	}
	for {
		timer := time.NewTimer(l.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			if l.auto {
				if err := l.step(); err != nil {
					return err
				}
			}
		case cmd, ok := <-l.events:
			timer.Stop()
			if !ok {
				return nil
			}
			quit, err := l.handle(cmd)
			if err != nil {
				return err
			}
			if quit {
				l.logger.Printf("quit at generation %d", l.universe.Generation())
				return nil
			}
		}
	}
}

// Parameters extends the universe counters with front-end state.
func (l *Loop) Parameters() core.ParameterSnapshot {
	snap := l.universe.Parameters()
	mode := "paused"
	if l.auto {
		mode = "auto"
	}
	params := []core.Parameter{{Key: "mode", Label: "Mode", Type: core.ParamTypeText, Value: mode}}
	if v, ok := l.renderer.(interface{ View() render.Viewport }); ok {
		o := v.View().Origin
		params = append(params, core.Parameter{Key: "view", Label: "View", Type: core.ParamTypeText, Value: fmt.Sprintf("%d,%d", o.X, o.Y)})
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Front end", Params: params})
	return snap
}

// Status renders the one-line summary shown under the terminal grid.
func (l *Loop) Status() string {
	return ui.StatusLine(l.Parameters(), "generation", "chunks", "population", "view", "mode")
}

func (l *Loop) handle(cmd input.Command) (bool, error) {
	switch cmd {
	case input.Quit:
		return true, nil
	case input.StepOnce:
		return false, l.step()
	case input.Redraw:
		if s, ok := l.renderer.(interface{ Sync() }); ok {
			s.Sync()
		}
		return false, l.draw()
	}
	a, ok := cmd.Action()
	if !ok {
		return false, nil
	}
	l.universe.Enqueue(a)
	if err := l.universe.Drain(); err != nil {
		return false, err
	}
	return false, l.draw()
}

func (l *Loop) step() error {
	if err := l.universe.Step(); err != nil {
		return fmt.Errorf("step to generation %d: %w", l.universe.Generation()+1, err)
	}
	return l.draw()
}

func (l *Loop) draw() error {
	if err := l.renderer.DrawFrame(l.universe.Chunks()); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}
