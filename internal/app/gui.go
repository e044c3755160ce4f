//go:build ebiten

package app

import (
	"fmt"
	"log"

	"chunk-life/internal/core"
	"chunk-life/internal/input"
	"chunk-life/internal/render"
	"chunk-life/internal/ui"
	"chunk-life/internal/universe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyH:     'h',
	ebiten.KeyL:     'l',
	ebiten.KeyJ:     'j',
	ebiten.KeyK:     'k',
	ebiten.KeySpace: ' ',
	ebiten.KeyN:     'n',
	ebiten.KeyQ:     'q',
	ebiten.KeyG:     'g',
}

// Game adapts a universe to the ebiten.Game interface.
type Game struct {
	universe *universe.Universe
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	timer    *core.FixedStep
	logger   *log.Logger

	scale    int
	auto     bool
	tickOnce bool
}

// NewGame constructs a Game for the provided universe.
func NewGame(u *universe.Universe, cfg *Config, logger *log.Logger) *Game {
	g := &Game{
		universe: u,
		painter:  render.NewGridPainter(cfg.Viewport()),
		overlay:  ui.NewOverlay(cfg.Scale),
		timer:    core.NewFixedStep(cfg.Interval),
		logger:   logger,
		scale:    cfg.Scale,
		auto:     cfg.Auto,
	}
	g.hud = ui.NewHUD(g, hudWidth)
	u.SetControls(g)
	return g
}

// IncrementViewport forwards a pan to the painter.
func (g *Game) IncrementViewport(dx, dy int) { g.painter.IncrementViewport(dx, dy) }

// ToggleAutoRun flips between automatic and manual stepping.
func (g *Game) ToggleAutoRun() {
	g.auto = !g.auto
	g.logger.Printf("auto-run %v at generation %d", g.auto, g.universe.Generation())
}

// Parameters feeds the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	snap := g.universe.Parameters()
	mode := "paused"
	if g.auto {
		mode = "auto"
	}
	o := g.painter.View().Origin
	snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Front end", Params: []core.Parameter{
		{Key: "mode", Label: "Mode", Type: core.ParamTypeText, Value: mode},
		{Key: "view", Label: "View", Type: core.ParamTypeText, Value: fmt.Sprintf("%d,%d", o.X, o.Y)},
	}})
	return snap
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.tickOnce = true
	}
	for key, r := range keyRunes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		switch cmd := input.FromRune(r); cmd {
		case input.Quit:
			return ebiten.Termination
		case input.StepOnce:
			g.tickOnce = true
		case input.ToggleGrid:
			g.overlay.ToggleGrid()
		default:
			if a, ok := cmd.Action(); ok {
				g.universe.Enqueue(a)
			}
		}
	}
	if err := g.universe.Drain(); err != nil {
		return err
	}

	if (g.auto && g.timer.ShouldStep()) || g.tickOnce {
		if err := g.universe.Step(); err != nil {
			return fmt.Errorf("step to generation %d: %w", g.universe.Generation()+1, err)
		}
		g.tickOnce = false
	}
	if err := g.painter.DrawFrame(g.universe.Chunks()); err != nil {
		return err
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen, g.painter.View(), g.universe.Chunks())
	w, h := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}
