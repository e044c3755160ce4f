//go:build ebiten

package ui

import (
	"image/color"

	"chunk-life/internal/chunk"
	"chunk-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws chunk boundaries over the simulation view.
type Overlay struct {
	scale    int
	showGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale}
}

// ToggleGrid flips the chunk grid on or off.
func (o *Overlay) ToggleGrid() { o.showGrid = !o.showGrid }

// Draw outlines every visible chunk; materialized chunks get a brighter
// border than unexplored ones.
func (o *Overlay) Draw(screen *ebiten.Image, view render.Viewport, chunks map[chunk.Coord]*chunk.Chunk) {
	if !o.showGrid {
		return
	}
	span := float32(chunk.Size * o.scale)
	for cy := 0; cy < view.H; cy++ {
		for cx := 0; cx < view.W; cx++ {
			clr := color.RGBA{R: 50, G: 50, B: 60, A: 255}
			if _, ok := chunks[view.Origin.Add(int32(cx), int32(cy))]; ok {
				clr = color.RGBA{R: 70, G: 140, B: 200, A: 255}
			}
			x, y := float32(cx)*span, float32(cy)*span
			vector.StrokeRect(screen, x+0.5, y+0.5, span-1, span-1, 1, clr, false)
		}
	}
}
