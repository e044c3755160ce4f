// Package render draws the visible part of a universe. The simulation hands
// every renderer the full chunk map; renderers pick out what their viewport
// covers.
package render

import (
	"chunk-life/internal/chunk"
	"chunk-life/internal/core"
)

// Renderer is the drawing surface the front ends step against.
type Renderer interface {
	DrawFrame(chunks map[chunk.Coord]*chunk.Chunk) error
	IncrementViewport(dx, dy int)
}

// Raster values written by Viewport.Rasterize.
const (
	RasterAbsent uint8 = iota
	RasterDead
	RasterAlive
)

// Viewport is a rectangle of W x H chunks whose top-left chunk is Origin.
type Viewport struct {
	Origin chunk.Coord
	W, H   int
}

// NewViewport returns a viewport of w x h chunks anchored at chunk (0,0).
func NewViewport(w, h int) Viewport {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Viewport{W: w, H: h}
}

// Contains reports whether chunk c is visible.
func (v Viewport) Contains(c chunk.Coord) bool {
	return int64(c.X) >= int64(v.Origin.X) && int64(c.X) < int64(v.Origin.X)+int64(v.W) &&
		int64(c.Y) >= int64(v.Origin.Y) && int64(c.Y) < int64(v.Origin.Y)+int64(v.H)
}

// Pan shifts the origin by (dx, dy) chunks.
func (v *Viewport) Pan(dx, dy int) {
	v.Origin = v.Origin.Add(int32(dx), int32(dy))
}

// CellSize returns the viewport dimensions in cells.
func (v Viewport) CellSize() (w, h int) { return v.W * chunk.Size, v.H * chunk.Size }

// Rasterize writes the visible cells into g, resizing it to CellSize.
func (v Viewport) Rasterize(chunks map[chunk.Coord]*chunk.Chunk, g *core.ByteGrid) {
	w, h := v.CellSize()
	if g.W != w || g.H != h {
		g.Resize(w, h)
	} else {
		g.Clear()
	}
	for cy := 0; cy < v.H; cy++ {
		for cx := 0; cx < v.W; cx++ {
			ch, ok := chunks[v.Origin.Add(int32(cx), int32(cy))]
			if !ok {
				continue
			}
			for idx := range ch.Cells {
				lx, ly := chunk.XY(idx)
				val := RasterDead
				if ch.Cells[idx].Alive {
					val = RasterAlive
				}
				g.Set(cx*chunk.Size+lx, cy*chunk.Size+ly, val)
			}
		}
	}
}
