//go:build ebiten

package render

import (
	"image/color"

	"chunk-life/internal/chunk"
	"chunk-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter rasterizes the viewport into a single RGBA image that is
// scaled onto the window.
type GridPainter struct {
	view    Viewport
	raster  *core.ByteGrid
	palette []color.RGBA
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for the given viewport.
func NewGridPainter(view Viewport) *GridPainter {
	w, h := view.CellSize()
	return &GridPainter{
		view:    view,
		raster:  core.NewByteGrid(w, h),
		palette: DefaultPalette(),
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
}

// DrawFrame uploads the visible chunks into the painter image.
func (gp *GridPainter) DrawFrame(chunks map[chunk.Coord]*chunk.Chunk) error {
	gp.view.Rasterize(chunks, gp.raster)
	fillPaletteRGBA(gp.buf, gp.raster.Cells(), gp.palette)
	gp.img.WritePixels(gp.buf)
	return nil
}

// IncrementViewport shifts the viewport by (dx, dy) chunks.
func (gp *GridPainter) IncrementViewport(dx, dy int) { gp.view.Pan(dx, dy) }

// View returns the current viewport.
func (gp *GridPainter) View() Viewport { return gp.view }

// Blit draws the last uploaded frame onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.view.CellSize() }
