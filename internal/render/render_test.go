package render

import (
	"errors"
	"image/color"
	"testing"

	"chunk-life/internal/chunk"
	"chunk-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

func chunksWith(alive ...[2]int64) map[chunk.Coord]*chunk.Chunk {
	m := map[chunk.Coord]*chunk.Chunk{}
	for _, p := range alive {
		c, idx := chunk.Resolve(p[0], p[1])
		ch, ok := m[c]
		if !ok {
			ch = chunk.New(c)
			m[c] = ch
		}
		ch.Set(idx, true)
	}
	return m
}

func TestViewportContainsAndPan(t *testing.T) {
	v := NewViewport(2, 1)
	if !v.Contains(chunk.Coord{X: 1, Y: 0}) || v.Contains(chunk.Coord{X: 2, Y: 0}) || v.Contains(chunk.Coord{X: 0, Y: -1}) {
		t.Fatal("unexpected containment at origin")
	}
	v.Pan(-1, -1)
	if !v.Contains(chunk.Coord{X: -1, Y: -1}) || v.Contains(chunk.Coord{X: 1, Y: -1}) {
		t.Fatal("pan did not move the viewport")
	}
	if w, h := v.CellSize(); w != 2*chunk.Size || h != chunk.Size {
		t.Fatalf("CellSize = %dx%d", w, h)
	}
}

func TestRasterizeMarksMaterializedChunks(t *testing.T) {
	chunks := chunksWith([2]int64{1, 2}, [2]int64{-1, -1})
	v := NewViewport(2, 2)
	v.Pan(-1, -1)

	g := core.NewByteGrid(1, 1)
	v.Rasterize(chunks, g)

	if g.W != 16 || g.H != 16 {
		t.Fatalf("raster size = %dx%d, want 16x16", g.W, g.H)
	}
	// (-1,-1) lands at raster (7,7); (1,2) at (9,10).
	if g.At(7, 7) != RasterAlive || g.At(9, 10) != RasterAlive {
		t.Fatal("live cells not rasterized at their global positions")
	}
	if g.At(0, 0) != RasterDead || g.At(8, 8) != RasterDead {
		t.Fatal("materialized chunks should rasterize as dead")
	}
	if g.At(8, 0) != RasterAbsent || g.At(0, 8) != RasterAbsent {
		t.Fatal("absent chunks should rasterize as absent")
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{RasterAbsent, RasterAlive, 9}, DefaultPalette())
	alive := DefaultPalette()[RasterAlive]
	if (color.RGBA{buf[4], buf[5], buf[6], buf[7]}) != alive {
		t.Fatal("alive pixel not painted with the alive color")
	}
	if (color.RGBA{buf[8], buf[9], buf[10], buf[11]}) != alive {
		t.Fatal("out-of-palette values should clamp to the last entry")
	}
}

func TestRecorderCapturesFramesAndPans(t *testing.T) {
	r := NewRecorder(1, 1)
	chunks := chunksWith([2]int64{3, 3}, [2]int64{20, 0})
	if err := r.DrawFrame(chunks); err != nil {
		t.Fatalf("draw: %v", err)
	}
	f, ok := r.Last()
	if !ok || f.Chunks != 2 || f.Visible != 1 || len(f.Live) != 2 {
		t.Fatalf("unexpected frame %+v", f)
	}
	if f.Live[0] != [2]int64{20, 0} {
		t.Fatalf("live cells not sorted by row: %v", f.Live)
	}

	r.IncrementViewport(2, 0)
	if r.View.Origin != (chunk.Coord{X: 2}) || len(r.Pans) != 1 {
		t.Fatalf("pan not applied: %+v", r.View)
	}

	r.Err = errors.New("boom")
	if err := r.DrawFrame(chunks); err == nil {
		t.Fatal("expected injected error")
	}
}

func TestTerminalDrawsGlyphsAndStatus(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTerminal(screen, NewViewport(2, 1), Glyphs{Alive: '@', Dead: '.', Absent: ' '})
	if err != nil {
		t.Fatalf("new terminal: %v", err)
	}
	defer term.Close()
	screen.SetSize(40, 12)
	term.SetStatus(func() string { return "gen 7" })

	if err := term.DrawFrame(chunksWith([2]int64{2, 3})); err != nil {
		t.Fatalf("draw: %v", err)
	}

	cases := []struct {
		x, y int
		want rune
	}{
		{2, 3, '@'},
		{0, 0, '.'},
		{chunk.Size, 0, ' '},
		{0, chunk.Size, 'g'},
		{4, chunk.Size, '7'},
	}
	for _, tc := range cases {
		got, _, _, _ := screen.GetContent(tc.x, tc.y)
		if got != tc.want {
			t.Fatalf("content at (%d,%d) = %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}

	term.IncrementViewport(0, -1)
	if term.View().Origin != (chunk.Coord{Y: -1}) {
		t.Fatalf("viewport origin = %+v", term.View().Origin)
	}

	term.Close()
	term.Close()
	if err := term.DrawFrame(nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("draw after close = %v, want ErrClosed", err)
	}
}
