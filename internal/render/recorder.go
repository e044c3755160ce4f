package render

import (
	"cmp"
	"slices"

	"chunk-life/internal/chunk"
)

// Frame is one DrawFrame call captured by a Recorder.
type Frame struct {
	View    Viewport
	Chunks  int
	Visible int
	// Live holds the absolute positions of every live cell, sorted by row.
	Live [][2]int64
}

// Recorder is a headless Renderer that keeps every frame it is asked to
// draw. Setting Err makes DrawFrame fail.
type Recorder struct {
	View   Viewport
	Frames []Frame
	Pans   [][2]int
	Err    error
}

// NewRecorder returns a Recorder with a w x h chunk viewport.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{View: NewViewport(w, h)}
}

// DrawFrame records the chunk map.
func (r *Recorder) DrawFrame(chunks map[chunk.Coord]*chunk.Chunk) error {
	if r.Err != nil {
		return r.Err
	}
	f := Frame{View: r.View, Chunks: len(chunks)}
	for c, ch := range chunks {
		if r.View.Contains(c) {
			f.Visible++
		}
		for idx := range ch.Cells {
			if ch.Cells[idx].Alive {
				gx, gy := chunk.GlobalPosition(c, idx)
				f.Live = append(f.Live, [2]int64{gx, gy})
			}
		}
	}
	slices.SortFunc(f.Live, func(a, b [2]int64) int {
		if n := cmp.Compare(a[1], b[1]); n != 0 {
			return n
		}
		return cmp.Compare(a[0], b[0])
	})
	r.Frames = append(r.Frames, f)
	return nil
}

// IncrementViewport records the pan and applies it.
func (r *Recorder) IncrementViewport(dx, dy int) {
	r.Pans = append(r.Pans, [2]int{dx, dy})
	r.View.Pan(dx, dy)
}

// Last returns the most recent frame.
func (r *Recorder) Last() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}
