// Package universe drives an unbounded Game of Life grid made of lazily
// allocated chunks.
package universe

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"chunk-life/internal/chunk"
)

// ErrChunkLimit reports that growth would exceed the configured chunk
// budget. The universe is left mid-step and must be discarded.
var ErrChunkLimit = errors.New("chunk limit exceeded")

// Controls receives the viewport and mode actions that share the queue with
// the simulation but never touch grid state.
type Controls interface {
	IncrementViewport(dx, dy int)
	ToggleAutoRun()
}

// Point is an absolute cell position.
type Point struct{ X, Y int64 }

// StepStats counts the work performed by the most recent Step.
type StepStats struct {
	ChunkEvals    int
	CellEvals     int
	ChunksCreated int
	// Repairs counts EvaluateChunk actions that found no chunk. It stays at
	// zero unless create-before-evaluate ordering is broken.
	Repairs int
}

// Option configures a Universe.
type Option func(*Universe)

// WithMaxChunks caps the number of chunks that may exist. Zero disables the
// cap.
func WithMaxChunks(n int) Option {
	return func(u *Universe) {
		if n < 0 {
			n = 0
		}
		u.maxChunks = n
	}
}

// WithControls routes PanViewport and ToggleAutoRun actions to c.
func WithControls(c Controls) Option {
	return func(u *Universe) { u.controls = c }
}

// WithLogger sets the logger used for growth reports.
func WithLogger(l *log.Logger) Option {
	return func(u *Universe) {
		if l != nil {
			u.logger = l
		}
	}
}

// Universe owns every chunk, the generation counter and the pending action
// queue. It is not safe for concurrent use.
type Universe struct {
	chunks     map[chunk.Coord]*chunk.Chunk
	generation uint64
	actions    queue

	evaluated map[chunk.Coord]struct{}
	stats     StepStats
	last      StepStats

	maxChunks int
	controls  Controls
	logger    *log.Logger
}

// New returns an empty universe at generation zero.
func New(opts ...Option) *Universe {
	u := &Universe{
		chunks:    make(map[chunk.Coord]*chunk.Chunk, 64),
		evaluated: make(map[chunk.Coord]struct{}, 64),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SetControls replaces the collaborator that receives viewport and mode
// actions. Passing nil drops them.
func (u *Universe) SetControls(c Controls) { u.controls = c }

// Generation returns the number of completed steps.
func (u *Universe) Generation() uint64 { return u.generation }

// Len returns the number of materialized chunks.
func (u *Universe) Len() int { return len(u.chunks) }

// Chunks exposes the chunk map for renderers. Callers must not mutate it.
func (u *Universe) Chunks() map[chunk.Coord]*chunk.Chunk { return u.chunks }

// Chunk returns the chunk at c, if it has been materialized.
func (u *Universe) Chunk(c chunk.Coord) (*chunk.Chunk, bool) {
	ch, ok := u.chunks[c]
	return ch, ok
}

// LastStep reports the work done by the most recent Step.
func (u *Universe) LastStep() StepStats { return u.last }

// Pending returns the number of queued actions.
func (u *Universe) Pending() int { return u.actions.len() }

// Step advances every cell by one generation. Chunks are created on demand
// while the queue drains; the buffers are swapped only once it is empty.
func (u *Universe) Step() error {
	u.stats = StepStats{}
	clear(u.evaluated)

	for _, c := range u.sortedCoords() {
		u.actions.pushBack(EvaluateChunk(c))
	}
	if err := u.drain(); err != nil {
		u.last = u.stats
		return err
	}

	for _, ch := range u.chunks {
		ch.Swap()
	}
	u.generation++
	u.last = u.stats
	if u.stats.ChunksCreated > 0 {
		u.logger.Printf("generation %d: created %d chunks (%d total)", u.generation, u.stats.ChunksCreated, len(u.chunks))
	}
	return nil
}

// Enqueue appends an action to the back of the queue. It is processed by the
// next Drain or Step.
func (u *Universe) Enqueue(a Action) { u.actions.pushBack(a) }

// Drain processes queued actions without advancing the generation.
func (u *Universe) Drain() error { return u.drain() }

// SetAlive seeds the cell at (gx, gy). Placing a live cell materializes its
// chunk; clearing a cell in an absent chunk is a no-op.
func (u *Universe) SetAlive(gx, gy int64, alive bool) error {
	c, idx := chunk.Resolve(gx, gy)
	ch, ok := u.chunks[c]
	if !ok {
		if !alive {
			return nil
		}
		var err error
		if ch, err = u.create(c); err != nil {
			return err
		}
	}
	ch.Set(idx, alive)
	return nil
}

// IsAlive reports the current state of the cell at (gx, gy).
func (u *Universe) IsAlive(gx, gy int64) bool {
	c, idx := chunk.Resolve(gx, gy)
	ch, ok := u.chunks[c]
	return ok && ch.Alive(idx)
}

// Population counts live cells across all chunks.
func (u *Universe) Population() int {
	n := 0
	for _, ch := range u.chunks {
		n += ch.Population()
	}
	return n
}

// LiveCells lists every live cell sorted by row, then column.
func (u *Universe) LiveCells() []Point {
	var pts []Point
	for c, ch := range u.chunks {
		for idx := range ch.Cells {
			if !ch.Cells[idx].Alive {
				continue
			}
			gx, gy := chunk.GlobalPosition(c, idx)
			pts = append(pts, Point{X: gx, Y: gy})
		}
	}
	slices.SortFunc(pts, comparePoints)
	return pts
}

// Bounds returns the inclusive bounding box of all live cells. ok is false
// when nothing is alive.
func (u *Universe) Bounds() (lo, hi Point, ok bool) {
	for _, p := range u.LiveCells() {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, ok
}

func (u *Universe) create(c chunk.Coord) (*chunk.Chunk, error) {
	if ch, ok := u.chunks[c]; ok {
		return ch, nil
	}
	if u.maxChunks > 0 && len(u.chunks) >= u.maxChunks {
		return nil, fmt.Errorf("%w: creating chunk (%d,%d) with %d of %d in use", ErrChunkLimit, c.X, c.Y, len(u.chunks), u.maxChunks)
	}
	ch := chunk.New(c)
	u.chunks[c] = ch
	return ch, nil
}

func (u *Universe) sortedCoords() []chunk.Coord {
	coords := make([]chunk.Coord, 0, len(u.chunks))
	for c := range u.chunks {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b chunk.Coord) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
	return coords
}

func comparePoints(a, b Point) int {
	if n := cmp.Compare(a.Y, b.Y); n != 0 {
		return n
	}
	return cmp.Compare(a.X, b.X)
}
