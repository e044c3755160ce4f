package render

import (
	"errors"
	"fmt"
	"sync"

	"chunk-life/internal/chunk"
	"chunk-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned when drawing to a terminal after Close.
var ErrClosed = errors.New("terminal closed")

// Glyphs selects the runes used per raster value.
type Glyphs struct {
	Alive  rune
	Dead   rune
	Absent rune
}

// DefaultGlyphs draws unmaterialized chunks the same as dead cells.
func DefaultGlyphs() Glyphs { return Glyphs{Alive: '@', Dead: '.', Absent: '.'} }

// Terminal renders the viewport into a tcell screen, one column per cell,
// with a status line underneath.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	view   Viewport
	raster *core.ByteGrid
	glyphs Glyphs
	status func() string
	closed bool

	aliveStyle  tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
}

// OpenTerminal acquires the controlling terminal. Callers must Close it on
// every exit path.
func OpenTerminal(view Viewport, glyphs Glyphs) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminal(screen, view, glyphs)
}

// NewTerminal initializes screen and wraps it. On error the screen is left
// uninitialized.
func NewTerminal(screen tcell.Screen, view Viewport, glyphs Glyphs) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	if glyphs.Alive == 0 {
		glyphs = DefaultGlyphs()
	}
	return &Terminal{
		screen:      screen,
		view:        view,
		raster:      core.NewByteGrid(1, 1),
		glyphs:      glyphs,
		aliveStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		deadStyle:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}, nil
}

// Screen exposes the underlying tcell screen for event polling.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// View returns the current viewport.
func (t *Terminal) View() Viewport {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// SetStatus installs a provider for the status line.
func (t *Terminal) SetStatus(fn func() string) { t.status = fn }

// DrawFrame paints the visible chunks and flushes the screen.
func (t *Terminal) DrawFrame(chunks map[chunk.Coord]*chunk.Chunk) error {
	// The provider may call back into View, so it runs before locking.
	var status string
	if t.status != nil {
		status = t.status()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}

	t.screen.Clear()
	t.view.Rasterize(chunks, t.raster)
	for y := 0; y < t.raster.H; y++ {
		for x := 0; x < t.raster.W; x++ {
			switch t.raster.At(x, y) {
			case RasterAlive:
				t.screen.SetContent(x, y, t.glyphs.Alive, nil, t.aliveStyle)
			case RasterDead:
				t.screen.SetContent(x, y, t.glyphs.Dead, nil, t.deadStyle)
			default:
				t.screen.SetContent(x, y, t.glyphs.Absent, nil, t.deadStyle)
			}
		}
	}
	if status != "" {
		t.drawText(0, t.raster.H, status, t.statusStyle)
	}
	t.screen.Show()
	return nil
}

// IncrementViewport shifts the viewport by (dx, dy) chunks.
func (t *Terminal) IncrementViewport(dx, dy int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view.Pan(dx, dy)
}

// Sync repaints the whole screen, e.g. after a resize.
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.screen.Sync()
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
