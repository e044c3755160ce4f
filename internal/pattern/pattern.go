// Package pattern holds the named seed configurations that can be placed into
// a universe.
package pattern

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"chunk-life/internal/core"
)

// Cell is a live cell offset relative to the pattern origin.
type Cell struct{ X, Y int64 }

// Options parameterizes pattern factories. Fixed patterns ignore it.
type Options struct {
	Seed    int64
	Density float64
	Width   int
	Height  int
}

// Factory builds the live cells for a pattern.
type Factory func(opts Options) []Cell

// Seeder is the part of a universe patterns are written into.
type Seeder interface {
	SetAlive(gx, gy int64, alive bool) error
}

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := patterns[name]
	return f, ok
}

// Names lists the registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Place writes cells into s with their origin at (ox, oy).
func Place(s Seeder, cells []Cell, ox, oy int64) error {
	for _, c := range cells {
		if err := s.SetAlive(ox+c.X, oy+c.Y, true); err != nil {
			return fmt.Errorf("place cell (%d,%d): %w", ox+c.X, oy+c.Y, err)
		}
	}
	return nil
}

// ErrSyntax reports a malformed plaintext pattern.
var ErrSyntax = errors.New("pattern syntax")

// Parse reads the plaintext format: one row per line, 'O' or '*' for live
// cells, '.' for dead ones and '!' starting a comment line.
func Parse(src string) ([]Cell, error) {
	var cells []Cell
	y := int64(0)
	for lineNo, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, r := range []rune(line) {
			switch r {
			case 'O', '*':
				cells = append(cells, Cell{X: int64(x), Y: y})
			case '.':
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrSyntax, lineNo+1, r)
			}
		}
		y++
	}
	return cells, nil
}

// MustParse is Parse for patterns compiled into the binary.
func MustParse(src string) []Cell {
	cells, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return cells
}

// Soup fills a Width x Height rectangle at the given density.
func Soup(opts Options) []Cell {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 32
	}
	if h <= 0 {
		h = 32
	}
	density := opts.Density
	if density <= 0 {
		density = 0.35
	}
	rng := core.NewRNG(opts.Seed)
	var cells []Cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Chance(density) {
				cells = append(cells, Cell{X: int64(x), Y: int64(y)})
			}
		}
	}
	return cells
}

func fixed(src string) Factory {
	cells := MustParse(strings.TrimPrefix(src, "\n"))
	return func(Options) []Cell { return slices.Clone(cells) }
}
