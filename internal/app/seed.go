package app

import (
	"fmt"
	"log"

	"chunk-life/internal/chunk"
	"chunk-life/internal/pattern"
	"chunk-life/internal/universe"
)

// NewUniverse builds a universe and places the configured pattern in the
// middle of the initial viewport.
func NewUniverse(cfg *Config, logger *log.Logger) (*universe.Universe, error) {
	u := universe.New(universe.WithMaxChunks(cfg.MaxChunks), universe.WithLogger(logger))

	factory, ok := pattern.Lookup(cfg.Pattern)
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", cfg.Pattern)
	}
	viewW, viewH := int64(cfg.ViewW*chunk.Size), int64(cfg.ViewH*chunk.Size)
	cells := factory(pattern.Options{
		Seed:    cfg.Seed,
		Density: cfg.Density,
		Width:   int(viewW / 2),
		Height:  int(viewH / 2),
	})

	var w, h int64
	for _, c := range cells {
		w, h = max(w, c.X+1), max(h, c.Y+1)
	}
	ox, oy := max((viewW-w)/2, 0), max((viewH-h)/2, 0)
	if err := pattern.Place(u, cells, ox, oy); err != nil {
		return nil, fmt.Errorf("seed %s: %w", cfg.Pattern, err)
	}
	logger.Printf("seeded %s: %d cells in %d chunks", cfg.Pattern, len(cells), u.Len())
	return u, nil
}
