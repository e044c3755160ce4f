package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"chunk-life/internal/pattern"
	"chunk-life/internal/render"

	"github.com/caarlos0/env/v11"
)

// Config represents the command-line parameters for the application.
// Environment variables provide the defaults; flags override them.
type Config struct {
	Pattern    string        `env:"LIFE_PATTERN"`
	Seed       int64         `env:"LIFE_SEED"`
	Density    float64       `env:"LIFE_DENSITY"`
	Interval   time.Duration `env:"LIFE_INTERVAL"`
	Auto       bool          `env:"LIFE_AUTO"`
	ViewW      int           `env:"LIFE_VIEW_W"`
	ViewH      int           `env:"LIFE_VIEW_H"`
	MaxChunks  int           `env:"LIFE_MAX_CHUNKS"`
	ShowChunks bool          `env:"LIFE_SHOW_CHUNKS"`
	Scale      int           `env:"LIFE_SCALE"`
	TPS        int           `env:"LIFE_TPS"`
	LogFile    string        `env:"LIFE_LOG_FILE"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:   "glider",
		Seed:      42,
		Density:   0.35,
		Interval:  200 * time.Millisecond,
		Auto:      true,
		ViewW:     8,
		ViewH:     4,
		MaxChunks: 1 << 16,
		Scale:     6,
		TPS:       60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern ("+strings.Join(pattern.Names(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density for the soup pattern")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between automatic steps")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "start stepping automatically")
	fs.IntVar(&c.ViewW, "view-w", c.ViewW, "viewport width in chunks")
	fs.IntVar(&c.ViewH, "view-h", c.ViewH, "viewport height in chunks")
	fs.IntVar(&c.MaxChunks, "max-chunks", c.MaxChunks, "abort once this many chunks exist (0 = unlimited)")
	fs.BoolVar(&c.ShowChunks, "show-chunks", c.ShowChunks, "draw unmaterialized chunks blank")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (gui)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (gui)")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append logs to this file")
}

// ParseConfig loads defaults, then the environment, then args.
func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		return nil, errors.New("flag set is required")
	}
	cfg := NewConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate clamps numeric settings into range and rejects unknown patterns.
func (c *Config) Validate() error {
	if _, ok := pattern.Lookup(c.Pattern); !ok {
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	if c.Interval < 10*time.Millisecond {
		c.Interval = 10 * time.Millisecond
	}
	if c.Density <= 0 || c.Density > 1 {
		c.Density = 0.35
	}
	if c.ViewW <= 0 {
		c.ViewW = 1
	}
	if c.ViewH <= 0 {
		c.ViewH = 1
	}
	if c.MaxChunks < 0 {
		c.MaxChunks = 0
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return nil
}

// Viewport returns the initial render viewport.
func (c *Config) Viewport() render.Viewport { return render.NewViewport(c.ViewW, c.ViewH) }

// Glyphs returns the terminal glyph set.
func (c *Config) Glyphs() render.Glyphs {
	g := render.DefaultGlyphs()
	if c.ShowChunks {
		g.Absent = ' '
	}
	return g
}

// OpenLog returns the logger for this run. Without a log file output is
// discarded, since the terminal front end owns stdout and stderr.
func (c *Config) OpenLog() (*log.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "[LIFE] ", log.LstdFlags), f, nil
}
