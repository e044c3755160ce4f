package app

import (
	"flag"
	"io"
	"testing"
	"time"
)

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("LIFE_PATTERN", "acorn")
	t.Setenv("LIFE_INTERVAL", "50ms")
	t.Setenv("LIFE_VIEW_W", "3")
	t.Setenv("LIFE_AUTO", "false")

	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-view-w", "5", "-seed", "9"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Pattern != "acorn" {
		t.Fatalf("pattern = %q, want env value", cfg.Pattern)
	}
	if cfg.Interval != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", cfg.Interval)
	}
	if cfg.ViewW != 5 {
		t.Fatalf("view-w = %d, want flag to override env", cfg.ViewW)
	}
	if cfg.Seed != 9 || cfg.Auto {
		t.Fatalf("seed/auto = %d/%v", cfg.Seed, cfg.Auto)
	}
	if cfg.ViewH != NewConfig().ViewH {
		t.Fatalf("view-h = %d, want default", cfg.ViewH)
	}
}

func TestParseConfigRejectsUnknownPattern(t *testing.T) {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-pattern", "nope"}); err == nil {
		t.Fatal("expected unknown pattern error")
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("LIFE_SEED", "not-a-number")
	if _, err := ParseConfig(flag.NewFlagSet("life", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := NewConfig()
	cfg.Interval = time.Millisecond
	cfg.ViewW, cfg.ViewH = 0, -2
	cfg.Density = 3
	cfg.MaxChunks = -1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Interval != 10*time.Millisecond || cfg.ViewW != 1 || cfg.ViewH != 1 || cfg.Density != 0.35 || cfg.MaxChunks != 0 {
		t.Fatalf("unexpected clamped config: %+v", cfg)
	}
}

func TestGlyphsShowChunks(t *testing.T) {
	cfg := NewConfig()
	if g := cfg.Glyphs(); g.Absent != g.Dead {
		t.Fatalf("default glyphs should draw absent chunks as dead: %+v", g)
	}
	cfg.ShowChunks = true
	if g := cfg.Glyphs(); g.Absent != ' ' {
		t.Fatalf("show-chunks glyphs = %+v", g)
	}
}

func TestNewUniverseCentersPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "blinker"
	cfg.ViewW, cfg.ViewH = 1, 1
	u, err := NewUniverse(cfg, discardLogger())
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	// A 3x1 blinker in an 8x8 view starts at (2,3).
	for x := int64(2); x <= 4; x++ {
		if !u.IsAlive(x, 3) {
			t.Fatalf("expected (%d,3) alive", x)
		}
	}
	if u.Population() != 3 || u.Len() != 1 {
		t.Fatalf("population %d in %d chunks", u.Population(), u.Len())
	}
}
