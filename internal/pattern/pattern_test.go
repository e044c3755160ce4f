package pattern

import (
	"errors"
	"slices"
	"testing"

	"chunk-life/internal/universe"
)

func TestRegistryHasBuiltins(t *testing.T) {
	names := Names()
	for _, want := range []string{"acorn", "blinker", "block", "glider", "gosper-gun", "lwss", "r-pentomino", "soup"} {
		if !slices.Contains(names, want) {
			t.Fatalf("pattern %q not registered; have %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names not sorted: %v", names)
	}
}

func TestParse(t *testing.T) {
	cells, err := Parse("! comment\n.O.\n..*\nOOO\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if !slices.Equal(cells, want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}

	if _, err := Parse("O.x"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestSoupDeterministic(t *testing.T) {
	opts := Options{Seed: 11, Density: 0.4, Width: 20, Height: 10}
	a, b := Soup(opts), Soup(opts)
	if !slices.Equal(a, b) {
		t.Fatal("soup with the same seed differs")
	}
	if len(a) == 0 || len(a) == 200 {
		t.Fatalf("soup density looks wrong: %d live of 200", len(a))
	}
	for _, c := range a {
		if c.X < 0 || c.X >= 20 || c.Y < 0 || c.Y >= 10 {
			t.Fatalf("soup cell %v outside its rectangle", c)
		}
	}
	opts.Seed = 12
	if slices.Equal(a, Soup(opts)) {
		t.Fatal("different seeds produced identical soups")
	}
}

func TestGosperGunEmitsGlider(t *testing.T) {
	f, ok := Lookup("gosper-gun")
	if !ok {
		t.Fatal("gosper-gun not registered")
	}
	u := universe.New()
	if err := Place(u, f(Options{}), 0, 0); err != nil {
		t.Fatalf("place: %v", err)
	}
	if u.Population() != 36 {
		t.Fatalf("gun population = %d, want 36", u.Population())
	}
	for i := 0; i < 30; i++ {
		if err := u.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if u.Population() != 41 {
		t.Fatalf("after one period population = %d, want 41 (gun + glider)", u.Population())
	}
}

func TestLWSSTravelsWest(t *testing.T) {
	f, _ := Lookup("lwss")
	cells := f(Options{})
	u := universe.New()
	if err := Place(u, cells, 10, 10); err != nil {
		t.Fatalf("place: %v", err)
	}
	want := make([]universe.Point, 0, len(cells))
	for _, c := range cells {
		want = append(want, universe.Point{X: c.X + 8, Y: c.Y + 10})
	}
	slices.SortFunc(want, func(a, b universe.Point) int {
		if a.Y != b.Y {
			return int(a.Y - b.Y)
		}
		return int(a.X - b.X)
	})
	for i := 0; i < 4; i++ {
		if err := u.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if got := u.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("lwss after 4 steps = %v, want %v", got, want)
	}
}
