package chunk

import "testing"

func TestResolveNegativeFloors(t *testing.T) {
	c, idx := Resolve(-1, -1)
	if c != (Coord{X: -1, Y: -1}) {
		t.Fatalf("Resolve(-1,-1) chunk = %+v, want {-1 -1}", c)
	}
	x, y := XY(idx)
	if x != Size-1 || y != Size-1 {
		t.Fatalf("Resolve(-1,-1) local = (%d,%d), want (%d,%d)", x, y, Size-1, Size-1)
	}
}

func TestResolveTable(t *testing.T) {
	cases := []struct {
		gx, gy int64
		c      Coord
		x, y   int
	}{
		{0, 0, Coord{0, 0}, 0, 0},
		{7, 7, Coord{0, 0}, 7, 7},
		{8, 0, Coord{1, 0}, 0, 0},
		{-8, -8, Coord{-1, -1}, 0, 0},
		{-9, 3, Coord{-2, 0}, 7, 3},
		{17, -17, Coord{2, -3}, 1, 7},
	}
	for _, tc := range cases {
		c, idx := Resolve(tc.gx, tc.gy)
		x, y := XY(idx)
		if c != tc.c || x != tc.x || y != tc.y {
			t.Fatalf("Resolve(%d,%d) = %+v (%d,%d), want %+v (%d,%d)", tc.gx, tc.gy, c, x, y, tc.c, tc.x, tc.y)
		}
	}
}

func TestResolveInverseLaw(t *testing.T) {
	for gy := int64(-3 * Size); gy <= 3*Size; gy++ {
		for gx := int64(-3 * Size); gx <= 3*Size; gx++ {
			c, idx := Resolve(gx, gy)
			if idx < 0 || idx >= Area {
				t.Fatalf("Resolve(%d,%d) idx %d out of range", gx, gy, idx)
			}
			rx, ry := GlobalPosition(c, idx)
			if rx != gx || ry != gy {
				t.Fatalf("GlobalPosition(Resolve(%d,%d)) = (%d,%d)", gx, gy, rx, ry)
			}
		}
	}

	extremes := []int64{-1 << 33, -1<<33 + 5, 1<<33 - 1, 123456789, -987654321}
	for _, gx := range extremes {
		for _, gy := range extremes {
			c, idx := Resolve(gx, gy)
			rx, ry := GlobalPosition(c, idx)
			if rx != gx || ry != gy {
				t.Fatalf("inverse failed for (%d,%d): got (%d,%d)", gx, gy, rx, ry)
			}
		}
	}
}

func TestNeighborsCrossChunkCorner(t *testing.T) {
	locs := Neighbors(Coord{0, 0}, Index(0, 0))
	seen := map[Coord]int{}
	for _, l := range locs {
		seen[l.Coord]++
	}
	want := map[Coord]int{
		{-1, -1}: 1,
		{0, -1}:  2,
		{-1, 0}:  2,
		{0, 0}:   3,
	}
	if len(seen) != len(want) {
		t.Fatalf("neighbor chunks = %v, want %v", seen, want)
	}
	for c, n := range want {
		if seen[c] != n {
			t.Fatalf("chunk %+v referenced %d times, want %d", c, seen[c], n)
		}
	}
	if locs[0].Idx != Index(Size-1, Size-1) {
		t.Fatalf("upper-left neighbor idx = %d, want %d", locs[0].Idx, Index(Size-1, Size-1))
	}
}

func TestSwapClearsNext(t *testing.T) {
	ch := New(Coord{})
	ch.Cells[3].Next = true
	ch.Cells[5].Alive = true
	ch.Swap()
	if !ch.Alive(3) || ch.Alive(5) {
		t.Fatalf("swap did not promote next buffer")
	}
	for i, cell := range ch.Cells {
		if cell.Next {
			t.Fatalf("cell %d next not cleared", i)
		}
	}
	if ch.Population() != 1 || ch.IsDead() {
		t.Fatalf("population = %d, want 1", ch.Population())
	}
}
