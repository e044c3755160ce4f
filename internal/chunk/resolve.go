package chunk

// Location pins a cell to its owning chunk and local index.
type Location struct {
	Coord Coord
	Idx   int
}

// Offsets lists the Moore neighborhood deltas in row-major order.
var Offsets = [8][2]int64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// GlobalPosition maps a chunk coordinate and local index to an absolute
// cell position.
func GlobalPosition(c Coord, idx int) (gx, gy int64) {
	x, y := XY(idx)
	gx = int64(c.X)*Size + int64(x)
	gy = int64(c.Y)*Size + int64(y)
	return gx, gy
}

// Resolve maps an absolute cell position to its chunk and local index. The
// division floors so that negative positions land in the chunk to their
// left/above rather than in chunk zero.
func Resolve(gx, gy int64) (Coord, int) {
	cx, lx := floorDivMod(gx)
	cy, ly := floorDivMod(gy)
	return Coord{X: int32(cx), Y: int32(cy)}, Index(int(lx), int(ly))
}

// Neighbors resolves the eight cells surrounding (c, idx).
func Neighbors(c Coord, idx int) [8]Location {
	gx, gy := GlobalPosition(c, idx)
	var out [8]Location
	for i, off := range Offsets {
		nc, nidx := Resolve(gx+off[0], gy+off[1])
		out[i] = Location{Coord: nc, Idx: nidx}
	}
	return out
}

func floorDivMod(v int64) (q, r int64) {
	q = v / Size
	r = v % Size
	if r < 0 {
		q--
		r += Size
	}
	return q, r
}
