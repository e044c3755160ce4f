package chunk

const (
	// Size is the edge length of a chunk in cells.
	Size = 8
	// Area is the number of cells stored in a chunk.
	Area = Size * Size
)

// Coord addresses a chunk on the infinite chunk lattice.
type Coord struct{ X, Y int32 }

// Add returns the coordinate shifted by (dx, dy) chunks.
func (c Coord) Add(dx, dy int32) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Cell is a double-buffered Life cell. Next is only meaningful while a step
// is in progress.
type Cell struct {
	Alive bool
	Next  bool
}

// Chunk owns a Size x Size block of cells in row-major order.
type Chunk struct {
	Coord Coord
	Cells [Area]Cell
}

// New returns an all-dead chunk at c.
func New(c Coord) *Chunk {
	return &Chunk{Coord: c}
}

// Index returns the local index for (x, y), both in [0, Size).
func Index(x, y int) int { return y*Size + x }

// XY splits a local index back into its (x, y) components.
func XY(idx int) (x, y int) { return idx % Size, idx / Size }

// Alive reports the current state of the cell at idx.
func (c *Chunk) Alive(idx int) bool { return c.Cells[idx].Alive }

// Set overwrites the current state of the cell at idx. It is intended for
// seeding between steps, never during one.
func (c *Chunk) Set(idx int, alive bool) { c.Cells[idx].Alive = alive }

// Population counts the live cells in the chunk.
func (c *Chunk) Population() int {
	n := 0
	for i := range c.Cells {
		if c.Cells[i].Alive {
			n++
		}
	}
	return n
}

// IsDead reports whether no cell in the chunk is alive.
func (c *Chunk) IsDead() bool {
	for i := range c.Cells {
		if c.Cells[i].Alive {
			return false
		}
	}
	return true
}

// Swap promotes the next generation into the current one and clears the
// next buffer.
func (c *Chunk) Swap() {
	for i := range c.Cells {
		cell := &c.Cells[i]
		cell.Alive = cell.Next
		cell.Next = false
	}
}
