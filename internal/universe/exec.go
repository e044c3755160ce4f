package universe

import (
	"fmt"

	"chunk-life/internal/chunk"
)

// drain pops actions until the queue is empty. On error the remaining
// actions are discarded.
func (u *Universe) drain() error {
	for {
		a, ok := u.actions.pop()
		if !ok {
			return nil
		}
		if err := u.dispatch(a); err != nil {
			u.actions.clear()
			return err
		}
	}
}

func (u *Universe) dispatch(a Action) error {
	switch a.Kind {
	case ActCreateChunk:
		return u.execCreateChunk(a.Coord)
	case ActEvaluateChunk:
		u.execEvaluateChunk(a.Coord)
	case ActEvaluateCell:
		u.execEvaluateCell(a.Coord, a.Idx)
	case ActPanViewport:
		if u.controls != nil {
			u.controls.IncrementViewport(a.DX, a.DY)
		}
	case ActToggleAutoRun:
		if u.controls != nil {
			u.controls.ToggleAutoRun()
		}
	default:
		panic(fmt.Sprintf("universe: unknown action %v", a))
	}
	return nil
}

func (u *Universe) execCreateChunk(c chunk.Coord) error {
	if _, ok := u.chunks[c]; !ok {
		if _, err := u.create(c); err != nil {
			return err
		}
		u.stats.ChunksCreated++
	}
	if _, done := u.evaluated[c]; !done {
		u.actions.pushFront(EvaluateChunk(c))
	}
	return nil
}

func (u *Universe) execEvaluateChunk(c chunk.Coord) {
	if _, done := u.evaluated[c]; done {
		return
	}
	if _, ok := u.chunks[c]; !ok {
		u.stats.Repairs++
		u.actions.pushFront(EvaluateChunk(c))
		u.actions.pushFront(CreateChunk(c))
		return
	}
	u.evaluated[c] = struct{}{}
	u.stats.ChunkEvals++
	for idx := 0; idx < chunk.Area; idx++ {
		u.actions.pushBack(EvaluateCell(c, idx))
	}
}

func (u *Universe) execEvaluateCell(c chunk.Coord, idx int) {
	ch, ok := u.chunks[c]
	if !ok {
		panic(fmt.Sprintf("universe: evaluate cell in missing chunk (%d,%d)", c.X, c.Y))
	}
	if idx < 0 || idx >= chunk.Area {
		panic(fmt.Sprintf("universe: cell index %d out of range", idx))
	}
	u.stats.CellEvals++

	alive := ch.Cells[idx].Alive
	neighbors := chunk.Neighbors(c, idx)

	if alive {
		var queued [8]chunk.Coord
		n := 0
		for _, loc := range neighbors {
			if _, ok := u.chunks[loc.Coord]; ok {
				continue
			}
			if containsCoord(queued[:n], loc.Coord) {
				continue
			}
			queued[n] = loc.Coord
			n++
			u.actions.pushFront(CreateChunk(loc.Coord))
		}
	}

	live := 0
	cur := ch
	for _, loc := range neighbors {
		if cur == nil || cur.Coord != loc.Coord {
			cur = u.chunks[loc.Coord]
		}
		if cur != nil && cur.Cells[loc.Idx].Alive {
			live++
		}
	}

	ch.Cells[idx].Next = nextState(alive, live)
}

// nextState applies B3/S23.
func nextState(alive bool, live int) bool {
	switch live {
	case 2:
		return alive
	case 3:
		return true
	default:
		return false
	}
}

func containsCoord(cs []chunk.Coord, c chunk.Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
