package universe

import (
	"fmt"

	"chunk-life/internal/chunk"

	"github.com/gammazero/deque"
)

// ActionKind enumerates the commands understood by the executor.
type ActionKind uint8

const (
	ActCreateChunk ActionKind = iota
	ActEvaluateChunk
	ActEvaluateCell
	ActPanViewport
	ActToggleAutoRun
)

func (k ActionKind) String() string {
	switch k {
	case ActCreateChunk:
		return "create-chunk"
	case ActEvaluateChunk:
		return "evaluate-chunk"
	case ActEvaluateCell:
		return "evaluate-cell"
	case ActPanViewport:
		return "pan-viewport"
	case ActToggleAutoRun:
		return "toggle-auto-run"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// Action is a single queued command. Only the fields relevant to Kind are
// populated.
type Action struct {
	Kind   ActionKind
	Coord  chunk.Coord
	Idx    int
	DX, DY int
}

// CreateChunk materializes an all-dead chunk at c if none exists.
func CreateChunk(c chunk.Coord) Action { return Action{Kind: ActCreateChunk, Coord: c} }

// EvaluateChunk fans out to one EvaluateCell per local cell.
func EvaluateChunk(c chunk.Coord) Action { return Action{Kind: ActEvaluateChunk, Coord: c} }

// EvaluateCell computes the next state of a single cell.
func EvaluateCell(c chunk.Coord, idx int) Action {
	return Action{Kind: ActEvaluateCell, Coord: c, Idx: idx}
}

// PanViewport shifts the render viewport by (dx, dy) chunks.
func PanViewport(dx, dy int) Action { return Action{Kind: ActPanViewport, DX: dx, DY: dy} }

// ToggleAutoRun flips the front end between auto and manual stepping.
func ToggleAutoRun() Action { return Action{Kind: ActToggleAutoRun} }

func (a Action) String() string {
	switch a.Kind {
	case ActCreateChunk, ActEvaluateChunk:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.Coord.X, a.Coord.Y)
	case ActEvaluateCell:
		return fmt.Sprintf("%s(%d,%d#%d)", a.Kind, a.Coord.X, a.Coord.Y, a.Idx)
	case ActPanViewport:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.DX, a.DY)
	default:
		return a.Kind.String()
	}
}

// queue is a FIFO with front insertion for dependencies that must run
// before whatever is already pending.
type queue struct {
	q deque.Deque[Action]
}

func (q *queue) pushBack(a Action)  { q.q.PushBack(a) }
func (q *queue) pushFront(a Action) { q.q.PushFront(a) }
func (q *queue) len() int           { return q.q.Len() }

func (q *queue) pop() (Action, bool) {
	if q.q.Len() == 0 {
		return Action{}, false
	}
	return q.q.PopFront(), true
}

func (q *queue) clear() { q.q.Clear() }
