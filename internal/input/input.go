// Package input maps key presses to front-end commands.
package input

import (
	"chunk-life/internal/universe"

	"github.com/gdamore/tcell/v2"
)

// Command is a single decoded key press.
type Command uint8

const (
	None Command = iota
	PanLeft
	PanRight
	PanUp
	PanDown
	ToggleAuto
	StepOnce
	Quit
	Redraw
	ToggleGrid
)

var names = [...]string{
	None:       "none",
	PanLeft:    "pan-left",
	PanRight:   "pan-right",
	PanUp:      "pan-up",
	PanDown:    "pan-down",
	ToggleAuto: "toggle-auto",
	StepOnce:   "step",
	Quit:       "quit",
	Redraw:     "redraw",
	ToggleGrid: "toggle-grid",
}

func (c Command) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// FromRune decodes the single-character bindings.
func FromRune(r rune) Command {
	switch r {
	case 'h':
		return PanLeft
	case 'l':
		return PanRight
	case 'k':
		return PanUp
	case 'j':
		return PanDown
	case ' ':
		return ToggleAuto
	case 'n':
		return StepOnce
	case 'q':
		return Quit
	case 'g':
		return ToggleGrid
	default:
		return None
	}
}

// FromKey decodes a tcell key event, including Enter, Escape and Ctrl-C.
func FromKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyRune:
		return FromRune(ev.Rune())
	case tcell.KeyEnter:
		return StepOnce
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyLeft:
		return PanLeft
	case tcell.KeyRight:
		return PanRight
	case tcell.KeyUp:
		return PanUp
	case tcell.KeyDown:
		return PanDown
	default:
		return None
	}
}

// FromEvent decodes any tcell event. Resizes become Redraw.
func FromEvent(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return FromKey(ev)
	case *tcell.EventResize:
		return Redraw
	default:
		return None
	}
}

// Action converts queue-routed commands into universe actions.
func (c Command) Action() (universe.Action, bool) {
	switch c {
	case PanLeft:
		return universe.PanViewport(-1, 0), true
	case PanRight:
		return universe.PanViewport(1, 0), true
	case PanUp:
		return universe.PanViewport(0, -1), true
	case PanDown:
		return universe.PanViewport(0, 1), true
	case ToggleAuto:
		return universe.ToggleAutoRun(), true
	default:
		return universe.Action{}, false
	}
}
