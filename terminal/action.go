package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// ActionType identifies what a host should do with a translated event
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionPointer
	ActionResize
	ActionMoreStrands
	ActionFewerStrands
	ActionToggleHUD
	ActionToggleMute
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:         "none",
	ActionPointer:      "pointer",
	ActionResize:       "resize",
	ActionMoreStrands:  "more-strands",
	ActionFewerStrands: "fewer-strands",
	ActionToggleHUD:    "toggle-hud",
	ActionToggleMute:   "toggle-mute",
	ActionQuit:         "quit",
}

func (a ActionType) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Action is a host-level command derived from a tcell event
// X, Y are surface pixels for ActionPointer; Cols, Rows are cells for ActionResize
type Action struct {
	Type ActionType
	X, Y float64
	Cols int
	Rows int
}

// Translate maps a tcell event to an Action
// Mouse positions resolve to the center of the hovered cell in surface pixels
func Translate(ev tcell.Event, pixelsPerColumn, pixelsPerRow float64) Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		return Action{
			Type: ActionPointer,
			X:    (float64(col) + 0.5) * pixelsPerColumn,
			Y:    (float64(row) + 0.5) * pixelsPerRow,
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		return Action{Type: ActionResize, Cols: cols, Rows: rows}

	case *tcell.EventKey:
		return translateKey(ev)
	}
	return Action{}
}

func translateKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Type: ActionQuit}
	case tcell.KeyUp, tcell.KeyRight:
		return Action{Type: ActionMoreStrands}
	case tcell.KeyDown, tcell.KeyLeft:
		return Action{Type: ActionFewerStrands}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Action{Type: ActionQuit}
		case '+', '=':
			return Action{Type: ActionMoreStrands}
		case '-', '_':
			return Action{Type: ActionFewerStrands}
		case 'h', 'H':
			return Action{Type: ActionToggleHUD}
		case 'm', 'M':
			return Action{Type: ActionToggleMute}
		}
	}
	return Action{}
}
