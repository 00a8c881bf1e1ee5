package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the game to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionPing // next direction pings instead of moving
	ActionQuit
)

var namedKeys = map[tcell.Key]Action{
	tcell.KeyUp:     ActionMoveN,
	tcell.KeyDown:   ActionMoveS,
	tcell.KeyRight:  ActionMoveE,
	tcell.KeyLeft:   ActionMoveW,
	tcell.KeyEscape: ActionQuit,
}

// runeKeys uses vi movement: hjkl for the axes, yubn for the diagonals.
var runeKeys = map[rune]Action{
	'k': ActionMoveN,
	'j': ActionMoveS,
	'l': ActionMoveE,
	'h': ActionMoveW,
	'y': ActionMoveNW,
	'u': ActionMoveNE,
	'b': ActionMoveSW,
	'n': ActionMoveSE,
	'p': ActionPing,
	'q': ActionQuit,
}

// deltas are (drow, dcol) per movement action.
var deltas = map[Action][2]int{
	ActionMoveN:  {-1, 0},
	ActionMoveS:  {1, 0},
	ActionMoveE:  {0, 1},
	ActionMoveW:  {0, -1},
	ActionMoveNE: {-1, 1},
	ActionMoveNW: {-1, -1},
	ActionMoveSE: {1, 1},
	ActionMoveSW: {1, -1},
}

// keyToAction maps a key event to an action. Letters are case-insensitive.
func keyToAction(ev *tcell.EventKey) Action {
	if a, ok := namedKeys[ev.Key()]; ok {
		return a
	}
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}
	return runeKeys[unicode.ToLower(ev.Rune())]
}

// actionToDelta returns the (drow, dcol) step of a movement action, or
// (0, 0) for anything else.
func actionToDelta(a Action) (int, int) {
	d := deltas[a]
	return d[0], d[1]
}
