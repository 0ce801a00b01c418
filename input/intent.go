package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Intent is what a key press asks the program to do
type Intent int

const (
	IntentNone Intent = iota
	IntentSelect
	IntentCursorUp
	IntentCursorDown
	IntentConfirm
	IntentReplay
	IntentQuit
	IntentToggleMute
	IntentToggleHUD
	IntentLaunch
	IntentReset
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentSelect:     "select",
	IntentCursorUp:   "cursor-up",
	IntentCursorDown: "cursor-down",
	IntentConfirm:    "confirm",
	IntentReplay:     "replay",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle-mute",
	IntentToggleHUD:  "toggle-hud",
	IntentLaunch:     "launch",
	IntentReset:      "reset",
}

func (i Intent) String() string {
	if i >= 0 && int(i) < len(intentNames) {
		return intentNames[i]
	}
	return fmt.Sprintf("intent(%d)", int(i))
}

// Action is a mapped key press, Index is the answer slot for IntentSelect
type Action struct {
	Intent Intent
	Index  int
}

// MapKey translates a key event into an action
// Answers are picked with 1..4 or a..d; letters are case-insensitive
func MapKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Action{Intent: IntentQuit}
	case tcell.KeyUp:
		return Action{Intent: IntentCursorUp}
	case tcell.KeyDown:
		return Action{Intent: IntentCursorDown}
	case tcell.KeyEnter:
		return Action{Intent: IntentConfirm}
	case tcell.KeyRune:
	default:
		return Action{}
	}

	r := ev.Rune()
	switch {
	case r >= '1' && r <= '4':
		return Action{Intent: IntentSelect, Index: int(r - '1')}
	case r >= 'a' && r <= 'd':
		return Action{Intent: IntentSelect, Index: int(r - 'a')}
	case r >= 'A' && r <= 'D':
		return Action{Intent: IntentSelect, Index: int(r - 'A')}
	}

	switch r {
	case 'q', 'Q':
		return Action{Intent: IntentQuit}
	case 'r', 'R':
		return Action{Intent: IntentReplay}
	case 'm', 'M':
		return Action{Intent: IntentToggleMute}
	case 'h', 'H':
		return Action{Intent: IntentToggleHUD}
	case ' ':
		return Action{Intent: IntentLaunch}
	case 'x', 'X':
		return Action{Intent: IntentReset}
	}
	return Action{}
}
