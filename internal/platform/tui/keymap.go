package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RainerBlessing/fuel-drift/internal/core"
)

// KeyMapper translates Bubble Tea key messages to input frames.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey folds a key message into the pending input frame.
// Returns true for a quit request.
//
// Terminals deliver key-down events only, so held thrust keys arrive as
// repeats; the model clears the frame after every tick, which makes a
// repeating key behave like a held one at typical repeat rates.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, in *core.Input) (isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "up", "k":
		in.Up = true
	case "down", "j":
		in.Down = true
	case "left", "h":
		in.Left = true
	case "right", "l":
		in.Right = true

	case "w":
		in.TractorUp = true
	case "s":
		in.TractorDown = true

	case "p", "esc":
		in.PauseToggle = true
	case "enter", " ":
		in.Confirm = true
	case "b":
		in.Back = true
	}

	return false
}
