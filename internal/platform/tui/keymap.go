package tui

import tea "github.com/charmbracelet/bubbletea"

// Action is a semantic playground action, decoupled from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight
	ActionPause
	ActionReset
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to playground actions.
// Centralized so the bindings are testable and shared with the SSH path.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "w", "up":
		return ActionNudgeUp
	case "s", "down":
		return ActionNudgeDown
	case "a", "left":
		return ActionNudgeLeft
	case "d", "right":
		return ActionNudgeRight
	case "p", " ":
		return ActionPause
	case "r":
		return ActionReset
	}
	return ActionNone
}
