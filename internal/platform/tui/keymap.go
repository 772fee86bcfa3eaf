package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"a":     core.ActionLeft,
			"left":  core.ActionLeft,
			"d":     core.ActionRight,
			"right": core.ActionRight,
			"w":     core.ActionJump,
			"up":    core.ActionJump,
			"s":     core.ActionDrop,
			"down":  core.ActionDrop,
			" ":     core.ActionAttack,
			"space": core.ActionAttack,
			"p":     core.ActionPause,
			"esc":   core.ActionPause,
			"r":     core.ActionRestart,
			"b":     core.ActionSummonBoss,
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return core.ActionNone, true
	}
	if a, ok := km.bindings[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
