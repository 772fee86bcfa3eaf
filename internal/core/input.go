package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation performs every legality check; an action only signals intent.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - run left this tick
	ActionRight             // D, Right arrow - run right this tick
	ActionJump              // W, Up arrow - jump / double jump
	ActionDrop              // S, Down arrow - fall faster while airborne
	ActionAttack            // Space - throw a projectile
	ActionPause             // P - pause/unpause game
	ActionRestart           // R - start a new session
	ActionSummonBoss        // B - summon a boss immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionDrop:
		return "Drop"
	case ActionAttack:
		return "Attack"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionSummonBoss:
		return "SummonBoss"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Horizontal returns the horizontal intent for this frame: -1, 0 or 1.
// Pressing both directions cancels out.
func (f InputFrame) Horizontal() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
