package core

// Action is a semantic game action, abstracted from physical key presses and
// mouse clicks.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Move the tile cursor up
	ActionDown           // Move the tile cursor down
	ActionLeft           // Move the tile cursor left
	ActionRight          // Move the tile cursor right
	ActionConfirm        // Pick the tile under the cursor, or start a game
	ActionRestart        // Start a new game
	ActionQuit           // Exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
