package core

// Action represents a semantic input action, abstracted from physical key presses
// and mouse clicks.
type Action int

const (
	ActionNone   Action = iota
	ActionStart         // Enter, Space, S - start or restart a play-through
	ActionRed           // 1, R - red pad
	ActionBlue          // 2, B - blue pad
	ActionGreen         // 3, G - green pad
	ActionYellow        // 4, Y - yellow pad
	ActionBack          // Esc - leave the current screen
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionRed:
		return "Red"
	case ActionBlue:
		return "Blue"
	case ActionGreen:
		return "Green"
	case ActionYellow:
		return "Yellow"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsPad reports whether the action activates one of the four color pads.
func (a Action) IsPad() bool {
	return a >= ActionRed && a <= ActionYellow
}
