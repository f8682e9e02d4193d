package simon

import "fmt"

// StatusKind is the display state of a play-through.
type StatusKind string

const (
	StatusIdle     StatusKind = "idle"
	StatusStarting StatusKind = "starting"
	StatusPlaying  StatusKind = "playing"
	StatusLost     StatusKind = "lost"
)

// Status is the game status. Level is set for StatusPlaying and records the
// failed level for StatusLost.
type Status struct {
	Kind  StatusKind
	Level int
}

// Text returns the status line shown to the player.
func (s Status) Text() string {
	switch s.Kind {
	case StatusStarting:
		return "Game Starting..."
	case StatusPlaying:
		return fmt.Sprintf("Level %d", s.Level)
	case StatusLost:
		return "Wrong! Press Start to Play Again."
	default:
		return "Press Start to Play"
	}
}

// Playing reports whether taps are currently accepted.
func (s Status) Playing() bool {
	return s.Kind == StatusPlaying
}
