package simon

// Snapshot captures the observable game state for rendering and tests.
type Snapshot struct {
	Sequence        []Color
	Input           []Color
	Level           int
	Started         bool
	Status          Status
	HighScore       int
	PlaybackPending bool
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Sequence:        append([]Color(nil), e.sequence...),
		Input:           append([]Color(nil), e.input...),
		Level:           e.level,
		Started:         e.started,
		Status:          e.status,
		HighScore:       e.highScore,
		PlaybackPending: e.PlaybackPending(),
	}
}
