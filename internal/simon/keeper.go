package simon

// ScoreKeeper is the engine's view of high score storage. Implementations
// absorb their own I/O failures: a missing or unreadable value reads as 0 and
// a failed write is dropped.
type ScoreKeeper interface {
	HighScore() int
	SaveHighScore(score int)
}

// MemoryKeeper keeps the high score for the life of the process only.
type MemoryKeeper struct {
	best int
}

// NewMemoryKeeper returns a keeper starting from the given score.
func NewMemoryKeeper(initial int) *MemoryKeeper {
	if initial < 0 {
		initial = 0
	}
	return &MemoryKeeper{best: initial}
}

// HighScore returns the best score seen so far.
func (m *MemoryKeeper) HighScore() int {
	return m.best
}

// SaveHighScore records score if it beats the current best.
func (m *MemoryKeeper) SaveHighScore(score int) {
	if score > m.best {
		m.best = score
	}
}
