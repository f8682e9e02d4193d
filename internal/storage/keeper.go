package storage

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simon-says/internal/simon"
)

// Keeper adapts a Store to the engine's ScoreKeeper. Storage errors are
// logged and dropped so they never reach the game.
type Keeper struct {
	store  *Store
	key    string
	logger *log.Logger
}

var _ simon.ScoreKeeper = (*Keeper)(nil)

// NewKeeper returns a keeper storing the high score under key.
func NewKeeper(store *Store, key string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{store: store, key: key, logger: logger}
}

// HighScore reads the stored high score, 0 when it is missing or unreadable.
func (k *Keeper) HighScore() int {
	score, err := k.store.HighScoreValue(k.key)
	if err != nil {
		if errors.Is(err, ErrMalformedValue) {
			k.logger.Debug("ignoring stored high score", "key", k.key, "err", err)
		} else {
			k.logger.Warn("cannot read high score", "key", k.key, "err", err)
		}
		return 0
	}
	return score
}

// SaveHighScore persists a new high score.
func (k *Keeper) SaveHighScore(score int) {
	if err := k.store.SetHighScore(k.key, score); err != nil {
		k.logger.Warn("cannot save high score", "score", score, "err", err)
	}
}

// RecordRun appends a finished round to the history.
func (k *Keeper) RecordRun(level int) {
	if _, err := k.store.SaveScore(simon.GameID, level); err != nil {
		k.logger.Warn("cannot record round", "level", level, "err", err)
	}
}
