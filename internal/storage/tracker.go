package storage

import (
	"github.com/charmbracelet/log"
)

// HighScoreTracker persists the high score while a run is in progress.
// It is told every score change and writes only when the stored best is
// beaten. Persistence failures are logged and remembered, never fatal.
type HighScoreTracker struct {
	store  *Store
	gameID string
	best   int
	logger *log.Logger
	err    error
}

// NewHighScoreTracker loads the current best for gameID. A nil logger
// uses the charmbracelet/log default.
func NewHighScoreTracker(store *Store, gameID string, logger *log.Logger) (*HighScoreTracker, error) {
	best, err := store.HighScore(gameID)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreTracker{
		store:  store,
		gameID: gameID,
		best:   best,
		logger: logger,
	}, nil
}

// Best returns the highest score seen, stored or live.
func (t *HighScoreTracker) Best() int {
	return t.best
}

// ScoreChanged records score as the new high score when it beats Best.
func (t *HighScoreTracker) ScoreChanged(score int) {
	if score <= t.best {
		return
	}
	t.best = score

	if _, err := t.store.RaiseHighScore(t.gameID, score); err != nil {
		t.err = err
		t.logger.Warn("high score not saved", "game", t.gameID, "score", score, "err", err)
	}
}

// Err returns the last persistence failure, if any.
func (t *HighScoreTracker) Err() error {
	return t.err
}
