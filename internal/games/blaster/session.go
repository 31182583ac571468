package blaster

// Phase is the session state machine position.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// ScoreListener is told the current score every time it changes.
// Implementations decide whether and how to persist it.
type ScoreListener interface {
	ScoreChanged(score int)
}

// ScoreListenerFunc adapts a plain function to ScoreListener.
type ScoreListenerFunc func(score int)

// ScoreChanged calls f(score).
func (f ScoreListenerFunc) ScoreChanged(score int) {
	f(score)
}

// Session is the context that outlives a single level.
type Session struct {
	Phase     Phase
	Score     int
	Level     int
	HighScore int

	listener ScoreListener
}

// addScore awards points and notifies the listener.
func (s *Session) addScore(points int) {
	if points == 0 {
		return
	}
	s.setScore(s.Score + points)
}

func (s *Session) setScore(score int) {
	if score == s.Score {
		return
	}
	s.Score = score
	if score > s.HighScore {
		s.HighScore = score
	}
	if s.listener != nil {
		s.listener.ScoreChanged(score)
	}
}

// reset clears score and level for a fresh run. The high score survives.
func (s *Session) reset() {
	s.setScore(0)
	s.Level = 1
}
