package blaster

import (
	"time"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// World is the complete simulation: arena, entities and session context.
// It is not safe for concurrent use; the host drives it from one loop.
type World struct {
	cfg     config.BlasterConfig
	rng     RNG
	clock   Clock
	session Session

	grid       Grid
	player     Player
	enemies    []Enemy
	bombs      []Bomb
	explosions []Explosion
	powerUps   []PowerUp

	nextID int
	tick   uint64
}

// Option configures a World.
type Option func(*World)

// WithClock replaces the wall clock used by the movement gate.
func WithClock(c Clock) Option {
	return func(w *World) {
		w.clock = c
	}
}

// WithScoreListener registers the collaborator told about score changes.
func WithScoreListener(l ScoreListener) Option {
	return func(w *World) {
		w.session.listener = l
	}
}

// WithHighScore seeds the session high score, usually from storage.
func WithHighScore(score int) Option {
	return func(w *World) {
		w.session.HighScore = score
	}
}

// NewWorld creates a world waiting on the title screen.
func NewWorld(cfg config.BlasterConfig, rng RNG, opts ...Option) *World {
	w := &World{
		cfg:   cfg,
		rng:   rng,
		clock: time.Now,
	}
	w.session.Phase = PhaseMenu
	w.session.Level = 1
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Intents is the input consumed by one tick.
type Intents struct {
	Up, Down, Left, Right bool // Held directions
	Bomb                  bool // Place-bomb trigger
}

// IntentsFromFrame extracts movement and bomb intents from a host frame.
func IntentsFromFrame(in core.InputFrame) Intents {
	return Intents{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Bomb:  in.Has(core.ActionBomb),
	}
}

// direction picks the single step to attempt. Vertical wins over
// horizontal; Up beats Down and Left beats Right.
func (in Intents) direction() (Direction, bool) {
	switch {
	case in.Up:
		return DirUp, true
	case in.Down:
		return DirDown, true
	case in.Left:
		return DirLeft, true
	case in.Right:
		return DirRight, true
	}
	return DirUp, false
}

// Session returns a copy of the session context.
func (w *World) Session() Session {
	s := w.session
	s.listener = nil
	return s
}

// Phase returns the current state machine position.
func (w *World) Phase() Phase {
	return w.session.Phase
}

// Config returns the configuration the world runs with.
func (w *World) Config() config.BlasterConfig {
	return w.cfg
}

// Start begins a fresh run from the title screen or after game over.
// Score and level are reset and level one is generated.
func (w *World) Start() bool {
	if w.session.Phase != PhaseMenu && w.session.Phase != PhaseGameOver {
		return false
	}
	w.session.reset()
	w.startLevel()
	w.session.Phase = PhasePlaying
	return true
}

// TogglePause switches between Playing and Paused.
func (w *World) TogglePause() bool {
	switch w.session.Phase {
	case PhasePlaying:
		w.session.Phase = PhasePaused
	case PhasePaused:
		w.session.Phase = PhasePlaying
	default:
		return false
	}
	return true
}

// ToMenu abandons the current run and returns to the title screen.
// A pending escape relocation is cancelled along with the run.
func (w *World) ToMenu() bool {
	if w.session.Phase == PhaseMenu {
		return false
	}
	w.player.Pending = nil
	w.session.reset()
	w.session.Phase = PhaseMenu
	return true
}

// Tick advances the simulation by one step. Outside Playing it does nothing.
func (w *World) Tick(in Intents) {
	if w.session.Phase != PhasePlaying {
		return
	}
	w.tick++

	w.resolveRelocation()
	if !w.escapeGuarded() {
		w.MovePlayer(in)
	}
	if in.Bomb {
		w.PlaceBomb()
	}
	w.decayShield()
	w.updateEnemies()
	w.updateBombs()
	w.ageExplosions()
	w.agePowerUps()
	w.resolveCollisions()

	switch {
	case w.player.Lives <= 0:
		w.session.Phase = PhaseGameOver
	case len(w.enemies) == 0:
		w.session.Level++
		w.session.addScore(w.cfg.Scoring.LevelClear)
		w.startLevel()
	}
}

// newID hands out entity ids, unique for the lifetime of the world.
func (w *World) newID() int {
	w.nextID++
	return w.nextID
}
