// Package blaster implements Pixel Blaster: a grid arena where the player
// and AI enemies place timed bombs that blast along rows and columns.
//
// World holds the deterministic simulation. Game wraps it with the session
// keys (start, pause, back, restart) the terminal host drives.
package blaster

import (
	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
)

// GameID identifies the game in the score tables and recordings.
const GameID = "blaster"

// Title is the display name.
const Title = "Pixel Blaster"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig resolves the configuration a Game would use on Reset.
func LoadConfig() config.BlasterConfig {
	cfg, err := config.LoadBlaster(configPath)
	if err != nil {
		cfg = config.DefaultBlasterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlasterPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game drives a World from host input frames.
type Game struct {
	world     *World
	runtime   core.RuntimeConfig
	cfg       *config.BlasterConfig // Explicit config, overrides loading
	clock     Clock
	listener  ScoreListener
	highScore int
}

// New creates a new Pixel Blaster game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// SetConfig pins the configuration instead of loading it on Reset.
func (g *Game) SetConfig(cfg config.BlasterConfig) {
	g.cfg = &cfg
}

// SetClock replaces the wall clock used by the movement gate.
func (g *Game) SetClock(c Clock) {
	g.clock = c
}

// SetScoreListener registers the score persistence collaborator.
func (g *Game) SetScoreListener(l ScoreListener) {
	g.listener = l
}

// SetHighScore seeds the best score shown on the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
}

// Reset builds a new world on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.BlasterConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		cfg = LoadConfig()
	}

	if g.world != nil {
		g.highScore = max(g.highScore, g.world.session.HighScore)
	}

	opts := []Option{WithHighScore(g.highScore)}
	if g.clock != nil {
		opts = append(opts, WithClock(g.clock))
	}
	if g.listener != nil {
		opts = append(opts, WithScoreListener(g.listener))
	}
	g.world = NewWorld(cfg, NewRNG(runtime.Seed), opts...)
}

// World exposes the simulation, mainly for tests and replays.
func (g *Game) World() *World {
	return g.world
}

// Step applies session intents and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world

	switch w.Phase() {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBomb) {
			w.Start()
		}
	case PhasePlaying:
		switch {
		case in.Has(core.ActionPause):
			w.TogglePause()
		case in.Has(core.ActionBack):
			w.ToMenu()
		default:
			w.Tick(IntentsFromFrame(in))
		}
	case PhasePaused:
		switch {
		case in.Has(core.ActionPause):
			w.TogglePause()
		case in.Has(core.ActionBack):
			w.ToMenu()
		}
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			w.Start()
		case in.Has(core.ActionBack):
			w.ToMenu()
		}
	}

	return core.StepResult{State: g.State()}
}

// Snapshot returns a copy of the current world state.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.session
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		InMenu:   s.Phase == PhaseMenu,
		GameOver: s.Phase == PhaseGameOver,
		Paused:   s.Phase == PhasePaused,
	}
}

