package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/core"
	"github.com/vovakirdan/pixel-blaster/internal/games/blaster"
	"github.com/vovakirdan/pixel-blaster/internal/replay"
	"github.com/vovakirdan/pixel-blaster/internal/storage"
)

var _ blaster.ScoreListener = (*storage.HighScoreTracker)(nil)

// Options configures how the host runs games.
type Options struct {
	Store      *storage.Store // Optional; scores are not kept without it
	Logger     *log.Logger
	Config     config.BlasterConfig // Zero value means blaster.LoadConfig()
	HoldWindow time.Duration
	ReplayDir  string // Save a replay of every session here when set
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Config == (config.BlasterConfig{}) {
		o.Config = blaster.LoadConfig()
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = DefaultHoldWindow
	}
	return o
}

// Model is the Bubble Tea model for one Pixel Blaster session.
type Model struct {
	game       *blaster.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	clock      *tickClock
	held       *heldKeys
	recorder   *replay.Recorder
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	tickID     int
	now        func() time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been stored
}

// NewModel creates a new Bubble Tea model with a fresh game on its title
// screen.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	opts = opts.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	clock := &tickClock{now: time.Now()}
	game := blaster.New()
	game.SetConfig(opts.Config)
	game.SetClock(clock.Now)

	if opts.Store != nil {
		tracker, err := storage.NewHighScoreTracker(opts.Store, game.ID(), opts.Logger)
		if err != nil {
			opts.Logger.Warn("high score unavailable", "err", err)
		} else {
			game.SetScoreListener(tracker)
			game.SetHighScore(tracker.Best())
		}
	}
	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		opts:       opts,
		config:     cfg,
		clock:      clock,
		held:       newHeldKeys(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		tickID:     nextTickID(),
		now:        time.Now,
	}
	m.help.Width = cfg.ScreenW
	if opts.ReplayDir != "" {
		m.recorder = replay.NewRecorder(cfg.Seed, opts.Config, clock.Now())
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.finish()
		return m, tea.Quit

	case isDirection(action):
		m.held.press(action, m.now())

	case action == core.ActionBack && m.gameState.InMenu:
		// The title screen hands back to the main menu
		m.backToMenu = true
		m.finish()

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize only resizes the screen buffer; the run is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step at the given tick time.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	m.clock.set(at)

	in := m.inputFrame.Clone()
	m.held.apply(&in, at)
	if m.recorder != nil {
		m.recorder.Record(in, at)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.InMenu || m.gameState.Paused || m.gameState.GameOver {
		m.held.release()
	}

	// A restart from game over begins a new run
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// saveRun stores the finished run. Failures are logged, never fatal.
func (m *Model) saveRun() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveRun(m.game.ID(), m.gameState.Score, m.gameState.Level); err != nil {
		m.opts.Logger.Warn("run not saved", "score", m.gameState.Score, "err", err)
	}
}

// finish closes the session: the replay, if any, is written out.
func (m *Model) finish() {
	if m.recorder == nil {
		return
	}
	snap := m.game.Snapshot()
	m.recorder.Finish(snap.Hash())

	path, err := m.saveReplay()
	if err != nil {
		m.opts.Logger.Warn("replay not saved", "err", err)
		return
	}
	m.opts.Logger.Info("replay saved", "path", path)
	m.recorder = nil
}

func (m *Model) saveReplay() (string, error) {
	if err := os.MkdirAll(m.opts.ReplayDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create replay directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s.yaml", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ReplayDir, name)
	if err := replay.Save(path, m.recorder.Recording()); err != nil {
		return "", err
	}
	return path, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot not saved", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the main menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
