package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-blaster/internal/core"
	"github.com/vovakirdan/pixel-blaster/internal/games/blaster"
)

// screenID names the sub-model a session is showing.
type screenID int

const (
	screenMenu screenID = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores ->
// menu. It is the top-level model for local play and SSH sessions alike.
type SessionModel struct {
	opts       Options
	config     core.RuntimeConfig
	username   string
	screen     screenID
	menu       MenuModel
	game       Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model on the main menu.
func NewSessionModel(opts Options, cfg core.RuntimeConfig, username string) SessionModel {
	opts = opts.withDefaults()
	m := SessionModel{
		opts:     opts,
		config:   cfg,
		username: username,
	}
	m.menu = NewMenuModel(cfg.ScreenW, cfg.ScreenH, m.bestScore())
	return m
}

// bestScore reads the stored high score for the menu banner.
func (m SessionModel) bestScore() int {
	if m.opts.Store == nil {
		return 0
	}
	best, err := m.opts.Store.HighScore(blaster.GameID)
	if err != nil {
		m.opts.Logger.Warn("high score unavailable", "user", m.username, "err", err)
		return 0
	}
	return best
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuPlay:
		m.game = NewModel(m.opts, m.config)
		m.screen = screenGame
		m.opts.Logger.Debug("game started", "user", m.username)
		return m, m.game.Init()

	case MenuScores:
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.showMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.showMenu()
	}

	return m, cmd
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.bestScore())
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// Run starts a local Bubble Tea program on the main menu.
func Run(opts Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(opts, cfg, "local"),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

