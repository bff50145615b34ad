package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// SessionModel manages the session flow: layout menu -> game -> menu.
// It is the top-level model for SSH sessions and for local play without a
// layout argument.
type SessionModel struct {
	config    core.RuntimeConfig
	layouts   []config.Layout
	logger    *log.Logger
	sessionID string
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, layouts []config.Layout, logger *log.Logger, sessionID string) SessionModel {
	return SessionModel{
		config:    cfg,
		layouts:   layouts,
		logger:    logger,
		sessionID: sessionID,
		menu:      NewMenuModel(layouts, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		cfg := m.config
		cfg.Rows, cfg.Cols = selected.Rows, selected.Cols
		// Each game from the menu gets a fresh seed.
		cfg.Seed = 0

		gameModel := NewGameModel(cfg, m.logger, m.sessionID)
		if err := gameModel.Err(); err != nil {
			m.logger.Error("cannot start game", "session", m.sessionID, "layout", selected.Name, "error", err)
			m.menu = NewMenuModel(m.layouts, m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.layouts, m.config.ScreenW, m.config.ScreenH)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is being played.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// Run plays a single game on the board size in cfg until the player quits
// or goes back.
func Run(cfg core.RuntimeConfig, logger *log.Logger, sessionID string) error {
	model := NewGameModel(cfg, logger, sessionID)
	if err := model.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(&standaloneGame{model}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunSession shows the layout menu and plays games until the player quits.
func RunSession(cfg core.RuntimeConfig, layouts []config.Layout, logger *log.Logger, sessionID string) error {
	p := tea.NewProgram(NewSessionModel(cfg, layouts, logger, sessionID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// standaloneGame quits the program when the player goes back, since there is
// no menu to return to.
type standaloneGame struct {
	GameModel
}

func (s *standaloneGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		s.GameModel = gm
	}
	if s.GameModel.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
