// Package tui provides the Bubble Tea integration for tui2048.
// It handles the terminal UI loop, input mapping, the layout menu and the
// Wish SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// GameModel is the Bubble Tea model for one game of 2048.
type GameModel struct {
	game       *t2048.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	logger     *log.Logger
	sessionID  string
	err        error
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the board size in cfg.
// A zero seed is replaced with one from the clock.
func NewGameModel(cfg core.RuntimeConfig, logger *log.Logger, sessionID string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:      t2048.NewGame(),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      DefaultKeyMap(),
		logger:    logger,
		sessionID: sessionID,
	}
	m.err = m.game.Reset(cfg)
	if m.err == nil {
		m.logger.Info("game started", "session", sessionID, "rows", cfg.Rows, "cols", cfg.Cols, "seed", cfg.Seed)
	}
	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.err == nil {
			m.game.Resize(msg.Width, msg.Height)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logEnd()
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		m.logEnd()
		return m, nil
	}

	if m.err != nil {
		return m, nil
	}

	if action == core.ActionRestart {
		if m.game.Apply(action) {
			m.logger.Info("board restarted", "session", m.sessionID)
		}
		return m, nil
	}
	if !action.IsMove() {
		return m, nil
	}

	changed := m.game.Apply(action)

	snap := m.game.Snapshot()
	m.logger.Debug("move",
		"session", m.sessionID,
		"dir", snap.LastDir,
		"changed", changed,
		"moves", snap.Moves,
		"max", snap.MaxValue,
	)
	return m, nil
}

func (m GameModel) logEnd() {
	if m.err != nil {
		return
	}
	snap := m.game.Snapshot()
	m.logger.Info("game ended", "session", m.sessionID, "moves", snap.Moves, "max", snap.MaxValue)
}

// saveScreenshot saves the current screen as plain text under ~/.tui2048.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tui2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("2048_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Err returns the error that prevented the game from starting, if any.
func (m GameModel) Err() error {
	return m.err
}

// Snapshot returns the current game snapshot.
func (m GameModel) Snapshot() t2048.Snapshot {
	if m.err != nil {
		return t2048.Snapshot{}
	}
	return m.game.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
