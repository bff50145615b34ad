package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func testLayouts() []config.Layout {
	return []config.Layout{
		{Name: "classic", Rows: 4, Cols: 4},
		{Name: "tiny", Rows: 3, Cols: 3},
		{Name: "wide", Rows: 4, Cols: 6},
	}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"k", runeKey('k'), core.ActionUp},
		{"j", runeKey('j'), core.ActionDown},
		{"h", runeKey('h'), core.ActionLeft},
		{"l", runeKey('l'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestGameModelMoves(t *testing.T) {
	m := NewGameModel(testConfig(), testLogger(), "test")
	if err := m.Err(); err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}

	// With two tiles on an empty 4x4 board at least one direction moves.
	var model tea.Model = m
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown},
	} {
		model, _ = model.Update(msg)
	}

	gm := model.(GameModel)
	if gm.Snapshot().Moves == 0 {
		t.Error("expected at least one move to change the board")
	}
	if gm.IsQuitting() || gm.BackToMenu() {
		t.Error("move keys should not leave the game")
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := NewGameModel(testConfig(), testLogger(), "test")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Error("esc should go back to menu")
	}
	if cmd != nil {
		t.Error("back should not quit the program")
	}

	next, cmd = m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if view := next.View(); view != "" {
		t.Errorf("quitting view = %q, want empty", view)
	}
}

func TestGameModelRestart(t *testing.T) {
	var model tea.Model = NewGameModel(testConfig(), testLogger(), "test")
	for range 5 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	}

	model, _ = model.Update(runeKey('r'))
	snap := model.(GameModel).Snapshot()
	if snap.Moves != 0 {
		t.Errorf("moves after restart = %d, want 0", snap.Moves)
	}
	tiles := 0
	for _, row := range snap.Board {
		for _, c := range row {
			if c != 0 {
				tiles++
			}
		}
	}
	if tiles != 2 {
		t.Errorf("tiles after restart = %d, want 2", tiles)
	}
}

func TestGameModelInvalidDims(t *testing.T) {
	cfg := testConfig()
	cfg.Rows = -1
	m := NewGameModel(cfg, testLogger(), "test")
	if m.Err() == nil {
		t.Fatal("expected error for negative rows")
	}
	if !strings.Contains(m.View(), "Error") {
		t.Errorf("view should report the error, got %q", m.View())
	}
}

func TestGameModelResizeKeepsBoard(t *testing.T) {
	var model tea.Model = NewGameModel(testConfig(), testLogger(), "test")
	before := model.(GameModel).Snapshot().Board

	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	after := model.(GameModel).Snapshot().Board

	if len(before) != len(after) {
		t.Fatalf("rows changed on resize: %d -> %d", len(before), len(after))
	}
	for i := range before {
		for j := range before[i] {
			if before[i][j] != after[i][j] {
				t.Fatalf("cell (%d,%d) changed on resize", i, j)
			}
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	var model tea.Model = NewMenuModel(testLayouts(), 80, 24)

	// Cursor stays at the top.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	// And at the bottom.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := model.(MenuModel).Selected()
	if got == nil {
		t.Fatal("expected a selection")
	}
	if got.Name != "wide" {
		t.Errorf("selected %q, want %q", got.Name, "wide")
	}
}

func TestMenuEmpty(t *testing.T) {
	var model tea.Model = NewMenuModel(nil, 80, 24)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := model.(MenuModel)
	if m.Selected() != nil {
		t.Error("empty menu should not select anything")
	}
	if !strings.Contains(m.View(), "No layouts") {
		t.Error("empty menu should say so")
	}
}

func TestMenuQuit(t *testing.T) {
	model, cmd := NewMenuModel(testLayouts(), 80, 24).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !model.(MenuModel).IsQuitting() {
		t.Error("esc in menu should quit")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestSessionFlow(t *testing.T) {
	var model tea.Model = NewSessionModel(testConfig(), testLayouts(), testLogger(), "test")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := model.(SessionModel)
	if !s.InGame() {
		t.Fatal("expected to be in game after selecting a layout")
	}
	if snap := s.gameModel.Snapshot(); snap.Rows != 3 || snap.Cols != 3 {
		t.Errorf("board = %dx%d, want 3x3", snap.Rows, snap.Cols)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.(SessionModel).InGame() {
		t.Fatal("esc should return to the menu")
	}

	model, cmd := model.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q in menu should quit")
	}
	if view := model.View(); view != "" {
		t.Errorf("quitting view = %q, want empty", view)
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	var model tea.Model = NewSessionModel(testConfig(), testLayouts(), testLogger(), "test")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := model.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q in game should quit the session")
	}
}

func TestSessionBadLayoutStaysInMenu(t *testing.T) {
	layouts := []config.Layout{{Name: "broken", Rows: 0, Cols: 3}}
	var model tea.Model = NewSessionModel(testConfig(), layouts, testLogger(), "test")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model.(SessionModel).InGame() {
		t.Error("a layout that cannot start should keep the menu open")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawColorText(1, 1, "2048", core.TileColor(11))
	s.DrawColorText(6, 1, "ok", core.ColorMuted)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
