package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game adapts a Controller to a terminal host: it turns semantic actions into
// moves and draws the board into a core.Screen.
type Game struct {
	ctrl *Controller
	last Direction

	// Screen dimensions
	screenW int
	screenH int

	// State flags
	tooSmall    bool
	lastChanged bool
	hasLast     bool
}

// NewGame creates a game. Call Reset before use.
func NewGame() *Game {
	return &Game{}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes or restarts the game on the board size in cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	rows, cols := cfg.Rows, cfg.Cols
	if rows == 0 && cols == 0 {
		rows, cols = 4, 4
	}

	ctrl, err := NewController(rows, cols, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	g.ctrl = ctrl
	g.hasLast = false
	g.lastChanged = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Restart deals a new board of the same size, continuing the RNG stream.
func (g *Game) Restart() {
	g.ctrl.Reset()
	g.hasLast = false
	g.lastChanged = false
}

// Resize records new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.boardW || g.screenH < l.boardH+hudHeight+footerHeight
}

// Apply handles one action. Directional actions are passed to the
// controller; it reports whether the board changed.
func (g *Game) Apply(a core.Action) bool {
	if g.tooSmall {
		return false
	}

	var dir Direction
	switch a {
	case core.ActionLeft:
		dir = DirLeft
	case core.ActionRight:
		dir = DirRight
	case core.ActionUp:
		dir = DirUp
	case core.ActionDown:
		dir = DirDown
	case core.ActionRestart:
		g.Restart()
		return true
	default:
		return false
	}

	changed := g.ctrl.HandleDirection(dir)
	g.last = dir
	g.hasLast = true
	g.lastChanged = changed
	return changed
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.ctrl.Board()
}

// Moves returns the number of effective moves since the last restart.
func (g *Game) Moves() int {
	return g.ctrl.Moves()
}

// TooSmall reports whether the screen cannot fit the board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
