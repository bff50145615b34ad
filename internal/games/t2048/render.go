package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth    = 7 // Width of each cell including its left border; fits "131072"
	tallHeight   = 4 // Cell height including top border when the screen allows it
	shortHeight  = 2 // Fallback cell height
	hudHeight    = 2 // Title and info lines above the board
	footerHeight = 2 // Status and control lines below the board
)

// boardLayout is the size of the drawn grid for the current board.
type boardLayout struct {
	rows, cols int
	cellH      int
	boardW     int
	boardH     int
}

// layout picks tall cells when they fit on screen and short cells otherwise.
func (g *Game) layout() boardLayout {
	rows, cols := g.ctrl.Dims()
	l := boardLayout{rows: rows, cols: cols, cellH: tallHeight}
	l.boardW = cols*cellWidth + 1
	l.boardH = rows*l.cellH + 1
	if l.boardH+hudHeight+footerHeight > g.screenH {
		l.cellH = shortHeight
		l.boardH = rows*l.cellH + 1
	}
	return l
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	boardX := (g.screenW - l.boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, l, boardX, boardY)
	g.renderFooter(dst, boardY+l.boardH)
}

// Size of the frame around the "window too small" notice.
const (
	noticeW = 28
	noticeH = 4
)

// renderTooSmall shows a "window too small" message, framed when the
// screen has room for the frame.
func (g *Game) renderTooSmall(dst *core.Screen) {
	screen := dst.Bounds()
	box := screen.Centered(noticeW, noticeH)
	if screen.Contains(box.X, box.Y) && screen.Contains(box.Right()-1, box.Bottom()-1) {
		dst.DrawBox(box, core.ColorBoard)
	}

	y := box.Y + 1
	dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorMuted)
}

// renderHUD draws the title and board info.
func (g *Game) renderHUD(dst *core.Screen) {
	rows, cols := g.ctrl.Dims()
	dst.DrawTextCentered(0, g.Title(), core.ColorAccent)

	info := fmt.Sprintf("%dx%d  Moves: %d  Max: %d", rows, cols, g.ctrl.Moves(), Value(g.ctrl.board.MaxExponent()))
	dst.DrawTextCentered(1, info, core.ColorMuted)
}

// renderBoard draws the grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, l boardLayout, boardX, boardY int) {
	// Grid lines
	for y := range l.rows + 1 {
		for x := range l.cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*l.cellH
			dst.SetCell(px, py, core.Cell{Rune: gridCorner(x, y, l.cols, l.rows), Color: core.ColorBoard})

			if x < l.cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Color: core.ColorBoard})
				}
			}
			if y < l.rows {
				for i := 1; i < l.cellH; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Color: core.ColorBoard})
				}
			}
		}
	}

	// Tiles
	for y, row := range g.ctrl.board {
		for x, exp := range row {
			inner := core.NewRect(boardX+x*cellWidth+1, boardY+y*l.cellH+1, cellWidth-1, l.cellH-1)
			color := core.TileColor(exp)
			dst.FillRect(inner, ' ', color)
			if exp == 0 {
				continue
			}

			valStr := strconv.Itoa(Value(exp))
			padLeft := max((inner.W-len(valStr))/2, 0)
			dst.DrawColorText(inner.X+padLeft, inner.Y+(inner.H-1)/2, valStr, color)
		}
	}
}

// gridCorner returns the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// renderFooter draws the last-move status and the control hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.hasLast && !g.lastChanged {
		dst.DrawTextCentered(y, fmt.Sprintf("Nothing moves %s", g.last), core.ColorWarning)
	}
	dst.DrawTextCentered(y+1, g.Controls(), core.ColorMuted)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: New board | Esc: Back | Q: Quit"
}
