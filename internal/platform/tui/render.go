package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Tile palette by exponent, from empty through 2048 and beyond.
var tileBackgrounds = [...]string{
	"#CCC1B4", // empty
	"#EEE4DA", // 2
	"#EDE0C8", // 4
	"#F2B179", // 8
	"#F59563", // 16
	"#F67C5F", // 32
	"#F65E3B", // 64
	"#EDCF72", // 128
	"#EDCC61", // 256
	"#EDC850", // 512
	"#EDC53F", // 1024
	"#EDC22E", // 2048
	"#3C3A32", // 4096+
}

const (
	darkTileText  = "#776E65"
	lightTileText = "#F9F6F2"
	boardColor    = "#BBADA0"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorBoard:   lipgloss.NewStyle().Foreground(lipgloss.Color(boardColor)),
		core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#EDC22E")).Bold(true),
		core.ColorWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F65E3B")),
	}

	for exp, bg := range tileBackgrounds {
		// 2 and 4 use dark text, everything larger light text.
		fg := lightTileText
		if exp <= 2 {
			fg = darkTileText
		}
		styles[core.TileColor(exp)] = lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(fg)).
			Bold(exp > 0)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
