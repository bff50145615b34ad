package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuModel lets the player pick a board layout.
type MenuModel struct {
	layouts  []config.Layout
	cursor   int
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	selected *config.Layout
	quitting bool
}

// NewMenuModel creates a layout menu.
func NewMenuModel(layouts []config.Layout, width, height int) MenuModel {
	h := help.New()
	h.Width = width
	return MenuModel{
		layouts: layouts,
		width:   width,
		height:  height,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown, core.ActionRight:
		if m.cursor < len(m.layouts)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		if len(m.layouts) > 0 {
			l := m.layouts[m.cursor]
			m.selected = &l
		}
	}
	return m, nil
}

// View renders the layout list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(colorStyles[core.ColorAccent].Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board:", m.width))
	b.WriteString("\n\n")

	if len(m.layouts) == 0 {
		b.WriteString(centerText("No layouts configured.", m.width))
		b.WriteString("\n")
	}

	for i, l := range m.layouts {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-10s %dx%d", cursor, l.Name, l.Rows, l.Cols), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// Selected returns the chosen layout, or nil if still choosing.
func (m MenuModel) Selected() *config.Layout {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
