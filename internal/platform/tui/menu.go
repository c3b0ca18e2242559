package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RohitDatta06/gamehub/internal/registry"
)

// MenuModel is the Bubble Tea model for the game picker. It never quits the
// program itself; the session reads its flags.
type MenuModel struct {
	items  []registry.Descriptor
	cursor int
	width  int
	height int
	player string
	keys   MenuKeyMap
	help   help.Model

	selected       string
	openScoreboard bool
	quitting       bool
}

// NewMenuModel lists every registered game.
func NewMenuModel(width, height int, player string) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		player: player,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				m.selected = m.items[m.cursor].ID
			}
		case key.Matches(msg, m.keys.Scoreboard):
			m.openScoreboard = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G A M E H U B"), m.width, 13))
	b.WriteString("\n\n")

	subtitle := "Select a game"
	if m.player != "" {
		subtitle = fmt.Sprintf("Welcome, %s. Select a game", m.player)
	}
	b.WriteString(centerText(subtitle, m.width, len(subtitle)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width, len(item.Title)+2))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		desc := m.items[m.cursor].Description
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(desc), m.width, len(desc)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen game ID, or "" when none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText pads text to center it in width. visible is the text's printed
// width, which differs from len once styles are applied.
func centerText(text string, width, visible int) string {
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}
