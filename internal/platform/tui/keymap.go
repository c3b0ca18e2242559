package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RohitDatta06/gamehub/internal/engine"
)

// GameKeyMap holds the keys the game screen handles itself. Everything else
// goes to the engine.
type GameKeyMap struct {
	Restart key.Binding
	Submit  key.Binding
	Board   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Submit, k.Board, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultGameKeyMap returns the game screen bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Submit:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		Board:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "leaderboard")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuKeyMap holds the menu bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// engineKeys are the terminal keys forwarded to engines.
var engineKeys = map[string]engine.Key{
	"up":    engine.KeyUp,
	"down":  engine.KeyDown,
	"left":  engine.KeyLeft,
	"right": engine.KeyRight,
	" ":     engine.KeySpace,
	"enter": engine.KeyEnter,
	"f":     engine.KeyFlag,
}

// engineKey translates a key message to an engine key.
func engineKey(msg tea.KeyMsg) (engine.Key, bool) {
	k, ok := engineKeys[msg.String()]
	return k, ok
}

// pointerEvent translates a mouse message at surface coordinates (x, y) to an
// engine event.
func pointerEvent(msg tea.MouseMsg, x, y float64) (engine.Event, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return engine.PointerDown(x, y, engine.ButtonLeft), true
		case tea.MouseButtonRight:
			return engine.PointerDown(x, y, engine.ButtonRight), true
		}
	case tea.MouseActionMotion:
		return engine.PointerMove(x, y), true
	}
	return engine.Event{}, false
}
