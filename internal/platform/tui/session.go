package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/host"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewScores
)

// SessionModel manages the full arcade flow: menu, game, scoreboard. It is
// the top-level model for local and SSH sessions.
type SessionModel struct {
	cfg    Config
	view   view
	menu   MenuModel
	game   GameModel
	scores ScoreboardModel
	// single is set when the session plays one game; leaving it quits.
	single   bool
	quitting bool
	lastGame string
	err      error
}

// NewSessionModel starts at the menu.
func NewSessionModel(cfg Config) SessionModel {
	return SessionModel{
		cfg:  cfg,
		view: viewMenu,
		menu: NewMenuModel(cfg.ScreenW, cfg.ScreenH, cfg.Player),
	}
}

// NewGameSession starts directly in the game registered under id.
func NewGameSession(cfg Config, id string) (SessionModel, error) {
	game, err := NewGameModel(id, cfg)
	if err != nil {
		return SessionModel{}, err
	}
	return SessionModel{cfg: cfg, view: viewGame, game: game, single: true, lastGame: id}, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.ScreenW = wsm.Width
		m.cfg.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	m.menu = updated.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.cfg.Board, m.cfg.ScreenW, m.cfg.ScreenH, m.lastGame)
		m.view = viewScores
		return m, nil

	case m.menu.Selected() != "":
		id := m.menu.Selected()
		game, err := NewGameModel(id, m.cfg)
		if err != nil {
			m.err = err
			m.menu = NewMenuModel(m.cfg.ScreenW, m.cfg.ScreenH, m.cfg.Player)
			return m, nil
		}
		m.game = game
		m.lastGame = id
		m.view = viewGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.game.Update(msg)
	m.game = updated.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		if m.single {
			m.quitting = true
			return m, tea.Quit
		}
		m.menu = NewMenuModel(m.cfg.ScreenW, m.cfg.ScreenH, m.cfg.Player)
		m.view = viewMenu
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	m.scores = updated.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.menu = NewMenuModel(m.cfg.ScreenW, m.cfg.ScreenH, m.cfg.Player)
		m.view = viewMenu
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		v := m.menu.View()
		if m.err != nil {
			v += "\n" + errStyle.Render(m.err.Error())
		}
		return v
	}
}

// programOptions are shared by local and SSH programs.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run runs a local session. An empty id starts at the menu.
func Run(cfg Config, id string) error {
	var model tea.Model = NewSessionModel(cfg)
	if id != "" {
		session, err := NewGameSession(cfg, id)
		if err != nil {
			return err
		}
		model = session
	}
	_, err := tea.NewProgram(model, programOptions()...).Run()
	return err
}

// RunScoreboard runs the scoreboard on its own.
func RunScoreboard(reader host.LeaderboardReader, cfg core.RuntimeConfig, startID string) error {
	model := scoreboardProgram{NewScoreboardModel(reader, cfg.ScreenW, cfg.ScreenH, startID)}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// scoreboardProgram quits when the scoreboard is left.
type scoreboardProgram struct {
	ScoreboardModel
}

func (p scoreboardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := p.ScoreboardModel.Update(msg)
	p.ScoreboardModel = updated.(ScoreboardModel)
	if p.IsQuitting() || p.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}
