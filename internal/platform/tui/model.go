package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/host"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

const (
	boardPanelWidth = 30
	boardRows       = 10
	// collabTimeout bounds a submit or leaderboard call made from the UI.
	collabTimeout = 5 * time.Second
)

// Config carries everything a terminal session needs.
type Config struct {
	core.RuntimeConfig
	Tuning    *config.Games
	Player    string
	Submitter host.ScoreSubmitter
	Board     host.LeaderboardReader
	// Logger receives host events. Nil discards them, since the alternate
	// screen owns the terminal.
	Logger *log.Logger
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// GameModel is the Bubble Tea model for one mounted game.
type GameModel struct {
	cfg   Config
	desc  registry.Descriptor
	host  *host.Host
	stage *stage
	keys  GameKeyMap
	help  help.Model

	width, height int
	showBoard     bool
	board         []host.Standing
	boardErr      error

	seq        uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel mounts the game registered under id.
func NewGameModel(id string, cfg Config) (GameModel, error) {
	desc, ok := registry.Lookup(id)
	if !ok {
		return GameModel{}, fmt.Errorf("tui: unknown game %q", id)
	}
	if cfg.ScreenW == 0 || cfg.ScreenH == 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	st := newStage(cfg.Seed, cfg.Tuning)
	h := host.New(st.env,
		host.WithPlayer(cfg.Player),
		host.WithSubmitter(cfg.Submitter),
		host.WithLeaderboard(cfg.Board),
		host.WithLogger(cfg.logger()),
	)
	if err := h.Mount(id); err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		cfg:    cfg,
		desc:   desc,
		host:   h,
		stage:  st,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		seq:    nextTickSeq(),
	}
	m.relayout()
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate, m.seq)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		if msg.Seq != m.seq || m.quitting || m.backToMenu {
			return m, nil
		}
		m.stage.frames.Flush(msg.At)
		return m, tickCmd(m.cfg.TickRate, m.seq)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.host.Unmount()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.host.Unmount()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.host.Restart()
		return m, nil

	case key.Matches(msg, m.keys.Submit) && m.host.Over():
		ctx, cancel := context.WithTimeout(context.Background(), collabTimeout)
		defer cancel()
		if _, err := m.host.Submit(ctx); err == nil && m.showBoard {
			m.loadBoard()
		}
		return m, nil

	case key.Matches(msg, m.keys.Board):
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.loadBoard()
		}
		m.relayout()
		return m, nil
	}

	if k, ok := engineKey(msg); ok {
		m.stage.bus.Dispatch(engine.KeyEvent(k))
	}
	return m, nil
}

// handleMouse forwards pointer events that land on the canvas.
func (m GameModel) handleMouse(msg tea.MouseMsg) {
	col := msg.X - m.canvasIndent()
	row := msg.Y - hudRows
	x, y, ok := m.stage.canvas.ToSurface(col, row)
	if !ok {
		return
	}
	if ev, ok := pointerEvent(msg, x, y); ok {
		m.stage.bus.Dispatch(ev)
	}
}

func (m *GameModel) loadBoard() {
	ctx, cancel := context.WithTimeout(context.Background(), collabTimeout)
	defer cancel()
	m.board, m.boardErr = m.host.Leaderboard(ctx, boardRows)
}

func (m *GameModel) relayout() {
	reserve := 0
	if m.showBoard {
		reserve = boardPanelWidth + 2
	}
	m.stage.layout(m.width, m.height, reserve)
	m.host.Redraw()
}

// canvasIndent is the column the canvas starts at.
func (m GameModel) canvasIndent() int {
	used := m.stage.screen.Width()
	if m.showBoard {
		used += boardPanelWidth + 2
	}
	return max((m.width-used)/2, 0)
}

// View renders the HUD, the canvas and the key help.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.hudLine())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	canvas := RenderScreen(m.stage.screen, m.canvasIndent())
	if m.showBoard {
		canvas = lipgloss.JoinHorizontal(lipgloss.Top, canvas, "  ", m.boardPanel())
	}
	b.WriteString(canvas)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m GameModel) hudLine() string {
	parts := []string{
		titleStyle.Render(strings.ToUpper(m.desc.Title)),
		scoreStyle.Render(fmt.Sprintf("Score: %d", m.host.Score())),
	}
	if p := m.host.Player(); p != "" {
		parts = append(parts, dimStyle.Render("player: "+p))
	} else {
		parts = append(parts, dimStyle.Render("guest"))
	}
	return " " + strings.Join(parts, dimStyle.Render("  ·  "))
}

func (m GameModel) statusLine() string {
	var parts []string
	if m.host.Over() {
		parts = append(parts, overStyle.Render(fmt.Sprintf("GAME OVER  final score %d", m.host.Score())))
	}
	if n, ok := m.host.Notice(); ok {
		style := okStyle
		if n.Err {
			style = errStyle
		}
		parts = append(parts, style.Render(n.Text))
	} else if m.host.Over() {
		hint := "r to play again"
		if m.host.CanSubmit() {
			hint = "s to submit, r to play again"
		}
		parts = append(parts, dimStyle.Render(hint))
	}
	return " " + strings.Join(parts, "  ")
}

func (m GameModel) boardPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Leaderboard"))
	b.WriteString("\n")
	switch {
	case m.boardErr != nil:
		b.WriteString(errStyle.Render("unavailable"))
	case len(m.board) == 0:
		b.WriteString(dimStyle.Render("no scores yet"))
	default:
		for _, s := range m.board {
			line := fmt.Sprintf("%3d. %-14s %6d", s.Rank, truncate(s.Player, 14), s.Value)
			if s.Player == m.host.Player() {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return panelStyle.Width(boardPanelWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// Host exposes the game host.
func (m GameModel) Host() *host.Host {
	return m.host
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
