// Package minesweeper implements event-driven Minesweeper. There is no frame
// loop: every input mutates the field and redraws synchronously.
package minesweeper

import (
	"math"
	"math/rand"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

// Game implements the Minesweeper engine.
type Game struct {
	env  engine.Env
	cfg  config.MinesweeperConfig
	rng  *rand.Rand
	loop *engine.Loop

	grid       Grid
	mines      int // Mines actually placed
	firstClick bool
	cursor     Pos
	score      int
	over       bool
	won        bool
}

func init() {
	registry.Register(registry.Descriptor{
		ID:          "minesweeper",
		Title:       "Minesweeper",
		Description: "Clear the field without touching a mine.",
		New:         func(env engine.Env) engine.Engine { return New(env) },
	})
}

// New creates a Minesweeper game. The surface is resized to the grid.
func New(env engine.Env) *Game {
	cfg := env.Games().Minesweeper
	if env.Surface == nil {
		env.Surface = core.NewSurface(0, 0)
	}
	env.Surface.SetSize(cfg.CellSize*cfg.Cols, cfg.CellSize*cfg.Rows)

	g := &Game{
		env: env,
		cfg: cfg,
		rng: env.RNG(),
	}
	g.loop = engine.NewLoop(env, nil)
	g.resetInternal()
	return g
}

// Start subscribes to pointer and keyboard input and redraws.
func (g *Game) Start() {
	if g.loop.Listening() == 0 {
		g.loop.Listen(g.handlePointer)
		g.loop.Listen(g.handleKey)
	}
	g.draw()
}

// Stop drops the input subscriptions.
func (g *Game) Stop() {
	g.loop.Release()
}

// Reset lays out a fresh field; mines are placed on the next first click.
func (g *Game) Reset() {
	g.Stop()
	g.resetInternal()
	g.env.Notify(0, false)
	g.Start()
}

// IsGameOver reports a hit mine or a cleared field.
func (g *Game) IsGameOver() bool {
	return g.over || g.won
}

// Won reports whether every safe cell has been opened.
func (g *Game) Won() bool {
	return g.won
}

// Score returns ten points per opened cell.
func (g *Game) Score() int {
	return g.score
}

func (g *Game) resetInternal() {
	g.grid = NewGrid(g.cfg.Rows, g.cfg.Cols)
	g.mines = 0
	g.firstClick = true
	g.cursor = Pos{Row: g.cfg.Rows / 2, Col: g.cfg.Cols / 2}
	g.score = 0
	g.over = false
	g.won = false
	g.draw()
}

func (g *Game) handlePointer(ev engine.Event) {
	if ev.Kind != engine.EventPointerDown {
		return
	}
	p, ok := g.cellAt(ev.X, ev.Y)
	if !ok {
		return
	}
	g.cursor = p
	switch ev.Button {
	case engine.ButtonLeft:
		g.Reveal(p)
	case engine.ButtonRight:
		g.ToggleFlag(p)
	}
}

func (g *Game) handleKey(ev engine.Event) {
	if ev.Kind != engine.EventKey {
		return
	}
	switch ev.Key {
	case engine.KeyUp:
		g.moveCursor(-1, 0)
	case engine.KeyDown:
		g.moveCursor(1, 0)
	case engine.KeyLeft:
		g.moveCursor(0, -1)
	case engine.KeyRight:
		g.moveCursor(0, 1)
	case engine.KeySpace, engine.KeyEnter:
		g.Reveal(g.cursor)
	case engine.KeyFlag:
		g.ToggleFlag(g.cursor)
	}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, g.cfg.Rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, g.cfg.Cols-1)
	g.draw()
}

func (g *Game) cellAt(x, y float64) (Pos, bool) {
	size := float64(g.cfg.CellSize)
	p := Pos{
		Row: int(math.Floor(y / size)),
		Col: int(math.Floor(x / size)),
	}
	return p, g.grid.In(p)
}

// Reveal opens p. The first reveal of a session places the mines around it.
func (g *Game) Reveal(p Pos) {
	if g.over || g.won || !g.grid.In(p) {
		return
	}
	if g.firstClick {
		g.grid.PlaceMines(g.rng, g.cfg.Mines, p)
		g.mines = g.grid.Mines()
		g.firstClick = false
	}

	g.open(p)
	g.checkWin()
	g.draw()
}

func (g *Game) open(p Pos) {
	cell := &g.grid[p.Row][p.Col]
	if cell.Open || cell.Flag {
		return
	}
	if cell.Mine {
		cell.Open = true
		g.over = true
		g.grid.RevealMines()
		g.env.Notify(g.score, true)
		return
	}
	g.grid.Flood(p, func(Pos) {
		g.score += g.cfg.OpenPoints
		g.env.Notify(g.score, false)
	})
}

func (g *Game) checkWin() {
	if g.over || g.won {
		return
	}
	safes := g.cfg.Rows*g.cfg.Cols - g.mines
	if g.grid.OpenedSafe() >= safes {
		g.won = true
		g.env.Notify(g.score, true)
	}
}

// ToggleFlag flips the flag on an unopened cell.
func (g *Game) ToggleFlag(p Pos) {
	if g.over || g.won || !g.grid.In(p) {
		return
	}
	cell := &g.grid[p.Row][p.Col]
	if !cell.Open {
		cell.Flag = !cell.Flag
		g.draw()
	}
}
