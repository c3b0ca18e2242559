// Package tetris implements falling-block Tetris on a fixed drop step.
package tetris

import (
	"math/rand"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

// Game implements the Tetris engine.
type Game struct {
	env        engine.Env
	cfg        config.TetrisConfig
	rng        *rand.Rand
	loop       *engine.Loop
	acc        engine.Accumulator
	difficulty *config.DifficultyManager

	board  Board
	cur    *Falling
	next   *Piece
	score  int
	pieces int // Pieces locked this session
	over   bool
}

func init() {
	registry.Register(registry.Descriptor{
		ID:          "tetris",
		Title:       "Tetris",
		Description: "Rotate and stack falling blocks to clear lines.",
		New:         func(env engine.Env) engine.Engine { return New(env) },
	})
}

// New creates a Tetris game. The surface is resized to fit the board.
func New(env engine.Env) *Game {
	cfg := env.Games().Tetris
	if env.Surface == nil {
		env.Surface = core.NewSurface(0, 0)
	}
	env.Surface.SetSize(cfg.CellSize*cfg.Cols, cfg.CellSize*cfg.Rows)

	g := &Game{
		env:        env,
		cfg:        cfg,
		rng:        env.RNG(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.loop = engine.NewLoop(env, g.frame)
	g.resetInternal()
	return g
}

// Start subscribes to keys and (re)starts the drop timer.
func (g *Game) Start() {
	if g.loop.Listening() == 0 {
		g.loop.Listen(g.handleInput)
	}
	g.acc.Reset()
	g.loop.Run()
}

// Stop cancels the pending frame and drops the key subscription.
func (g *Game) Stop() {
	g.loop.Release()
}

// Reset clears the board and starts a new game.
func (g *Game) Reset() {
	g.Stop()
	g.resetInternal()
	g.env.Notify(0, false)
	g.Start()
}

// IsGameOver reports whether the stack reached the spawn area.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Next returns the lookahead piece.
func (g *Game) Next() Piece {
	return *g.next
}

func (g *Game) resetInternal() {
	g.board = NewBoard(g.cfg.Cols, g.cfg.Rows)
	g.score = 0
	g.pieces = 0
	g.over = false
	g.updateStep()
	g.spawn()
	g.draw()
}

func (g *Game) updateStep() {
	slow := engine.Millis(g.cfg.StepMs)
	g.acc.SetStep(g.difficulty.Interval(slow, engine.Millis(g.cfg.MinStepMs), g.score, g.pieces))
}

func (g *Game) randPiece() *Piece {
	i := g.rng.Intn(len(shapes))
	return &Piece{M: shapes[i].clone(), Color: i + 1}
}

func (g *Game) spawn() {
	p := g.next
	if p == nil {
		p = g.randPiece()
	}
	g.next = g.randPiece()

	width := len(p.M[0])
	g.cur = &Falling{
		Piece: *p,
		X:     g.cfg.Cols/2 - (width+1)/2,
		Y:     0,
	}
	if g.board.Collides(g.cur.M, g.cur.X, g.cur.Y) {
		g.end()
	}
}

func (g *Game) end() {
	g.over = true
	g.loop.Halt()
	g.env.Notify(g.score, true)
}

func (g *Game) frame(dt time.Duration) bool {
	g.acc.Advance(dt, func() bool {
		if g.over {
			return false
		}
		g.drop()
		return !g.over
	})
	g.draw()
	return !g.over
}

// drop moves the piece down one row, or locks it when blocked.
func (g *Game) drop() {
	if g.cur == nil {
		return
	}
	if !g.board.Collides(g.cur.M, g.cur.X, g.cur.Y+1) {
		g.cur.Y++
		return
	}
	g.board.Merge(*g.cur)
	g.pieces++
	g.clearLines()
	g.spawn()
}

func (g *Game) clearLines() {
	cleared := g.board.ClearLines()
	if cleared > 0 {
		g.score += cleared * g.cfg.LinePoints
		g.env.Notify(g.score, false)
	}
	g.updateStep()
}

func (g *Game) handleInput(ev engine.Event) {
	if ev.Kind != engine.EventKey || g.over || g.cur == nil {
		return
	}
	c := g.cur
	switch ev.Key {
	case engine.KeyLeft:
		if !g.board.Collides(c.M, c.X-1, c.Y) {
			c.X--
		}
	case engine.KeyRight:
		if !g.board.Collides(c.M, c.X+1, c.Y) {
			c.X++
		}
	case engine.KeyDown:
		if !g.board.Collides(c.M, c.X, c.Y+1) {
			c.Y++
		}
	case engine.KeyUp:
		rot := Rotate(c.M)
		if !g.board.Collides(rot, c.X, c.Y) {
			c.M = rot
		}
	case engine.KeySpace:
		for !g.board.Collides(c.M, c.X, c.Y+1) {
			c.Y++
		}
		g.drop()
	}
}
