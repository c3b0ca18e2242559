// Package pong implements single-player Pong against the three walls.
package pong

import (
	"math/rand"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

// Ball is a circle with velocity in px/s.
type Ball struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

// Game implements the Pong engine.
type Game struct {
	env  engine.Env
	cfg  config.PongConfig
	rng  *rand.Rand
	loop *engine.Loop

	paddle core.Box
	ball   Ball
	score  int
	over   bool
}

func init() {
	registry.Register(registry.Descriptor{
		ID:          "pong",
		Title:       "Pong",
		Description: "Keep the ball in play with your paddle.",
		New:         func(env engine.Env) engine.Engine { return New(env) },
	})
}

// New creates a Pong game. The surface is resized to the court.
func New(env engine.Env) *Game {
	cfg := env.Games().Pong
	if env.Surface == nil {
		env.Surface = core.NewSurface(0, 0)
	}
	env.Surface.SetSize(int(cfg.Width), int(cfg.Height))

	g := &Game{
		env: env,
		cfg: cfg,
		rng: env.RNG(),
	}
	g.loop = engine.NewLoop(env, g.frame)
	g.resetInternal()
	return g
}

// Start subscribes to pointer motion and keys and (re)starts the frame chain.
func (g *Game) Start() {
	if g.loop.Listening() == 0 {
		g.loop.Listen(g.handlePointer)
		g.loop.Listen(g.handleKey)
	}
	g.loop.Run()
}

// Stop cancels the pending frame and drops both subscriptions.
func (g *Game) Stop() {
	g.loop.Release()
}

// Reset serves a new ball from the center.
func (g *Game) Reset() {
	g.Stop()
	g.resetInternal()
	g.env.Notify(0, false)
	g.Start()
}

// IsGameOver reports whether the ball got past the paddle.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Score returns the number of returns.
func (g *Game) Score() int {
	return g.score
}

func (g *Game) resetInternal() {
	w, h := g.cfg.Width, g.cfg.Height
	pc := g.cfg.Paddle
	g.paddle = core.Box{X: w/2 - pc.Width/2, Y: h - pc.Offset, W: pc.Width, H: pc.Height}

	dir := -1.0
	if g.rng.Float64() > 0.5 {
		dir = 1
	}
	bc := g.cfg.Ball
	g.ball = Ball{X: w / 2, Y: h / 2, VX: bc.SpeedX * dir, VY: bc.SpeedY, R: bc.Radius}

	g.score = 0
	g.over = false
	g.draw()
}

// movePaddle centers the paddle on x, kept inside the court.
func (g *Game) movePaddle(x float64) {
	g.paddle.X = core.ClampF(x-g.paddle.W/2, 0, g.cfg.Width-g.paddle.W)
}

func (g *Game) handlePointer(ev engine.Event) {
	if ev.Kind == engine.EventPointerMove {
		g.movePaddle(ev.X)
	}
}

func (g *Game) handleKey(ev engine.Event) {
	if ev.Kind != engine.EventKey {
		return
	}
	center := g.paddle.X + g.paddle.W/2
	switch ev.Key {
	case engine.KeyLeft:
		g.movePaddle(center - g.cfg.Paddle.KeyStep)
	case engine.KeyRight:
		g.movePaddle(center + g.cfg.Paddle.KeyStep)
	}
}

func (g *Game) frame(dt time.Duration) bool {
	g.update(dt.Seconds())
	g.draw()
	return !g.over
}

func (g *Game) update(dt float64) {
	if g.over {
		return
	}
	w, h := g.cfg.Width, g.cfg.Height
	b := &g.ball
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.X-b.R < 0 {
		b.X = b.R
		b.VX = -b.VX
	}
	if b.X+b.R > w {
		b.X = w - b.R
		b.VX = -b.VX
	}
	if b.Y-b.R < 0 {
		b.Y = b.R
		b.VY = -b.VY
	}

	p := g.paddle
	hits := b.Y+b.R >= p.Y && b.Y+b.R <= p.Bottom() &&
		b.X >= p.X && b.X <= p.Right() &&
		b.VY > 0
	if hits {
		b.Y = p.Y - b.R
		b.VY = -b.VY
		// -1 at the left edge, +1 at the right edge
		offset := (b.X - (p.X + p.W/2)) / (p.W / 2)
		b.VX = g.cfg.Ball.ReboundSpeed * offset
		g.score++
		g.env.Notify(g.score, false)
	}

	if b.Y-b.R > h {
		g.end()
	}
}

func (g *Game) end() {
	g.over = true
	g.loop.Halt()
	g.env.Notify(g.score, true)
}

func (g *Game) draw() {
	ctx := g.env.Ctx
	if ctx == nil {
		return
	}
	ctx.Clear(core.ColorNavy)
	ctx.FillRect(g.paddle.X, g.paddle.Y, g.paddle.W, g.paddle.H, core.ColorBrightCyan)
	ctx.FillCircle(g.ball.X, g.ball.Y, g.ball.R, core.ColorBrightWhite)
}

// Redraw paints the current state without advancing it.
func (g *Game) Redraw() { g.draw() }
