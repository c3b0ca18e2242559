// Package flappy implements Flappy Bird with variable-step physics.
package flappy

import (
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

// Bird is the player: a circle at a fixed x.
type Bird struct {
	X, Y float64
	VY   float64 // px/s, negative is up
	R    float64
}

// Game implements the Flappy Bird engine.
type Game struct {
	env   engine.Env
	cfg   config.FlappyConfig
	loop  *engine.Loop
	pipes *PipeManager

	bird  Bird
	score int
	over  bool
}

func init() {
	registry.Register(registry.Descriptor{
		ID:          "flappy-bird",
		Title:       "Flappy Bird",
		Description: "Flap through the gaps between endless pipes.",
		New:         func(env engine.Env) engine.Engine { return New(env) },
	})
}

// New creates a Flappy Bird game. The surface is resized to the play area.
func New(env engine.Env) *Game {
	cfg := env.Games().Flappy
	if env.Surface == nil {
		env.Surface = core.NewSurface(0, 0)
	}
	env.Surface.SetSize(cfg.Width, cfg.Height)

	g := &Game{
		env:   env,
		cfg:   cfg,
		pipes: NewPipeManager(env.RNG(), cfg.Pipes, float64(cfg.Width), float64(cfg.Height)),
	}
	g.loop = engine.NewLoop(env, g.frame)
	g.resetInternal()
	return g
}

// Start subscribes to keys and pointer presses and (re)starts the frame chain.
func (g *Game) Start() {
	if g.loop.Listening() == 0 {
		g.loop.Listen(g.handleKey)
		g.loop.Listen(g.handlePointer)
	}
	g.loop.Run()
}

// Stop cancels the pending frame and drops both subscriptions.
func (g *Game) Stop() {
	g.loop.Release()
}

// Reset puts the bird back in the middle and clears the pipes.
func (g *Game) Reset() {
	g.Stop()
	g.resetInternal()
	g.env.Notify(0, false)
	g.Start()
}

// IsGameOver reports whether the bird has crashed.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Score returns the number of pipes passed.
func (g *Game) Score() int {
	return g.score
}

func (g *Game) resetInternal() {
	g.bird = Bird{
		X: g.cfg.Bird.X,
		Y: float64(g.cfg.Height) / 2,
		R: g.cfg.Bird.Radius,
	}
	g.pipes.Reset()
	g.score = 0
	g.over = false
	g.draw()
}

func (g *Game) handleKey(ev engine.Event) {
	if ev.Kind == engine.EventKey && (ev.Key == engine.KeySpace || ev.Key == engine.KeyUp) {
		g.flap()
	}
}

func (g *Game) handlePointer(ev engine.Event) {
	if ev.Kind == engine.EventPointerDown && ev.Button == engine.ButtonLeft {
		g.flap()
	}
}

func (g *Game) flap() {
	if !g.over {
		g.bird.VY = g.cfg.Physics.JumpVelocity
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

	b := &g.bird
	b.VY += g.cfg.Physics.Gravity * dt
	b.Y += b.VY * dt

	g.pipes.Update(dt)

	w, gap := g.cfg.Pipes.Width, g.cfg.Pipes.Gap
	pipes := g.pipes.Pipes()
	for i := range pipes {
		p := &pipes[i]
		if !p.Passed && p.X+w < b.X-b.R {
			p.Passed = true
			g.score++
			g.env.Notify(g.score, false)
		}

		withinX := b.X+b.R > p.X && b.X-b.R < p.X+w
		if withinX && (b.Y-b.R < p.GapY || b.Y+b.R > p.GapY+gap) {
			g.end()
			return
		}
	}

	if b.Y+b.R > float64(g.cfg.Height) || b.Y-b.R < 0 {
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
	h := float64(g.cfg.Height)
	w, gap := g.cfg.Pipes.Width, g.cfg.Pipes.Gap

	ctx.Clear(core.ColorNavy)
	for _, p := range g.pipes.Pipes() {
		ctx.FillRect(p.X, 0, w, p.GapY, core.ColorGreen)
		ctx.FillRect(p.X, p.GapY+gap, w, h-(p.GapY+gap), core.ColorGreen)
	}
	ctx.FillCircle(g.bird.X, g.bird.Y, g.bird.R, core.ColorBrightYellow)
}

// Redraw paints the current state without advancing it.
func (g *Game) Redraw() { g.draw() }
