// Package crossroad implements Cross The Road: hop across lanes of wrapping
// traffic, scoring on every crossing.
package crossroad

import (
	"math"
	"math/rand"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

// Car is a vehicle box moving at Speed px/s; the sign is the direction.
type Car struct {
	core.Box
	Speed float64
}

// Game implements the Cross The Road engine.
type Game struct {
	env  engine.Env
	cfg  config.CrossConfig
	rng  *rand.Rand
	loop *engine.Loop

	player core.Box
	cars   []Car
	score  int
	over   bool
}

func init() {
	registry.Register(registry.Descriptor{
		ID:          "cross-the-road",
		Title:       "Cross The Road",
		Description: "Dodge the traffic and reach the far side, again and again.",
		New:         func(env engine.Env) engine.Engine { return New(env) },
	})
}

// New creates a Cross The Road game on env's surface.
func New(env engine.Env) *Game {
	g := &Game{
		env: env,
		cfg: env.Games().Cross,
		rng: env.RNG(),
	}
	g.loop = engine.NewLoop(env, g.frame)
	g.resetInternal()
	return g
}

// Start subscribes to keys and (re)starts the frame chain.
func (g *Game) Start() {
	if g.loop.Listening() == 0 {
		g.loop.Listen(g.handleKey)
	}
	g.loop.Run()
}

// Stop cancels the pending frame and drops the key subscription.
func (g *Game) Stop() {
	g.loop.Release()
}

// Reset returns the player to the start and rebuilds traffic.
func (g *Game) Reset() {
	g.Stop()
	g.resetInternal()
	g.env.Notify(0, false)
	g.Start()
}

// IsGameOver reports whether the player was hit.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Score returns ten points per crossing.
func (g *Game) Score() int {
	return g.score
}

func (g *Game) size() (float64, float64) {
	if g.env.Surface == nil {
		return 0, 0
	}
	return float64(g.env.Surface.Width()), float64(g.env.Surface.Height())
}

// startY is the player's row in the bottom safe zone.
func (g *Game) startY() float64 {
	_, h := g.size()
	return h - g.cfg.Player.BottomOffset
}

func (g *Game) resetInternal() {
	w, _ := g.size()
	size := g.cfg.Player.Size
	g.player = core.Box{
		X: math.Floor(w/2 - size/2),
		Y: g.startY(),
		W: size,
		H: size,
	}

	g.cars = g.cars[:0]
	cars := g.cfg.Cars
	for i := 1; i <= g.cfg.Lanes-1; i++ {
		y := float64(i)*g.cfg.LaneHeight + (g.cfg.LaneHeight-cars.Height)/2
		dir := -1.0
		if i%2 == 0 {
			dir = 1
		}
		speed := cars.BaseSpeed + float64(i)*cars.SpeedPerLane
		count := 3 + i%2
		for range count {
			x := g.rng.Float64()*(w+2*cars.SpawnSpread) - cars.SpawnSpread
			g.cars = append(g.cars, Car{
				Box:   core.Box{X: x, Y: y, W: cars.Width, H: cars.Height},
				Speed: dir * speed,
			})
		}
	}

	g.score = 0
	g.over = false
	g.draw()
}

func (g *Game) handleKey(ev engine.Event) {
	if ev.Kind != engine.EventKey || g.over {
		return
	}
	w, _ := g.size()
	p := &g.player

	switch ev.Key {
	case engine.KeyUp:
		p.Y -= g.cfg.LaneHeight
		if p.Y < 0 {
			// Reached the far side: score and go again
			p.Y = g.startY()
			g.score += g.cfg.CrossPoints
			g.env.Notify(g.score, false)
		}
	case engine.KeyDown:
		p.Y = math.Min(g.startY(), p.Y+g.cfg.LaneHeight)
	case engine.KeyLeft:
		p.X = math.Max(g.cfg.SidePadding, p.X-g.cfg.HorizontalStep)
	case engine.KeyRight:
		p.X = math.Min(w-p.W-g.cfg.SidePadding, p.X+g.cfg.HorizontalStep)
	}
}

func (g *Game) frame(dt time.Duration) bool {
	g.update(dt.Seconds())
	g.draw()
	return !g.over
}

// InTraffic reports whether the player is within the lanes that carry cars.
func (g *Game) InTraffic() bool {
	y := g.player.Y
	return y >= g.cfg.LaneHeight-g.player.H && y <= float64(g.cfg.Lanes-1)*g.cfg.LaneHeight
}

func (g *Game) update(dt float64) {
	if g.over {
		return
	}
	w, _ := g.size()
	margin := g.cfg.Cars.WrapMargin

	for i := range g.cars {
		c := &g.cars[i]
		c.X += c.Speed * dt
		if c.Speed > 0 && c.X > w+margin {
			c.X = -margin
		}
		if c.Speed < 0 && c.X < -margin {
			c.X = w + margin
		}
	}

	if !g.InTraffic() {
		return
	}
	for _, c := range g.cars {
		if g.player.Overlaps(c.Box) {
			g.end()
			return
		}
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
	w, _ := g.size()
	lane := g.cfg.LaneHeight
	last := float64(g.cfg.Lanes - 1)

	ctx.Clear(core.ColorNavy)
	ctx.FillRect(0, 0, w, lane, core.ColorGreen)
	ctx.FillRect(0, last*lane, w, lane, core.ColorGreen)
	for i := 1; i < g.cfg.Lanes-1; i++ {
		ctx.FillRect(0, float64(i)*lane, w, lane, core.ColorGray)
	}

	for _, c := range g.cars {
		col := core.ColorBrightRed
		if c.Speed > 0 {
			col = core.ColorBrightYellow
		}
		ctx.FillRect(c.X, c.Y, c.W, c.H, col)
	}
	ctx.FillRect(g.player.X, g.player.Y, g.player.W, g.player.H, core.ColorBrightCyan)
}

// Redraw paints the current state without advancing it.
func (g *Game) Redraw() { g.draw() }
