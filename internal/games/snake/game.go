// Package snake implements grid Snake on a fixed simulation step.
package snake

import (
	"math/rand"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Game implements the Snake engine.
type Game struct {
	env  engine.Env
	cfg  config.SnakeConfig
	rng  *rand.Rand
	loop *engine.Loop
	acc  engine.Accumulator

	cols, rows int

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Queued by input, committed on the next step
	food      Point
	score     int
	gameOver  bool
}

func init() {
	registry.Register(registry.Descriptor{
		ID:          "snake",
		Title:       "Snake",
		Description: "Eat, grow and keep clear of the walls and your own tail.",
		New:         func(env engine.Env) engine.Engine { return New(env) },
	})
}

// New creates a Snake game sized to env's surface and draws its first frame.
func New(env engine.Env) *Game {
	g := &Game{
		env: env,
		cfg: env.Games().Snake,
		rng: env.RNG(),
	}
	g.loop = engine.NewLoop(env, g.frame)
	g.acc.Step = engine.Millis(g.cfg.StepMs)
	g.resetInternal()
	return g
}

// Start subscribes to keys and (re)starts the frame chain.
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

// Reset restarts the game from the initial position.
func (g *Game) Reset() {
	g.Stop()
	g.resetInternal()
	g.env.Notify(0, false)
	g.Start()
}

// IsGameOver reports whether the snake has crashed.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

func (g *Game) resetInternal() {
	g.cols, g.rows = g.grid()
	g.snake = []Point{{X: g.cfg.StartX, Y: g.cfg.StartY}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.gameOver = false
	g.placeFood()
	g.draw()
}

func (g *Game) grid() (int, int) {
	if g.env.Surface == nil || g.cfg.GridSize <= 0 {
		return 0, 0
	}
	return g.env.Surface.Width() / g.cfg.GridSize, g.env.Surface.Height() / g.cfg.GridSize
}

func (g *Game) frame(dt time.Duration) bool {
	g.acc.Advance(dt, func() bool {
		g.update()
		return !g.gameOver
	})
	g.draw()
	return !g.gameOver
}

func (g *Game) handleInput(ev engine.Event) {
	if ev.Kind != engine.EventKey {
		return
	}
	var want Direction
	switch ev.Key {
	case engine.KeyUp:
		want = DirUp
	case engine.KeyDown:
		want = DirDown
	case engine.KeyLeft:
		want = DirLeft
	case engine.KeyRight:
		want = DirRight
	default:
		return
	}
	// Reversal is judged against the committed direction
	if want != g.direction.Opposite() {
		g.nextDir = want
	}
}

// placeFood picks a random free cell. After FoodTries misses the last pick is
// kept even if it lies on the body.
func (g *Game) placeFood() {
	if g.cols <= 0 || g.rows <= 0 {
		return
	}
	tries := 0
	for {
		g.food = Point{X: g.rng.Intn(g.cols), Y: g.rng.Intn(g.rows)}
		tries++
		if tries > g.cfg.FoodTries || !g.occupied(g.food) {
			return
		}
	}
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) update() {
	if g.gameOver {
		return
	}

	g.direction = g.nextDir
	head := g.snake[0]
	switch g.direction {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}

	if head.X < 0 || head.X >= g.cols || head.Y < 0 || head.Y >= g.rows {
		g.endGame()
		return
	}
	if g.occupied(head) {
		g.endGame()
		return
	}

	g.snake = append([]Point{head}, g.snake...)

	if head == g.food {
		g.score += g.cfg.FoodPoints
		g.env.Notify(g.score, false)
		g.placeFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// endGame stops stepping but keeps the key subscription so Reset can restart.
func (g *Game) endGame() {
	g.gameOver = true
	g.loop.Halt()
	g.env.Notify(g.score, true)
}
