package tui

import (
	"math"
	"math/rand"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
)

// Default surface size handed to engines that do not pick their own.
const (
	DefaultSurfaceW = 600
	DefaultSurfaceH = 400
)

// Rows reserved above and below the canvas.
const (
	hudRows    = 2
	footerRows = 2
)

// stage owns what engines draw on and listen to.
type stage struct {
	screen *core.Screen
	canvas *core.Canvas
	frames *engine.FrameLoop
	bus    *engine.Bus
	rng    *rand.Rand
	tuning *config.Games
}

func newStage(seed int64, tuning *config.Games) *stage {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	screen := core.NewScreen(1, 1)
	return &stage{
		screen: screen,
		canvas: core.NewCanvas(screen, screen.Bounds(), core.NewSurface(DefaultSurfaceW, DefaultSurfaceH)),
		frames: engine.NewFrameLoop(time.Now),
		bus:    engine.NewBus(),
		rng:    rand.New(rand.NewSource(seed)),
		tuning: tuning,
	}
}

// env is the host's EnvFactory. Each mount gets a fresh surface.
func (s *stage) env(onScore engine.ScoreFunc) engine.Env {
	surface := core.NewSurface(DefaultSurfaceW, DefaultSurfaceH)
	s.canvas = core.NewCanvas(s.screen, s.screen.Bounds(), surface)
	return engine.Env{
		Surface: surface,
		Ctx:     s.canvas,
		OnScore: onScore,
		Frames:  s.frames,
		Input:   s.bus,
		Rand:    s.rng,
		Tuning:  s.tuning,
	}
}

// layout sizes the screen for a terminal of termW×termH, leaving reserveW
// columns free on the right.
func (s *stage) layout(termW, termH, reserveW int) {
	surface := s.canvas.Surface()
	cols, rows := fitCanvas(termW-reserveW, termH-hudRows-footerRows, surface.Width(), surface.Height())
	s.screen.Resize(cols, rows)
	s.canvas.SetRegion(s.screen.Bounds())
}

// fitCanvas returns the largest cols×rows area inside availW×availH that keeps
// the surface's aspect ratio. Terminal cells are about twice as tall as wide.
func fitCanvas(availW, availH, surfW, surfH int) (cols, rows int) {
	availW, availH = max(availW, 1), max(availH, 1)
	if surfW <= 0 || surfH <= 0 {
		return availW, availH
	}
	aspect := float64(surfW) / float64(surfH)
	rows = availH
	cols = int(math.Round(2 * float64(rows) * aspect))
	if cols > availW {
		cols = availW
		rows = int(math.Round(float64(cols) / (2 * aspect)))
	}
	return max(cols, 1), max(rows, 1)
}
