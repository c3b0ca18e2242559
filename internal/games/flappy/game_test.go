package flappy

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/engine/enginetest"
)

func newGame(t *testing.T) (*Game, *enginetest.Harness) {
	t.Helper()
	hs := enginetest.New(300, 300, 3)
	g := New(hs.Env())
	g.Start()
	return g, hs
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInitialState(t *testing.T) {
	g, hs := newGame(t)
	if hs.Surface.Width() != 600 || hs.Surface.Height() != 400 {
		t.Errorf("surface = %dx%d, want 600x400", hs.Surface.Width(), hs.Surface.Height())
	}
	if g.bird.X != 100 || g.bird.Y != 200 || g.bird.R != 12 || g.bird.VY != 0 {
		t.Errorf("bird = %+v", g.bird)
	}
	if hs.Bus.Listeners() != 2 {
		t.Errorf("listeners = %d, want key and pointer", hs.Bus.Listeners())
	}
}

func TestGravity(t *testing.T) {
	g, hs := newGame(t)
	hs.Frame(100 * time.Millisecond)

	if !near(g.bird.VY, 90) || !near(g.bird.Y, 209) {
		t.Errorf("bird after 0.1s = %+v, want vy=90 y=209", g.bird)
	}
}

func TestFlapInputs(t *testing.T) {
	tests := []struct {
		name string
		send func(hs *enginetest.Harness)
		want float64
	}{
		{"space", func(hs *enginetest.Harness) { hs.Press(engine.KeySpace) }, -300},
		{"up", func(hs *enginetest.Harness) { hs.Press(engine.KeyUp) }, -300},
		{"left click", func(hs *enginetest.Harness) { hs.Click(10, 10, engine.ButtonLeft) }, -300},
		{"right click", func(hs *enginetest.Harness) { hs.Click(10, 10, engine.ButtonRight) }, 0},
		{"other key", func(hs *enginetest.Harness) { hs.Press(engine.KeyLeft) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, hs := newGame(t)
			tt.send(hs)
			if g.bird.VY != tt.want {
				t.Errorf("vy = %v, want %v", g.bird.VY, tt.want)
			}
		})
	}
}

func TestPassingPipeScoresOnce(t *testing.T) {
	g, hs := newGame(t)
	g.pipes.pipes = []Pipe{{X: 20, GapY: 100}}

	g.update(0.001)
	g.update(0.001)

	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if !g.pipes.Pipes()[0].Passed {
		t.Error("pipe should be marked passed")
	}
	if len(hs.Reports()) != 1 || hs.Reports()[0] != (enginetest.Report{Score: 1}) {
		t.Errorf("reports = %v", hs.Reports())
	}
}

func TestPipeCollisionEndsGame(t *testing.T) {
	g, hs := newGame(t)
	g.pipes.pipes = []Pipe{{X: 90, GapY: 250}}

	g.update(0.001)

	if !g.IsGameOver() {
		t.Fatal("expected game over inside the pipe")
	}
	if hs.OverReports() != 1 {
		t.Errorf("over reports = %d", hs.OverReports())
	}
}

func TestSafeInsideGap(t *testing.T) {
	g, _ := newGame(t)
	g.pipes.pipes = []Pipe{{X: 90, GapY: 120}}

	g.update(0.001)

	if g.IsGameOver() {
		t.Error("bird inside the gap should survive")
	}
}

func TestBoundsEndGame(t *testing.T) {
	tests := []struct {
		name string
		y    float64
	}{
		{"ceiling", 5},
		{"ground", 395},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, hs := newGame(t)
			g.bird.Y = tt.y
			hs.Frame(time.Millisecond)

			if !g.IsGameOver() {
				t.Fatal("expected game over")
			}
			if hs.Frames.Pending() != 0 {
				t.Error("frame still scheduled")
			}
			hs.Press(engine.KeySpace)
			if g.bird.VY == -300 {
				t.Error("flap accepted after game over")
			}
		})
	}
}

func TestFallingEventuallyEnds(t *testing.T) {
	g, hs := newGame(t)
	hs.Run(10, 100*time.Millisecond)
	if !g.IsGameOver() {
		t.Error("bird should hit the ground without flapping")
	}
	if hs.OverReports() != 1 {
		t.Errorf("over reports = %d, want 1", hs.OverReports())
	}
}

func TestPipeSpawnAndDespawn(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Pipes
	pm := NewPipeManager(rand.New(rand.NewSource(9)), cfg, 600, 400)

	pm.Update(1.3)
	if len(pm.Pipes()) != 0 {
		t.Fatalf("spawned before the interval: %v", pm.Pipes())
	}
	pm.Update(0.1)
	if len(pm.Pipes()) != 1 {
		t.Fatalf("pipes = %d after 1.4s, want 1", len(pm.Pipes()))
	}
	p := pm.Pipes()[0]
	if !near(p.X, 600-150*0.1) {
		t.Errorf("pipe x = %v, want 585", p.X)
	}
	if p.GapY < 50 || p.GapY > 400-150-50 {
		t.Errorf("gap top %v outside [50, 200]", p.GapY)
	}

	pm.pipes = []Pipe{{X: -70}, {X: 100}}
	pm.Update(0.01)
	if len(pm.Pipes()) != 1 || !near(pm.Pipes()[0].X, 98.5) {
		t.Errorf("pipes after despawn = %v", pm.Pipes())
	}
}

func TestStopAndReset(t *testing.T) {
	g, hs := newGame(t)
	g.Stop()
	if hs.Bus.Listeners() != 0 || hs.Frames.Pending() != 0 {
		t.Errorf("after Stop: listeners=%d pending=%d", hs.Bus.Listeners(), hs.Frames.Pending())
	}

	g.bird.Y = 5
	g.score = 4
	g.Reset()
	if g.bird.Y != 200 || g.Score() != 0 || len(g.pipes.Pipes()) != 0 {
		t.Errorf("after Reset: bird=%+v score=%d", g.bird, g.Score())
	}
	if hs.Bus.Listeners() != 2 || hs.Frames.Pending() != 1 {
		t.Errorf("after Reset: listeners=%d pending=%d", hs.Bus.Listeners(), hs.Frames.Pending())
	}
}
