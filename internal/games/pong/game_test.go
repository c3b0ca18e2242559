package pong

import (
	"math"
	"testing"
	"time"

	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/engine/enginetest"
)

func newGame(t *testing.T) (*Game, *enginetest.Harness) {
	t.Helper()
	hs := enginetest.New(600, 400, 21)
	g := New(hs.Env())
	g.Start()
	return g, hs
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInitialState(t *testing.T) {
	g, hs := newGame(t)
	if g.paddle != (core.Box{X: 270, Y: 380, W: 60, H: 12}) {
		t.Errorf("paddle = %+v", g.paddle)
	}
	b := g.ball
	if b.X != 300 || b.Y != 200 || b.R != 8 || b.VY != -220 || math.Abs(b.VX) != 180 {
		t.Errorf("ball = %+v", b)
	}
	if hs.Bus.Listeners() != 2 {
		t.Errorf("listeners = %d, want 2", hs.Bus.Listeners())
	}
}

func TestPointerMovesPaddle(t *testing.T) {
	g, hs := newGame(t)
	tests := []struct {
		x, want float64
	}{
		{100, 70},
		{10, 0},
		{599, 540},
	}
	for _, tt := range tests {
		hs.Move(tt.x, 50)
		if g.paddle.X != tt.want {
			t.Errorf("pointer x=%v: paddle x = %v, want %v", tt.x, g.paddle.X, tt.want)
		}
	}
}

func TestKeysMovePaddle(t *testing.T) {
	g, hs := newGame(t)
	hs.Press(engine.KeyLeft)
	if g.paddle.X != 240 {
		t.Errorf("paddle x = %v, want 240", g.paddle.X)
	}
	for range 30 {
		hs.Press(engine.KeyRight)
	}
	if g.paddle.X != 540 {
		t.Errorf("paddle x = %v, want 540", g.paddle.X)
	}
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		wantX  float64
		wantY  float64
		wantVX float64
		wantVY float64
	}{
		{"left", Ball{X: 9, Y: 200, VX: -100, VY: 0, R: 8}, 8, 200, 100, 0},
		{"right", Ball{X: 591, Y: 200, VX: 100, VY: 0, R: 8}, 592, 200, -100, 0},
		{"top", Ball{X: 300, Y: 9, VX: 0, VY: -100, R: 8}, 300, 8, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newGame(t)
			g.ball = tt.ball
			g.update(0.1)
			b := g.ball
			if !near(b.X, tt.wantX) || !near(b.Y, tt.wantY) || b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("ball = %+v", b)
			}
		})
	}
}

func TestPaddleReturn(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		wantVX float64
	}{
		{"center", 300, 0},
		{"right edge", 330, 220},
		{"left edge", 270, -220},
		{"half right", 315, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, hs := newGame(t)
			g.ball = Ball{X: tt.x, Y: 373, VX: 0, VY: 100, R: 8}
			g.update(0.01)

			b := g.ball
			if b.VY != -100 || !near(b.Y, 372) {
				t.Errorf("ball after return = %+v", b)
			}
			if !near(b.VX, tt.wantVX) {
				t.Errorf("vx = %v, want %v", b.VX, tt.wantVX)
			}
			if math.Abs(b.VX) > 220+1e-9 {
				t.Errorf("|vx| = %v exceeds rebound speed", math.Abs(b.VX))
			}
			if g.Score() != 1 || len(hs.Reports()) != 1 {
				t.Errorf("score = %d reports = %v", g.Score(), hs.Reports())
			}
		})
	}
}

func TestNoReturnWhileRising(t *testing.T) {
	g, _ := newGame(t)
	g.ball = Ball{X: 300, Y: 375, VX: 0, VY: -100, R: 8}
	g.update(0.001)
	if g.Score() != 0 {
		t.Error("rising ball counted as a return")
	}
}

func TestMissEndsGame(t *testing.T) {
	g, hs := newGame(t)
	g.ball = Ball{X: 50, Y: 407, VX: 0, VY: 100, R: 8}

	hs.Frame(20 * time.Millisecond)

	if !g.IsGameOver() {
		t.Fatal("expected game over on a miss")
	}
	if hs.OverReports() != 1 {
		t.Errorf("over reports = %d", hs.OverReports())
	}
	y := g.ball.Y
	hs.Run(3, 20*time.Millisecond)
	if g.ball.Y != y {
		t.Error("ball moved after game over")
	}
}

func TestStopAndReset(t *testing.T) {
	g, hs := newGame(t)
	g.Stop()
	if hs.Bus.Listeners() != 0 || hs.Frames.Pending() != 0 {
		t.Errorf("after Stop: listeners=%d pending=%d", hs.Bus.Listeners(), hs.Frames.Pending())
	}
	hs.Move(100, 0)
	if g.paddle.X != 270 {
		t.Error("pointer handled after Stop")
	}

	g.ball.Y = 500
	g.over = true
	g.Reset()
	if g.IsGameOver() || g.ball.Y != 200 || g.Score() != 0 {
		t.Errorf("after Reset: over=%v ball=%+v", g.IsGameOver(), g.ball)
	}
	if hs.Frames.Pending() != 1 {
		t.Errorf("pending = %d after Reset", hs.Frames.Pending())
	}
}
