package tetris

import (
	"testing"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/engine/enginetest"
)

const step = 500 * time.Millisecond

func newGame(t *testing.T) (*Game, *enginetest.Harness) {
	t.Helper()
	hs := enginetest.New(600, 400, 1)
	g := New(hs.Env())
	g.Start()
	return g, hs
}

func TestSurfaceSizedToBoard(t *testing.T) {
	_, hs := newGame(t)
	if hs.Surface.Width() != 240 || hs.Surface.Height() != 480 {
		t.Errorf("surface = %dx%d, want 240x480", hs.Surface.Width(), hs.Surface.Height())
	}
}

func TestSpawnPosition(t *testing.T) {
	g, _ := newGame(t)
	tests := []struct {
		shape int
		wantX int
	}{
		{0, 3}, // I
		{1, 4}, // O
		{2, 3}, // T
	}
	for _, tt := range tests {
		g.board = NewBoard(10, 20)
		g.next = &Piece{M: shapes[tt.shape].clone(), Color: tt.shape + 1}
		g.spawn()
		if g.cur.X != tt.wantX || g.cur.Y != 0 {
			t.Errorf("shape %d spawned at (%d,%d), want (%d,0)", tt.shape, g.cur.X, g.cur.Y, tt.wantX)
		}
		if g.cur.Color != tt.shape+1 {
			t.Errorf("shape %d color = %d", tt.shape, g.cur.Color)
		}
	}
}

func TestDropEveryStep(t *testing.T) {
	g, hs := newGame(t)
	y := g.cur.Y

	hs.Frame(step - time.Millisecond)
	if g.cur.Y != y {
		t.Errorf("moved before a full step: y = %d", g.cur.Y)
	}
	hs.Frame(time.Millisecond)
	if g.cur.Y != y+1 {
		t.Errorf("y = %d, want %d", g.cur.Y, y+1)
	}
}

func TestHardDropClearsLine(t *testing.T) {
	g, hs := newGame(t)
	for c := 4; c < 10; c++ {
		g.board[19][c] = 7
	}
	g.cur = &Falling{Piece: Piece{M: shapes[0].clone(), Color: 1}, X: 0, Y: 0}

	hs.Press(engine.KeySpace)

	if g.Score() != 100 {
		t.Errorf("score = %d, want 100", g.Score())
	}
	if last, ok := hs.Last(); !ok || last.Score != 100 || last.Over {
		t.Errorf("last report = %+v, %v", last, ok)
	}
	for c, v := range g.board[19] {
		if v != 0 {
			t.Errorf("bottom row col %d = %d after clear, want 0", c, v)
		}
	}
	if g.cur.Y != 0 {
		t.Errorf("new piece y = %d, want 0", g.cur.Y)
	}
}

func TestHardDropLocksAtBottom(t *testing.T) {
	g, hs := newGame(t)
	g.cur = &Falling{Piece: Piece{M: shapes[1].clone(), Color: 2}, X: 4, Y: 0}

	hs.Press(engine.KeySpace)

	for _, cell := range [][2]int{{18, 4}, {18, 5}, {19, 4}, {19, 5}} {
		if g.board[cell[0]][cell[1]] != 2 {
			t.Errorf("board[%d][%d] = %d, want 2", cell[0], cell[1], g.board[cell[0]][cell[1]])
		}
	}
	if len(hs.Reports()) != 0 {
		t.Errorf("no line cleared but got reports %v", hs.Reports())
	}
}

func TestMoveKeys(t *testing.T) {
	g, hs := newGame(t)
	g.cur = &Falling{Piece: Piece{M: shapes[1].clone(), Color: 2}, X: 0, Y: 0}

	hs.Press(engine.KeyLeft)
	if g.cur.X != 0 {
		t.Errorf("moved through the left wall: x = %d", g.cur.X)
	}
	hs.Press(engine.KeyRight)
	hs.Press(engine.KeyDown)
	if g.cur.X != 1 || g.cur.Y != 1 {
		t.Errorf("piece at (%d,%d), want (1,1)", g.cur.X, g.cur.Y)
	}
}

func TestRotateRejectedOnCollision(t *testing.T) {
	g, hs := newGame(t)
	g.cur = &Falling{Piece: Piece{M: shapes[0].clone(), Color: 1}, X: 3, Y: 0}
	g.board[2][3] = 4

	hs.Press(engine.KeyUp)

	if len(g.cur.M) != 1 || len(g.cur.M[0]) != 4 {
		t.Errorf("rotation into a filled cell was accepted: %v", g.cur.M)
	}

	g.board[2][3] = 0
	hs.Press(engine.KeyUp)
	if len(g.cur.M) != 4 {
		t.Errorf("free rotation rejected: %v", g.cur.M)
	}
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g, hs := newGame(t)
	g.board[0][4] = 1
	g.board[1][4] = 1

	g.spawn()

	if !g.IsGameOver() {
		t.Fatal("expected game over on blocked spawn")
	}
	if hs.OverReports() != 1 {
		t.Errorf("over reports = %d, want 1", hs.OverReports())
	}

	x := g.cur.X
	hs.Press(engine.KeyLeft)
	if g.cur.X != x {
		t.Error("input accepted after game over")
	}
	hs.Run(3, step)
	if hs.OverReports() != 1 {
		t.Errorf("over reports = %d after more frames", hs.OverReports())
	}
}

func TestNextBecomesCurrent(t *testing.T) {
	g, _ := newGame(t)
	next := g.Next()
	g.board = NewBoard(10, 20)
	g.spawn()
	if g.cur.Color != next.Color {
		t.Errorf("spawned color %d, want lookahead %d", g.cur.Color, next.Color)
	}
}

func TestResetClearsBoard(t *testing.T) {
	g, hs := newGame(t)
	g.board[19][0] = 3
	g.score = 300

	g.Reset()

	if g.board[19][0] != 0 || g.Score() != 0 || g.IsGameOver() {
		t.Errorf("Reset left state: cell=%d score=%d over=%v", g.board[19][0], g.Score(), g.IsGameOver())
	}
	if last, _ := hs.Last(); last.Score != 0 || last.Over {
		t.Errorf("Reset report = %+v", last)
	}
	if hs.Bus.Listeners() != 1 {
		t.Errorf("listeners = %d after Reset", hs.Bus.Listeners())
	}
}

func TestDifficultyShortensStep(t *testing.T) {
	games := config.DefaultGames()
	games.Tetris.Difficulty.Enabled = true
	games.Tetris.Difficulty.Progression = config.ProgressionConfig{Type: "score", MaxAt: 1000}

	hs := enginetest.New(600, 400, 1)
	hs.Tuning = &games
	g := New(hs.Env())

	if g.acc.Step != 500*time.Millisecond {
		t.Errorf("initial step = %v, want 500ms", g.acc.Step)
	}
	g.score = 500
	g.updateStep()
	if g.acc.Step != 300*time.Millisecond {
		t.Errorf("step at score 500 = %v, want 300ms", g.acc.Step)
	}
}
