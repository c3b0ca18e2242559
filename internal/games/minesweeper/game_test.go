package minesweeper

import (
	"testing"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/engine/enginetest"
)

func newGame(t *testing.T, seed int64) (*Game, *enginetest.Harness) {
	t.Helper()
	hs := enginetest.New(600, 400, seed)
	g := New(hs.Env())
	g.Start()
	return g, hs
}

// clickCell sends a pointer press at the center of (row, col).
func clickCell(hs *enginetest.Harness, row, col int, b engine.Button) {
	hs.Click(float64(col)*32+16, float64(row)*32+16, b)
}

func TestSurfaceSizedToGrid(t *testing.T) {
	_, hs := newGame(t, 1)
	if hs.Surface.Width() != 384 || hs.Surface.Height() != 320 {
		t.Errorf("surface = %dx%d, want 384x320", hs.Surface.Width(), hs.Surface.Height())
	}
}

func TestFirstClickIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, hs := newGame(t, seed)
		clickCell(hs, 5, 6, engine.ButtonLeft)

		if g.over {
			t.Fatalf("seed %d: first click hit a mine", seed)
		}
		if g.grid.Mines() != 18 {
			t.Fatalf("seed %d: mines = %d, want 18", seed, g.grid.Mines())
		}
		if !g.grid[5][6].Open {
			t.Fatalf("seed %d: clicked cell not open", seed)
		}
		// The clicked cell has no adjacent mines, so the flood ran
		if g.grid[5][6].Count != 0 {
			t.Fatalf("seed %d: clicked cell count = %d, want 0", seed, g.grid[5][6].Count)
		}
		for r, row := range g.grid {
			for c, cell := range row {
				if !cell.Open || cell.Count != 0 {
					continue
				}
				for _, n := range g.grid.neighbors(Pos{r, c}) {
					if !g.grid[n.Row][n.Col].Open {
						t.Fatalf("seed %d: zero cell (%d,%d) left neighbor %+v closed", seed, r, c, n)
					}
				}
			}
		}
		if g.Score() != g.grid.OpenedSafe()*10 {
			t.Errorf("seed %d: score = %d, opened = %d", seed, g.Score(), g.grid.OpenedSafe())
		}
	}
}

func TestScoreReportedPerCell(t *testing.T) {
	g, hs := newGame(t, 4)
	clickCell(hs, 0, 0, engine.ButtonLeft)

	reports := hs.Reports()
	if len(reports) != g.grid.OpenedSafe() {
		t.Fatalf("reports = %d, opened = %d", len(reports), g.grid.OpenedSafe())
	}
	for i, r := range reports {
		if r.Score != (i+1)*10 {
			t.Errorf("report %d = %+v, want score %d", i, r, (i+1)*10)
		}
	}
}

func TestHittingMineEndsGame(t *testing.T) {
	g, hs := newGame(t, 1)
	g.firstClick = false
	g.grid[2][3].Mine = true
	g.grid[7][7].Mine = true
	g.score = 30

	clickCell(hs, 2, 3, engine.ButtonLeft)

	if !g.IsGameOver() || g.Won() {
		t.Fatalf("over=%v won=%v", g.IsGameOver(), g.Won())
	}
	if !g.grid[7][7].Open {
		t.Error("other mines should be revealed")
	}
	if last, _ := hs.Last(); last != (enginetest.Report{Score: 30, Over: true}) {
		t.Errorf("last report = %+v", last)
	}

	clickCell(hs, 0, 0, engine.ButtonLeft)
	clickCell(hs, 0, 0, engine.ButtonRight)
	if g.grid[0][0].Open || g.grid[0][0].Flag {
		t.Error("input accepted after game over")
	}
	if hs.OverReports() != 1 {
		t.Errorf("over reports = %d", hs.OverReports())
	}
}

func TestFlagBlocksOpen(t *testing.T) {
	g, hs := newGame(t, 2)
	clickCell(hs, 3, 3, engine.ButtonRight)
	if !g.grid[3][3].Flag {
		t.Fatal("right click should flag")
	}

	clickCell(hs, 3, 3, engine.ButtonLeft)
	if g.grid[3][3].Open {
		t.Error("flagged cell opened")
	}
	if g.firstClick {
		t.Error("mines should be placed on the first left click even when flagged")
	}

	clickCell(hs, 3, 3, engine.ButtonRight)
	if g.grid[3][3].Flag {
		t.Error("second right click should clear the flag")
	}
}

func TestFlagIgnoredOnOpenCell(t *testing.T) {
	g, hs := newGame(t, 2)
	clickCell(hs, 5, 5, engine.ButtonLeft)
	clickCell(hs, 5, 5, engine.ButtonRight)
	if g.grid[5][5].Flag {
		t.Error("open cell was flagged")
	}
}

func TestWinOpensAllSafeCells(t *testing.T) {
	games := config.DefaultGames()
	games.Minesweeper = config.MinesweeperConfig{Cols: 4, Rows: 1, CellSize: 32, Mines: 1, OpenPoints: 10}

	hs := enginetest.New(600, 400, 5)
	hs.Tuning = &games
	g := New(hs.Env())
	g.Start()

	clickCell(hs, 0, 0, engine.ButtonLeft)
	for c := range 4 {
		if !g.grid[0][c].Mine && !g.grid[0][c].Open {
			clickCell(hs, 0, c, engine.ButtonLeft)
		}
	}

	if !g.Won() || !g.IsGameOver() {
		t.Fatalf("won=%v over=%v", g.Won(), g.IsGameOver())
	}
	if g.Score() != 30 {
		t.Errorf("score = %d, want 30", g.Score())
	}
	if hs.OverReports() != 1 {
		t.Errorf("over reports = %d, want 1", hs.OverReports())
	}
}

func TestSafeBlockCoveringBoardWins(t *testing.T) {
	games := config.DefaultGames()
	games.Minesweeper = config.MinesweeperConfig{Cols: 3, Rows: 3, CellSize: 32, Mines: 5, OpenPoints: 10}

	hs := enginetest.New(600, 400, 5)
	hs.Tuning = &games
	g := New(hs.Env())
	g.Start()

	// The 3x3 safe block covers the whole board, so no mines are placed
	clickCell(hs, 0, 0, engine.ButtonLeft)
	if !g.Won() {
		t.Error("clearing every cell should win")
	}
}

func TestKeyboardCursor(t *testing.T) {
	g, hs := newGame(t, 6)
	start := g.cursor

	hs.Press(engine.KeyUp)
	hs.Press(engine.KeyLeft)
	if g.cursor != (Pos{start.Row - 1, start.Col - 1}) {
		t.Errorf("cursor = %+v", g.cursor)
	}

	hs.Press(engine.KeyFlag)
	if !g.grid[g.cursor.Row][g.cursor.Col].Flag {
		t.Error("f should flag the cursor cell")
	}
	hs.Press(engine.KeyFlag)
	hs.Press(engine.KeyEnter)
	if !g.grid[g.cursor.Row][g.cursor.Col].Open {
		t.Error("enter should open the cursor cell")
	}

	for range 20 {
		hs.Press(engine.KeyUp)
	}
	if g.cursor.Row != 0 {
		t.Errorf("cursor row = %d, want clamped to 0", g.cursor.Row)
	}
}

func TestClickOutsideGridIgnored(t *testing.T) {
	g, hs := newGame(t, 1)
	hs.Click(500, 10, engine.ButtonLeft)
	hs.Click(-5, 10, engine.ButtonLeft)
	if !g.firstClick {
		t.Error("click outside the grid placed mines")
	}
}

func TestStopAndReset(t *testing.T) {
	g, hs := newGame(t, 1)
	if hs.Frames.Pending() != 0 {
		t.Errorf("minesweeper should not schedule frames")
	}
	clickCell(hs, 5, 5, engine.ButtonLeft)

	g.Stop()
	if hs.Bus.Listeners() != 0 {
		t.Errorf("listeners = %d after Stop", hs.Bus.Listeners())
	}
	clickCell(hs, 0, 0, engine.ButtonRight)
	if g.grid[0][0].Flag {
		t.Error("input handled after Stop")
	}

	g.Reset()
	if !g.firstClick || g.Score() != 0 || g.grid.OpenedSafe() != 0 {
		t.Errorf("after Reset: first=%v score=%d", g.firstClick, g.Score())
	}
	if hs.Bus.Listeners() != 2 {
		t.Errorf("listeners = %d after Reset", hs.Bus.Listeners())
	}
}
