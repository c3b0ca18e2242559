package minesweeper

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestPlaceMinesAvoidsSafeBlock(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewGrid(10, 12)
		safe := Pos{Row: 4, Col: 5}
		g.PlaceMines(rand.New(rand.NewSource(seed)), 18, safe)

		if n := g.Mines(); n != 18 {
			t.Fatalf("seed %d: mines = %d, want 18", seed, n)
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if g[safe.Row+dr][safe.Col+dc].Mine {
					t.Fatalf("seed %d: mine inside the safe block at (%d,%d)", seed, safe.Row+dr, safe.Col+dc)
				}
			}
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	g := NewGrid(10, 12)
	g.PlaceMines(rand.New(rand.NewSource(3)), 18, Pos{0, 0})

	for r := range g {
		for c := range g[r] {
			if g[r][c].Mine {
				continue
			}
			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := r+dr, c+dc
					if (dr != 0 || dc != 0) && nr >= 0 && nr < 10 && nc >= 0 && nc < 12 && g[nr][nc].Mine {
						want++
					}
				}
			}
			if g[r][c].Count != want {
				t.Errorf("count at (%d,%d) = %d, want %d", r, c, g[r][c].Count, want)
			}
		}
	}
}

func TestPlaceMinesCapsAtFreeCells(t *testing.T) {
	g := NewGrid(3, 4)
	g.PlaceMines(rand.New(rand.NewSource(1)), 100, Pos{1, 1})
	// Only column 3 lies outside the 3x3 block around (1,1)
	if n := g.Mines(); n != 3 {
		t.Errorf("mines = %d, want 3", n)
	}
}

// floodRecursive is the reference depth-first recursion.
func floodRecursive(g Grid, p Pos, visit func(Pos)) {
	cell := &g[p.Row][p.Col]
	if cell.Open || cell.Flag {
		return
	}
	cell.Open = true
	visit(p)
	if cell.Mine || cell.Count != 0 {
		return
	}
	for _, n := range g.neighbors(p) {
		if nc := g[n.Row][n.Col]; !nc.Open && !nc.Mine {
			floodRecursive(g, n, visit)
		}
	}
}

func cloneGrid(g Grid) Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = append([]Cell(nil), g[r]...)
	}
	return out
}

func TestFloodMatchesRecursion(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		base := NewGrid(16, 20)
		start := Pos{Row: rng.Intn(16), Col: rng.Intn(20)}
		base.PlaceMines(rng, 30, start)
		// A few flags in the way
		for range 5 {
			base[rng.Intn(16)][rng.Intn(20)].Flag = true
		}
		base[start.Row][start.Col].Flag = false

		a, b := cloneGrid(base), cloneGrid(base)
		var orderA, orderB []Pos
		a.Flood(start, func(p Pos) { orderA = append(orderA, p) })
		floodRecursive(b, start, func(p Pos) { orderB = append(orderB, p) })

		if !reflect.DeepEqual(orderA, orderB) {
			t.Errorf("seed %d: open order differs\niterative %v\nrecursive %v", seed, orderA, orderB)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("seed %d: grids differ after flood", seed)
		}
	}
}

func TestFloodLargeGrid(t *testing.T) {
	g := NewGrid(500, 500)
	opened := 0
	g.Flood(Pos{250, 250}, func(Pos) { opened++ })
	if opened != 500*500 {
		t.Errorf("opened = %d, want %d", opened, 500*500)
	}
}

func TestFloodSkipsFlagged(t *testing.T) {
	g := NewGrid(1, 3)
	g[0][1].Flag = true
	opened := 0
	g.Flood(Pos{0, 0}, func(Pos) { opened++ })

	if opened != 1 || g[0][1].Open || g[0][2].Open {
		t.Errorf("flood crossed a flag: opened=%d row=%+v", opened, g[0])
	}
}
