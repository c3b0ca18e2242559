package minesweeper

import "math/rand"

// Cell is one square of the minefield.
type Cell struct {
	Mine  bool
	Open  bool
	Flag  bool
	Count int // Adjacent mines, valid for non-mine cells once mines are placed
}

// Grid is the minefield, indexed [row][col].
type Grid [][]Cell

// Pos addresses a cell.
type Pos struct {
	Row, Col int
}

// NewGrid creates an empty rows×cols grid.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Cell, cols)
	}
	return g
}

func (g Grid) rows() int { return len(g) }

func (g Grid) cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// In reports whether p lies on the grid.
func (g Grid) In(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows() && p.Col >= 0 && p.Col < g.cols()
}

// neighbors returns the in-bounds 8-neighborhood of p in row-major order.
func (g Grid) neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Pos{Row: p.Row + dr, Col: p.Col + dc}
			if g.In(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// PlaceMines scatters n mines uniformly, never on an existing mine or inside
// the 3×3 block around safe, then computes neighbor counts. n is capped at the
// number of cells outside the safe block.
func (g Grid) PlaceMines(rng *rand.Rand, n int, safe Pos) {
	free := 0
	for r := range g {
		for c := range g[r] {
			if !inBlock(Pos{r, c}, safe) && !g[r][c].Mine {
				free++
			}
		}
	}
	n = min(n, free)

	for placed := 0; placed < n; {
		p := Pos{Row: rng.Intn(g.rows()), Col: rng.Intn(g.cols())}
		if inBlock(p, safe) || g[p.Row][p.Col].Mine {
			continue
		}
		g[p.Row][p.Col].Mine = true
		placed++
	}

	for r := range g {
		for c := range g[r] {
			if g[r][c].Mine {
				continue
			}
			cnt := 0
			for _, n := range g.neighbors(Pos{r, c}) {
				if g[n.Row][n.Col].Mine {
					cnt++
				}
			}
			g[r][c].Count = cnt
		}
	}
}

func inBlock(p, center Pos) bool {
	dr, dc := p.Row-center.Row, p.Col-center.Col
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Flood opens p and, from every opened zero-count cell, its unopened
// non-mine neighbors. Open and flagged cells are skipped. visit is called once
// per opened cell in the order the cells open. The traversal uses an explicit
// stack and opens cells in the same order as a depth-first recursion.
func (g Grid) Flood(p Pos, visit func(Pos)) {
	stack := []Pos{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &g[cur.Row][cur.Col]
		if cell.Open || cell.Flag {
			continue
		}
		cell.Open = true
		visit(cur)

		if cell.Mine || cell.Count != 0 {
			continue
		}
		ns := g.neighbors(cur)
		for i := len(ns) - 1; i >= 0; i-- {
			n := ns[i]
			if nc := g[n.Row][n.Col]; !nc.Open && !nc.Mine {
				stack = append(stack, n)
			}
		}
	}
}

// RevealMines opens every mine.
func (g Grid) RevealMines() {
	for r := range g {
		for c := range g[r] {
			if g[r][c].Mine {
				g[r][c].Open = true
			}
		}
	}
}

// OpenedSafe counts opened non-mine cells.
func (g Grid) OpenedSafe() int {
	n := 0
	for r := range g {
		for _, cell := range g[r] {
			if cell.Open && !cell.Mine {
				n++
			}
		}
	}
	return n
}

// Mines counts mined cells.
func (g Grid) Mines() int {
	n := 0
	for r := range g {
		for _, cell := range g[r] {
			if cell.Mine {
				n++
			}
		}
	}
	return n
}
