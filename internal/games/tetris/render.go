package tetris

import "github.com/RohitDatta06/gamehub/internal/core"

var palette = []core.Color{
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBrightCyan,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorCyan,
}

func colorFor(id int) core.Color {
	if id < 1 || id > len(palette) {
		return core.ColorWhite
	}
	return palette[id-1]
}

func (g *Game) draw() {
	ctx := g.env.Ctx
	if ctx == nil {
		return
	}
	ctx.Clear(core.ColorNavy)

	for r, row := range g.board {
		for c, v := range row {
			if v != 0 {
				g.drawCell(c, r, colorFor(v))
			}
		}
	}

	if g.cur != nil {
		for r, row := range g.cur.M {
			for c, v := range row {
				if v != 0 {
					g.drawCell(g.cur.X+c, g.cur.Y+r, colorFor(g.cur.Color))
				}
			}
		}
	}
}

func (g *Game) drawCell(cx, cy int, col core.Color) {
	size := float64(g.cfg.CellSize)
	g.env.Ctx.FillRect(float64(cx)*size+1, float64(cy)*size+1, size-2, size-2, col)
}

// Redraw paints the current state without advancing it.
func (g *Game) Redraw() { g.draw() }
