package minesweeper

import (
	"strconv"

	"github.com/RohitDatta06/gamehub/internal/core"
)

var countColors = []core.Color{
	core.ColorGray,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

func (g *Game) draw() {
	ctx := g.env.Ctx
	if ctx == nil {
		return
	}
	size := float64(g.cfg.CellSize)
	ctx.Clear(core.ColorNavy)

	for r, row := range g.grid {
		for c, cell := range row {
			x, y := float64(c)*size, float64(r)*size
			cx, cy := x+size/2, y+size/2

			switch {
			case !cell.Open:
				col := core.ColorGray
				if g.cursor == (Pos{r, c}) && !g.IsGameOver() {
					col = core.ColorBrightWhite
				}
				ctx.FillRect(x+1, y+1, size-2, size-2, col)
				if cell.Flag {
					ctx.FillText(cx, cy, "F", core.ColorBrightRed)
				}
			case cell.Mine:
				ctx.FillRect(x+1, y+1, size-2, size-2, core.ColorRed)
				ctx.FillText(cx, cy, "*", core.ColorBrightWhite)
			case cell.Count > 0:
				ctx.FillText(cx, cy, strconv.Itoa(cell.Count), countColors[cell.Count])
			}
		}
	}
}

// Redraw paints the current state without advancing it.
func (g *Game) Redraw() { g.draw() }
