package snake

import "github.com/RohitDatta06/gamehub/internal/core"

func (g *Game) draw() {
	ctx := g.env.Ctx
	if ctx == nil {
		return
	}
	size := float64(g.cfg.GridSize)

	ctx.Clear(core.ColorNavy)

	for i, seg := range g.snake {
		col := core.ColorGreen
		if i == 0 {
			col = core.ColorBrightGreen
		}
		ctx.FillRect(float64(seg.X)*size+1, float64(seg.Y)*size+1, size-2, size-2, col)
	}

	ctx.FillCircle(float64(g.food.X)*size+size/2, float64(g.food.Y)*size+size/2, size*0.35, core.ColorBrightRed)
}

// Redraw paints the current state without advancing it.
func (g *Game) Redraw() { g.draw() }
