package core

import "math"

const (
	blockRune = '█'
	dotRune   = '●'
)

// Canvas is a 2D drawing context in surface pixels. It rasterises every
// operation onto a rectangular region of a Screen, scaling the surface to the
// region's size.
type Canvas struct {
	screen  *Screen
	region  Rect
	surface *Surface
}

// NewCanvas binds a surface to a region of screen.
func NewCanvas(screen *Screen, region Rect, surface *Surface) *Canvas {
	return &Canvas{screen: screen, region: region, surface: surface}
}

// SetRegion moves the canvas to another area of the screen.
func (c *Canvas) SetRegion(r Rect) {
	c.region = r
}

// Region returns the screen area the canvas draws into.
func (c *Canvas) Region() Rect {
	return c.region
}

// Surface returns the bound surface.
func (c *Canvas) Surface() *Surface {
	return c.surface
}

// scale returns cells per pixel on each axis.
func (c *Canvas) scale() (float64, float64) {
	w, h := c.surface.Width(), c.surface.Height()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return float64(c.region.W) / float64(w), float64(c.region.H) / float64(h)
}

// span converts a pixel interval [p, p+size) to a cell interval [lo, hi).
// A non-empty pixel interval always covers at least one cell.
func span(p, size, scale float64) (int, int) {
	lo := int(math.Floor(p * scale))
	hi := int(math.Ceil((p + size) * scale))
	if size > 0 && hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// Clear blanks the whole canvas region.
func (c *Canvas) Clear(col Color) {
	c.screen.FillRect(c.region, Cell{Rune: ' ', Color: col})
}

// FillRect paints the cells covered by a pixel rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	sx, sy := c.scale()
	if sx == 0 || w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, w, sx)
	y0, y1 := span(y, h, sy)
	r := NewRect(c.region.X+x0, c.region.Y+y0, x1-x0, y1-y0).Clip(c.region)
	c.screen.FillRect(r, Cell{Rune: blockRune, Color: col})
}

// FillCircle paints the cells whose centers lie inside the circle. A circle
// smaller than a cell still marks the cell holding its center.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	sx, sy := c.scale()
	if sx == 0 {
		return
	}
	x0, x1 := span(cx-r, 2*r, sx)
	y0, y1 := span(cy-r, 2*r, sy)
	painted := false
	for row := y0; row < y1; row++ {
		for colIdx := x0; colIdx < x1; colIdx++ {
			px := (float64(colIdx) + 0.5) / sx
			py := (float64(row) + 0.5) / sy
			if math.Hypot(px-cx, py-cy) <= r {
				c.plot(colIdx, row, Cell{Rune: dotRune, Color: col})
				painted = true
			}
		}
	}
	if !painted {
		c.plot(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), Cell{Rune: dotRune, Color: col})
	}
}

// FillText writes text centered horizontally on x, on the row holding y.
func (c *Canvas) FillText(x, y float64, text string, col Color) {
	sx, sy := c.scale()
	if sx == 0 {
		return
	}
	runes := []rune(text)
	start := int(math.Floor(x*sx)) - len(runes)/2
	row := int(math.Floor(y * sy))
	for i, r := range runes {
		c.plot(start+i, row, Cell{Rune: r, Color: col})
	}
}

func (c *Canvas) plot(col, row int, cell Cell) {
	x, y := c.region.X+col, c.region.Y+row
	if !c.region.Contains(x, y) {
		return
	}
	c.screen.SetCell(x, y, cell)
}

// ToSurface maps a screen cell to the surface pixel at the cell's center.
// ok is false when the cell lies outside the canvas region.
func (c *Canvas) ToSurface(col, row int) (x, y float64, ok bool) {
	if !c.region.Contains(col, row) {
		return 0, 0, false
	}
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return 0, 0, false
	}
	x = (float64(col-c.region.X) + 0.5) / sx
	y = (float64(row-c.region.Y) + 0.5) / sy
	return x, y, true
}
