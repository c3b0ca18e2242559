package tetris

// Board is the settled playfield, indexed [row][col]. Zero is empty, other
// values are color ids.
type Board [][]int

// NewBoard creates an empty rows×cols board.
func NewBoard(cols, rows int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]int, cols)
	}
	return b
}

func (b Board) cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Collides reports whether m at (x, y) leaves the board on the left, right or
// bottom, or overlaps a filled cell. Cells above row 0 are allowed.
func (b Board) Collides(m Matrix, x, y int) bool {
	for r, row := range m {
		for c, v := range row {
			if v == 0 {
				continue
			}
			nx, ny := x+c, y+r
			if nx < 0 || nx >= b.cols() || ny >= len(b) {
				return true
			}
			if ny >= 0 && b[ny][nx] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge writes the piece's color into the board. Cells above row 0 are dropped.
func (b Board) Merge(p Falling) {
	for r, row := range p.M {
		for c, v := range row {
			if v == 0 {
				continue
			}
			ny, nx := p.Y+r, p.X+c
			if ny >= 0 {
				b[ny][nx] = p.Color
			}
		}
	}
}

// ClearLines removes every full row, inserts empty rows at the top and
// returns how many rows were removed. The board keeps its height.
func (b Board) ClearLines() int {
	kept := make([][]int, 0, len(b))
	for _, row := range b {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	cleared := len(b) - len(kept)
	if cleared == 0 {
		return 0
	}
	for i := 0; i < cleared; i++ {
		b[i] = make([]int, b.cols())
	}
	copy(b[cleared:], kept)
	return cleared
}

func full(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}
