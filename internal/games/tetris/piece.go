package tetris

// Matrix is a piece shape; non-zero entries are occupied.
type Matrix [][]int

// shapes holds the seven tetrominoes. A shape's color id is its index + 1.
var shapes = []Matrix{
	{{1, 1, 1, 1}},         // I
	{{1, 1}, {1, 1}},       // O
	{{0, 1, 0}, {1, 1, 1}}, // T
	{{0, 1, 1}, {1, 1, 0}}, // S
	{{1, 1, 0}, {0, 1, 1}}, // Z
	{{1, 0, 0}, {1, 1, 1}}, // J
	{{0, 0, 1}, {1, 1, 1}}, // L
}

// Piece is a shape with its color id.
type Piece struct {
	M     Matrix
	Color int
}

// Falling is the active piece and its board origin.
type Falling struct {
	Piece
	X, Y int
}

func (m Matrix) clone() Matrix {
	out := make(Matrix, len(m))
	for r, row := range m {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Rotate returns m turned 90° clockwise.
func Rotate(m Matrix) Matrix {
	rows, cols := len(m), len(m[0])
	out := make(Matrix, cols)
	for c := range out {
		out[c] = make([]int, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = m[r][c]
		}
	}
	return out
}
