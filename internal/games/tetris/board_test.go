package tetris

import (
	"reflect"
	"testing"
)

func TestRotate(t *testing.T) {
	tShape := Matrix{{0, 1, 0}, {1, 1, 1}}
	want := Matrix{{1, 0}, {1, 1}, {1, 0}}
	if got := Rotate(tShape); !reflect.DeepEqual(got, want) {
		t.Errorf("Rotate(T) = %v, want %v", got, want)
	}

	for i, s := range shapes {
		m := s
		for range 4 {
			m = Rotate(m)
		}
		if !reflect.DeepEqual(m, s) {
			t.Errorf("shape %d: four rotations = %v, want %v", i, m, s)
		}
	}
}

func TestCollides(t *testing.T) {
	b := NewBoard(10, 20)
	b[19][5] = 3
	o := shapes[1]

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 4, 5, false},
		{"left wall", -1, 5, true},
		{"right wall", 9, 5, true},
		{"floor", 0, 19, true},
		{"above top allowed", 0, -1, false},
		{"filled cell", 4, 18, true},
		{"next to filled", 6, 18, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Collides(o, tt.x, tt.y); got != tt.want {
				t.Errorf("Collides(O, %d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMergeSkipsAboveTop(t *testing.T) {
	b := NewBoard(4, 4)
	b.Merge(Falling{Piece: Piece{M: Matrix{{1}, {1}}, Color: 5}, X: 2, Y: -1})

	if b[0][2] != 5 {
		t.Errorf("b[0][2] = %d, want 5", b[0][2])
	}
	count := 0
	for _, row := range b {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("merged %d cells, want 1", count)
	}
}

func TestClearLines(t *testing.T) {
	b := Board{
		{1, 0, 0, 0},
		{2, 2, 2, 2},
		{0, 3, 0, 0},
		{4, 4, 4, 4},
	}

	if n := b.ClearLines(); n != 2 {
		t.Fatalf("ClearLines = %d, want 2", n)
	}
	want := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 3, 0, 0},
	}
	if !reflect.DeepEqual(b, want) {
		t.Errorf("board = %v, want %v", b, want)
	}
}

func TestClearLinesNone(t *testing.T) {
	b := Board{{1, 0}, {0, 1}}
	if n := b.ClearLines(); n != 0 {
		t.Errorf("ClearLines = %d, want 0", n)
	}
	if len(b) != 2 {
		t.Errorf("height = %d, want 2", len(b))
	}
}
