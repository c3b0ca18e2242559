package snake

// Snapshot captures the observable game state for tests and the HUD.
type Snapshot struct {
	Score    int
	SnakeLen int
	Head     Point
	Dir      Direction
	Food     Point
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:    g.score,
		SnakeLen: len(g.snake),
		Head:     g.snake[0],
		Dir:      g.direction,
		Food:     g.food,
		GameOver: g.gameOver,
	}
}
