package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

//go:embed defaults/server.yaml
var defaultServerYAML []byte

// DefaultGames returns the built-in tuning of every engine.
func DefaultGames() Games {
	return Games{
		Snake:       DefaultSnakeConfig(),
		Tetris:      DefaultTetrisConfig(),
		Flappy:      DefaultFlappyConfig(),
		Minesweeper: DefaultMinesweeperConfig(),
		Cross:       DefaultCrossConfig(),
		Pong:        DefaultPongConfig(),
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize:   20,
		StepMs:     100,
		StartX:     10,
		StartY:     10,
		FoodPoints: 10,
		FoodTries:  500,
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
// Difficulty progression is off so the drop interval stays fixed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Cols:       10,
		Rows:       20,
		CellSize:   24,
		StepMs:     500,
		MinStepMs:  100,
		LinePoints: 100,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Width:  600,
		Height: 400,
		Bird: FlappyBird{
			X:      100,
			Radius: 12,
		},
		Physics: FlappyPhysics{
			Gravity:      900,
			JumpVelocity: -300,
		},
		Pipes: FlappyPipes{
			Gap:             150,
			Width:           60,
			Speed:           150,
			SpawnIntervalMs: 1400,
			Margin:          50,
			DespawnX:        -10,
		},
	}
}

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Cols:       12,
		Rows:       10,
		CellSize:   32,
		Mines:      18,
		OpenPoints: 10,
	}
}

// DefaultCrossConfig returns the default Cross The Road configuration.
func DefaultCrossConfig() CrossConfig {
	return CrossConfig{
		Lanes:          5,
		LaneHeight:     60,
		SidePadding:    12,
		HorizontalStep: 30,
		CrossPoints:    10,
		Player: CrossPlayer{
			Size:         30,
			BottomOffset: 40,
		},
		Cars: CrossCars{
			Width:        60,
			Height:       40,
			BaseSpeed:    120,
			SpeedPerLane: 15,
			WrapMargin:   80,
			SpawnSpread:  100,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Width:  600,
		Height: 400,
		Paddle: PongPaddle{
			Width:   60,
			Height:  12,
			Offset:  20,
			KeyStep: 30,
		},
		Ball: PongBall{
			Radius:       8,
			SpeedX:       180,
			SpeedY:       -220,
			ReboundSpeed: 220,
		},
	}
}

// DefaultServer returns the default server configuration.
func DefaultServer() Server {
	return Server{
		DBPath: "",
		API: APIConfig{
			Address:    ":4000",
			CORSOrigin: "http://localhost:5173",
			JWTSecret:  "",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
			AuthLimit:  RateLimit{Requests: 10, Window: 15 * time.Minute},
			ScoreLimit: RateLimit{Requests: 20, Window: time.Minute},
		},
		SSH: SSHConfig{
			Address:     ":2222",
			HostKeyPath: ".ssh/gamehub_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
