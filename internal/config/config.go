// Package config provides YAML-based game tuning and server configuration
// for the arcade.
package config

import "time"

// Games holds the tuning of every engine. Engines read their own section.
type Games struct {
	Snake       SnakeConfig       `yaml:"snake"`
	Tetris      TetrisConfig      `yaml:"tetris"`
	Flappy      FlappyConfig      `yaml:"flappy_bird"`
	Minesweeper MinesweeperConfig `yaml:"minesweeper"`
	Cross       CrossConfig       `yaml:"cross_the_road"`
	Pong        PongConfig        `yaml:"pong"`
}

// SnakeConfig contains the grid and scoring rules for Snake.
type SnakeConfig struct {
	GridSize   int `yaml:"grid_size"`   // Cell size in pixels
	StepMs     int `yaml:"step_ms"`     // Fixed simulation step
	StartX     int `yaml:"start_x"`     // Starting head cell
	StartY     int `yaml:"start_y"`     //
	FoodPoints int `yaml:"food_points"` // Score per food eaten
	FoodTries  int `yaml:"food_tries"`  // Random placements before giving up on a free cell
}

// TetrisConfig contains board and timing parameters for Tetris.
type TetrisConfig struct {
	Cols       int              `yaml:"cols"`
	Rows       int              `yaml:"rows"`
	CellSize   int              `yaml:"cell_size"`
	StepMs     int              `yaml:"step_ms"`     // Drop interval at level 0
	MinStepMs  int              `yaml:"min_step_ms"` // Drop interval at level 1
	LinePoints int              `yaml:"line_points"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyConfig contains all configuration for Flappy Bird.
type FlappyConfig struct {
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Bird    FlappyBird    `yaml:"bird"`
	Physics FlappyPhysics `yaml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes"`
}

// FlappyBird defines the bird's horizontal position and size.
type FlappyBird struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// FlappyPhysics defines vertical motion in px/s and px/s².
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// FlappyPipes defines pipe geometry and spawning.
type FlappyPipes struct {
	Gap             float64 `yaml:"gap"`
	Width           float64 `yaml:"width"`
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	Margin          float64 `yaml:"margin"`    // Minimum distance of the gap from top and bottom
	DespawnX        float64 `yaml:"despawn_x"` // Pipes whose right edge is at or left of this are dropped
}

// MinesweeperConfig contains the grid parameters for Minesweeper.
type MinesweeperConfig struct {
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	CellSize   int `yaml:"cell_size"`
	Mines      int `yaml:"mines"`
	OpenPoints int `yaml:"open_points"`
}

// CrossConfig contains lane layout and traffic for Cross The Road.
type CrossConfig struct {
	Lanes          int         `yaml:"lanes"`
	LaneHeight     float64     `yaml:"lane_height"`
	SidePadding    float64     `yaml:"side_padding"`
	HorizontalStep float64     `yaml:"horizontal_step"`
	CrossPoints    int         `yaml:"cross_points"`
	Player         CrossPlayer `yaml:"player"`
	Cars           CrossCars   `yaml:"cars"`
}

// CrossPlayer defines the player's size and start offset from the bottom.
type CrossPlayer struct {
	Size         float64 `yaml:"size"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// CrossCars defines car geometry and lane speeds.
type CrossCars struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedPerLane float64 `yaml:"speed_per_lane"`
	WrapMargin   float64 `yaml:"wrap_margin"`
	SpawnSpread  float64 `yaml:"spawn_spread"` // Initial x may start this far off either edge
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Paddle PongPaddle `yaml:"paddle"`
	Ball   PongBall   `yaml:"ball"`
}

// PongPaddle defines the paddle geometry.
type PongPaddle struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Offset  float64 `yaml:"offset"`   // Distance of the paddle top from the bottom edge
	KeyStep float64 `yaml:"key_step"` // Paddle movement per arrow key press
}

// PongBall defines ball size and speeds in px/s.
type PongBall struct {
	Radius       float64 `yaml:"radius"`
	SpeedX       float64 `yaml:"speed_x"`
	SpeedY       float64 `yaml:"speed_y"`
	ReboundSpeed float64 `yaml:"rebound_speed"` // Horizontal speed of an edge hit
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "steps", or "none"
	MaxAt int    `yaml:"max_at"` // Score or step count at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Server holds settings for the HTTP API and the SSH arcade.
type Server struct {
	DBPath string    `yaml:"db_path"`
	API    APIConfig `yaml:"api"`
	SSH    SSHConfig `yaml:"ssh"`
}

// APIConfig configures the HTTP API.
type APIConfig struct {
	Address    string        `yaml:"address"`
	CORSOrigin string        `yaml:"cors_origin"`
	JWTSecret  string        `yaml:"jwt_secret"`
	AccessTTL  time.Duration `yaml:"access_ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl"`
	AuthLimit  RateLimit     `yaml:"auth_limit"`
	ScoreLimit RateLimit     `yaml:"score_limit"`
}

// RateLimit is a request budget per client IP and window.
type RateLimit struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// SSHConfig configures the SSH arcade.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
