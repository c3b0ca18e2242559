// Package engine defines the lifecycle contract every game implements and the
// environment a game is constructed with.
//
// An engine drives itself: Start subscribes to input and schedules frames on
// the environment's Scheduler, each frame advances the simulation and redraws,
// and Stop cancels the pending frame and drops every subscription. The host
// only ever sees the Engine interface and the score callback.
package engine

import (
	"math/rand"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
)

// ScoreFunc receives score changes. over is true exactly once, when the game
// enters its terminal state.
type ScoreFunc func(score int, over bool)

// Engine is the lifecycle contract shared by all games.
type Engine interface {
	// Start begins or resumes simulation and input listening.
	Start()
	// Stop halts simulation and removes input listeners. Idempotent.
	Stop()
	// Reset stops, reinitialises all state, reports a zero score and starts again.
	Reset()
	// IsGameOver reports the terminal-state flag.
	IsGameOver() bool
	// Score returns the current score.
	Score() int
}

// Redrawer is implemented by engines that can repaint their current state on
// demand, e.g. after the drawing surface moved.
type Redrawer interface {
	Redraw()
}

// Context is a 2D drawing context bound to a Surface. Coordinates are surface
// pixels.
type Context interface {
	Clear(c core.Color)
	FillRect(x, y, w, h float64, c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)
	FillText(x, y float64, text string, c core.Color)
}

// Env is everything an engine receives from its environment at construction.
type Env struct {
	Surface *core.Surface
	Ctx     Context
	OnScore ScoreFunc

	Frames Scheduler
	Input  Source

	// Rand is the engine's randomness. Nil means a clock-seeded source.
	Rand *rand.Rand
	// Tuning overrides per-game constants. Nil means built-in defaults.
	Tuning *config.Games
}

// Notify invokes OnScore when it is set.
func (e Env) Notify(score int, over bool) {
	if e.OnScore != nil {
		e.OnScore(score, over)
	}
}

// Games returns the tuning, falling back to the built-in defaults.
func (e Env) Games() config.Games {
	if e.Tuning != nil {
		return *e.Tuning
	}
	return config.DefaultGames()
}

// Millis converts a millisecond count from the tuning files.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// RNG returns the configured source or a new clock-seeded one.
func (e Env) RNG() *rand.Rand {
	if e.Rand != nil {
		return e.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
