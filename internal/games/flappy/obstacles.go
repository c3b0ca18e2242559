package flappy

import (
	"math/rand"

	"github.com/RohitDatta06/gamehub/internal/config"
)

// Pipe is a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X      float64 // Left edge
	GapY   float64 // Top of the gap
	Passed bool    // Set once the bird is fully past the pipe
}

// PipeManager handles spawning, movement and removal of pipes.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	cfg     config.FlappyPipes
	screenW float64
	screenH float64
	timerMs float64 // Time since the last spawn
}

// NewPipeManager creates a pipe manager for a screenW×screenH play area.
func NewPipeManager(rng *rand.Rand, cfg config.FlappyPipes, screenW, screenH float64) *PipeManager {
	return &PipeManager{
		pipes:   make([]Pipe, 0, 8),
		rng:     rng,
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
	}
}

// Reset clears all pipes and the spawn timer.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.timerMs = 0
}

// Update advances the spawn timer, spawns a pipe at the right edge when the
// interval elapses, moves every pipe left and drops the ones fully off-screen.
func (pm *PipeManager) Update(dt float64) {
	pm.timerMs += dt * 1000
	if pm.timerMs >= float64(pm.cfg.SpawnIntervalMs) {
		pm.timerMs = 0
		pm.spawn()
	}

	for i := range pm.pipes {
		pm.pipes[i].X -= pm.cfg.Speed * dt
	}

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+pm.cfg.Width > pm.cfg.DespawnX {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept
}

// spawn adds a pipe whose gap lies fully between the top and bottom margins.
func (pm *PipeManager) spawn() {
	minTop := pm.cfg.Margin
	maxTop := pm.screenH - pm.cfg.Gap - pm.cfg.Margin
	gapY := minTop + pm.rng.Float64()*(maxTop-minTop)
	pm.pipes = append(pm.pipes, Pipe{X: pm.screenW, GapY: gapY})
}

// Pipes returns the active pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
