// Package enginetest drives engines deterministically in tests: a manual
// clock, a frame loop flushed on demand, an input bus and a recording score
// callback.
package enginetest

import (
	"math/rand"
	"time"

	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/core"
	"github.com/RohitDatta06/gamehub/internal/engine"
)

// Report is one recorded score callback.
type Report struct {
	Score int
	Over  bool
}

// Harness owns the collaborators of a single engine under test.
type Harness struct {
	Now     time.Time
	Frames  *engine.FrameLoop
	Bus     *engine.Bus
	Surface *core.Surface
	Screen  *core.Screen
	Canvas  *core.Canvas
	Rand    *rand.Rand
	Tuning  *config.Games

	reports []Report
}

// New creates a harness with a w×h pixel surface and a seeded RNG.
func New(w, h int, seed int64) *Harness {
	hs := &Harness{
		Now:     time.Unix(1_700_000_000, 0),
		Bus:     engine.NewBus(),
		Surface: core.NewSurface(w, h),
		Screen:  core.NewScreen(60, 20),
		Rand:    rand.New(rand.NewSource(seed)),
	}
	hs.Frames = engine.NewFrameLoop(func() time.Time { return hs.Now })
	hs.Canvas = core.NewCanvas(hs.Screen, hs.Screen.Bounds(), hs.Surface)
	return hs
}

// Env returns the environment to construct an engine with.
func (h *Harness) Env() engine.Env {
	return engine.Env{
		Surface: h.Surface,
		Ctx:     h.Canvas,
		OnScore: h.record,
		Frames:  h.Frames,
		Input:   h.Bus,
		Rand:    h.Rand,
		Tuning:  h.Tuning,
	}
}

func (h *Harness) record(score int, over bool) {
	h.reports = append(h.reports, Report{Score: score, Over: over})
}

// Frame advances the clock by d and flushes one frame.
func (h *Harness) Frame(d time.Duration) int {
	h.Now = h.Now.Add(d)
	return h.Frames.Flush(h.Now)
}

// Run runs n frames of d each.
func (h *Harness) Run(n int, d time.Duration) {
	for range n {
		h.Frame(d)
	}
}

// Press dispatches a key press.
func (h *Harness) Press(k engine.Key) {
	h.Bus.Dispatch(engine.KeyEvent(k))
}

// Click dispatches a pointer press at surface coordinates.
func (h *Harness) Click(x, y float64, b engine.Button) {
	h.Bus.Dispatch(engine.PointerDown(x, y, b))
}

// Move dispatches pointer motion at surface coordinates.
func (h *Harness) Move(x, y float64) {
	h.Bus.Dispatch(engine.PointerMove(x, y))
}

// Reports returns every score callback so far.
func (h *Harness) Reports() []Report {
	return h.reports
}

// Last returns the most recent report, or false if none was made.
func (h *Harness) Last() (Report, bool) {
	if len(h.reports) == 0 {
		return Report{}, false
	}
	return h.reports[len(h.reports)-1], true
}

// OverReports counts reports with the over flag set.
func (h *Harness) OverReports() int {
	n := 0
	for _, r := range h.reports {
		if r.Over {
			n++
		}
	}
	return n
}

// ClearReports forgets recorded reports.
func (h *Harness) ClearReports() {
	h.reports = nil
}
