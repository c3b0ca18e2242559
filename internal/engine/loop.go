package engine

import "time"

// TickFunc advances one frame by dt and reports whether another frame should
// be scheduled.
type TickFunc func(dt time.Duration) bool

// Loop owns the handles an engine acquires while running: the pending frame
// and its input subscriptions. Engines embed one and route Start and Stop
// through it.
type Loop struct {
	frames Scheduler
	input  Source
	tick   TickFunc

	frame   FrameID
	pending bool
	gen     uint64
	last    time.Time
	subs    []*Subscription
}

// NewLoop creates a loop over env's scheduler and input. tick may be nil for
// purely event-driven engines.
func NewLoop(env Env, tick TickFunc) *Loop {
	return &Loop{frames: env.Frames, input: env.Input, tick: tick}
}

// Listen subscribes h and keeps the handle for Release.
func (l *Loop) Listen(h Handler) {
	if l.input == nil {
		return
	}
	l.subs = append(l.subs, l.input.Subscribe(h))
}

// Listening returns the number of subscriptions the loop holds.
func (l *Loop) Listening() int {
	return len(l.subs)
}

// Running reports whether a frame is scheduled.
func (l *Loop) Running() bool {
	return l.pending
}

// Run (re)starts the frame chain. The first frame's dt is measured from now.
func (l *Loop) Run() {
	l.Halt()
	if l.frames == nil || l.tick == nil {
		return
	}
	l.last = l.frames.Now()
	l.schedule()
}

func (l *Loop) schedule() {
	l.frame = l.frames.RequestFrame(l.onFrame)
	l.pending = true
}

func (l *Loop) onFrame(now time.Time) {
	l.pending = false
	dt := now.Sub(l.last)
	if dt < 0 {
		dt = 0
	}
	l.last = now

	// A Halt, Run or Release from inside tick owns the chain from here on.
	gen := l.gen
	if l.tick(dt) && gen == l.gen && !l.pending {
		l.schedule()
	}
}

// Halt cancels the pending frame but keeps input subscriptions.
func (l *Loop) Halt() {
	l.gen++
	if l.pending {
		l.frames.CancelFrame(l.frame)
		l.pending = false
	}
}

// Release cancels the pending frame and drops every subscription.
func (l *Loop) Release() {
	l.Halt()
	for _, s := range l.subs {
		s.Unsubscribe()
	}
	l.subs = nil
}
