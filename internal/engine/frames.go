package engine

import (
	"sync"
	"time"
)

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// FrameFunc is called with the frame timestamp.
type FrameFunc func(now time.Time)

// Scheduler is the per-frame scheduling primitive engines use for their tick.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a pending callback. Unknown ids are ignored.
	CancelFrame(id FrameID)
}

// FrameLoop is a Scheduler flushed by the host once per display frame.
// Callbacks requested while a flush is running wait for the next flush.
type FrameLoop struct {
	mu      sync.Mutex
	clock   func() time.Time
	nextID  FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID
}

// NewFrameLoop creates a frame loop. A nil clock uses time.Now.
func NewFrameLoop(clock func() time.Time) *FrameLoop {
	if clock == nil {
		clock = time.Now
	}
	return &FrameLoop{
		clock:   clock,
		pending: make(map[FrameID]FrameFunc),
	}
}

// Now returns the loop's clock reading.
func (l *FrameLoop) Now() time.Time {
	return l.clock()
}

// RequestFrame queues fn for the next Flush.
func (l *FrameLoop) RequestFrame(fn FrameFunc) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.pending[l.nextID] = fn
	l.order = append(l.order, l.nextID)
	return l.nextID
}

// CancelFrame removes a queued callback.
func (l *FrameLoop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pending, id)
}

// Pending returns the number of queued callbacks.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Flush runs every callback queued before the call, in request order, and
// returns how many ran. A callback cancelled by an earlier one in the same
// flush does not run.
func (l *FrameLoop) Flush(now time.Time) int {
	l.mu.Lock()
	batch := l.order
	l.order = nil
	l.mu.Unlock()

	ran := 0
	for _, id := range batch {
		l.mu.Lock()
		fn, ok := l.pending[id]
		delete(l.pending, id)
		l.mu.Unlock()

		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}
