package engine

import "sync"

// EventKind distinguishes input events.
type EventKind int

const (
	EventKey EventKind = iota
	EventPointerDown
	EventPointerMove
)

// Key names a keyboard key using the terminal's key naming.
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeySpace Key = " "
	KeyEnter Key = "enter"
	KeyFlag  Key = "f"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Event is a keyboard or pointer event. Pointer coordinates are surface pixels.
type Event struct {
	Kind   EventKind
	Key    Key
	X, Y   float64
	Button Button
}

// KeyEvent builds a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// PointerDown builds a pointer press event.
func PointerDown(x, y float64, b Button) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y, Button: b}
}

// PointerMove builds a pointer motion event.
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// Handler consumes input events.
type Handler func(Event)

// Source is where engines subscribe for input.
type Source interface {
	Subscribe(h Handler) *Subscription
}

// Subscription is a handle returned by Subscribe.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe detaches the handler. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Bus is an in-process input Source. Dispatch delivers synchronously to the
// handlers subscribed at the time of the call.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
	order    []int
}

// NewBus creates an empty input bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns its handle.
func (b *Bus) Subscribe(h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[id] = h
	b.order = append(b.order, id)

	return &Subscription{cancel: func() { b.remove(id) }}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Listeners returns the number of active subscriptions.
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Dispatch delivers ev to every current subscriber in subscription order.
func (b *Bus) Dispatch(ev Event) {
	b.mu.Lock()
	targets := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		targets = append(targets, b.handlers[id])
	}
	b.mu.Unlock()

	for _, h := range targets {
		h(ev)
	}
}
