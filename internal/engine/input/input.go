// Package input defines window-backend-neutral input events and turns them
// into camera and cursor updates.
package input

// EventType identifies the kind of an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventScroll
)

// Key identifies the keys the demo reacts to. Backends map their native key
// codes onto these and report everything else as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF12
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     Key
	Button  MouseButton
	Width   int
	Height  int
	MouseX  float64
	MouseY  float64
	ScrollX float64
	ScrollY float64
}

// Queue collects events between two polls. Backends that deliver input
// through callbacks append into a Queue and drain it on poll.
type Queue struct {
	events []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain appends all queued events to dst, empties the queue and returns dst.
func (q *Queue) Drain(dst []Event) []Event {
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	return dst
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}
