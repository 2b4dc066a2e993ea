// Package input defines the backend-neutral events the window layer
// produces and the scene consumes.
package input

// EventType identifies what an Event carries.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKey
)

// Action describes the key transition.
type Action int

const (
	Press Action = iota
	Repeat
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Down reports whether the key is held (first press or auto-repeat).
func (a Action) Down() bool {
	return a == Press || a == Repeat
}

// Key is a layout-independent key identifier. Printable keys use their
// upper-case ASCII value, so 'Q', '1' and '.' compare directly.
type Key rune

const (
	KeyUnknown Key = 0
	KeyEscape  Key = 0x1b
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Action Action
	Width  int
	Height int
}

// KeyEvent is a shorthand for building key events.
func KeyEvent(k Key, a Action) Event {
	return Event{Type: EventKey, Key: k, Action: a}
}

// ResizeEvent is a shorthand for building resize events.
func ResizeEvent(w, h int) Event {
	return Event{Type: EventWindowResize, Width: w, Height: h}
}

// Queue collects events between frames.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Events returns the events collected since the last Clear.
func (q *Queue) Events() []Event {
	return q.events
}

// Clear empties the queue, keeping its storage.
func (q *Queue) Clear() {
	q.events = q.events[:0]
}

// FromASCII maps a character to a Key, folding lower case to upper case.
// Characters outside printable ASCII map to KeyUnknown.
func FromASCII(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(r - 'a' + 'A')
	case r >= ' ' && r <= '~':
		return Key(r)
	default:
		return KeyUnknown
	}
}
