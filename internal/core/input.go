package core

// Event is a discrete input intent, abstracted from physical key presses.
type Event int

const (
	EventNone    Event = iota
	EventFlap          // Space, Up, W - upward impulse; also begins a round from the start screen
	EventConfirm       // Enter, R - begin / restart
	EventQuit          // Q, Esc, Ctrl+C - leave the game from any state
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventFlap:
		return "Flap"
	case EventConfirm:
		return "Confirm"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventQueue buffers events that arrive between ticks.
// The platform pushes as keys come in and drains once per tick, so an event
// arriving mid-frame is seen by the next tick.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 4)}
}

// Push appends an event. EventNone is dropped.
func (q *EventQueue) Push(e Event) {
	if e == EventNone {
		return
	}
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Has reports whether e occurs in events.
func Has(events []Event, e Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
