package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const ZoneEventType = "zone"

// ZoneEventKind identifies zone activation edges.
type ZoneEventKind string

const (
	ZoneEntered ZoneEventKind = "entered"
	ZoneExited  ZoneEventKind = "exited"
)

// ZoneEvent is emitted once per zone activation change.
type ZoneEvent struct {
	Entity Entity
	ZoneID string
	Kind   ZoneEventKind
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
