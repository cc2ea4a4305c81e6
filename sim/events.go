package sim

// EventKind identifies session event types.
type EventKind string

const (
	EventStoneSpawned EventKind = "stone_spawned"
	EventStoneSettled EventKind = "stone_settled"
	EventGameOver     EventKind = "game_over"
)

// Event is a session event drained by the shell after each step.
type Event struct {
	Kind  EventKind
	Block *Block
	State State
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
