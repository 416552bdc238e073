package sim

// EventKind identifies simulation events.
type EventKind string

const (
	EventStageLoaded    EventKind = "stage_loaded"
	EventStageCleared   EventKind = "stage_cleared"
	EventRestored       EventKind = "restored"
	EventEnemyDefeated  EventKind = "enemy_defeated"
	EventPlayerHit      EventKind = "player_hit"
	EventPlayerDefeated EventKind = "player_defeated"
	EventRestarted      EventKind = "restarted"
)

// Event is emitted by a step. Events of a step stay queued until the next
// step starts.
type Event struct {
	Kind  EventKind
	Stage int
	Name  string
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

// Len reports the queued event count.
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
