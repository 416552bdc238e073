// Package notify surfaces end-of-run messages to the player.
package notify

import "github.com/milk9111/fragmentrun/sim"

// Message is one modal notification.
type Message struct {
	Title string
	Body  string
}

// Notifier shows a Message. Implementations may block until dismissed.
type Notifier interface {
	Notify(m Message)
	// Pending reports whether a shown message still awaits dismissal. The
	// simulation stays paused while it does.
	Pending() bool
}

// ForEvent maps a simulation event to the message it should raise.
func ForEvent(ev sim.Event) (Message, bool) {
	switch ev.Kind {
	case sim.EventRestored:
		return Message{Title: "SYSTEM RESTORED", Body: "All fragments recovered."}, true
	}
	return Message{}, false
}

// Banner queues messages for an in-game modal. The first queued message is
// the one on screen.
type Banner struct {
	queue []Message
}

func NewBanner() *Banner {
	return &Banner{}
}

func (b *Banner) Notify(m Message) {
	b.queue = append(b.queue, m)
}

func (b *Banner) Pending() bool {
	return len(b.queue) > 0
}

// Current returns the message on screen.
func (b *Banner) Current() (Message, bool) {
	if len(b.queue) == 0 {
		return Message{}, false
	}
	return b.queue[0], true
}

// Dismiss closes the message on screen and reveals the next one.
func (b *Banner) Dismiss() {
	if len(b.queue) == 0 {
		return
	}
	b.queue[0] = Message{}
	b.queue = b.queue[1:]
}
