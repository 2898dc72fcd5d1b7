package session

import (
	"log/slog"
	"time"
)

type EventType string

const (
	EventStatus  EventType = "status"
	EventPartial EventType = "partial"
	EventFinal   EventType = "final"
	EventError   EventType = "error"
	EventCleared EventType = "cleared"
	EventSaved   EventType = "saved"
)

type Event struct {
	Type   EventType `json:"type"`
	State  State     `json:"state,omitempty"`
	Status Status    `json:"status,omitempty"`
	Text   string    `json:"text,omitempty"`
	Time   time.Time `json:"time"`
}

const subscriberBuffer = 64

// Subscribe returns a channel of session events and a func that ends the
// subscription. Events are dropped for subscribers that fall behind.
func (s *Session) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	initial := s.statusEventLocked()
	initial.Time = now()
	ch <- initial

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			close(sub)
			delete(s.subs, id)
		}
	}
}

func (s *Session) broadcastLocked(e Event) {
	e.Time = now()
	for id, ch := range s.subs {
		select {
		case ch <- e:
		default:
			slog.Warn("dropping session event for slow subscriber", "component", "session", "subscriber", id, "type", e.Type)
		}
	}
}

func now() time.Time { return time.Now() }
