package memory

import (
	"sync"
	"time"

	"github.com/vodalus/moa/core"
)

// Event is a single recorded conversational turn. Events are never mutated
// after being appended.
type Event struct {
	ID        string    `json:"id"`
	Role      core.Role `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// EventLog is the append-only record of (role, message) turns. It is safe for
// concurrent access, though the turn pipeline only mutates it from the
// control goroutine.
type EventLog struct {
	mu     sync.RWMutex
	events []Event
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add appends a turn and returns the recorded event.
func (l *EventLog) Add(role core.Role, message string) Event {
	ev := Event{
		ID:        core.NewID(),
		Role:      role,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
	return ev
}

// Len returns the number of recorded turns.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// Events returns a defensive copy of the full event slice.
func (l *EventLog) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	events := make([]Event, len(l.events))
	copy(events, l.events)
	return events
}
