// Package trace provides the progress-event log emitted by the Banker's engine.
// This package has no dependencies on sim/ and stores pure data types.
package trace

import "github.com/google/uuid"

// Observer is notified synchronously of every appended event, in append order.
type Observer func(Event)

// Log is an append-only sequence of events that can be emptied on demand.
// Not safe for concurrent use; the engine drives it from a single caller.
type Log struct {
	id        string
	nextSeq   int
	events    []Event
	observers []Observer
}

// NewLog creates an empty Log with a fresh session ID.
func NewLog() *Log {
	return &Log{
		id:     uuid.New().String(),
		events: make([]Event, 0),
	}
}

// ID returns the current session identifier. Every Clear starts a new session.
func (l *Log) ID() string {
	return l.id
}

// Subscribe registers an observer for all subsequently appended events.
func (l *Log) Subscribe(o Observer) {
	if o == nil {
		return
	}
	l.observers = append(l.observers, o)
}

// Append records one event and notifies observers. Seq keeps increasing across Clear.
func (l *Log) Append(kind Kind, payload any) Event {
	ev := Event{Seq: l.nextSeq, Kind: kind, Payload: payload}
	l.nextSeq++
	l.events = append(l.events, ev)
	for _, o := range l.observers {
		o(ev)
	}
	return ev
}

// Clear discards every retained event. Observers stay registered.
func (l *Log) Clear() {
	l.events = make([]Event, 0)
	l.id = uuid.New().String()
}

// Events returns a copy of the retained events.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of retained events.
func (l *Log) Len() int {
	return len(l.events)
}

// Recorder is an Observer that keeps every event it has seen, including
// events later discarded from the Log by Clear.
type Recorder struct {
	Events []Event
}

// Observe implements Observer; pass rec.Observe to Log.Subscribe.
func (r *Recorder) Observe(ev Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Reset forgets every recorded event.
func (r *Recorder) Reset() {
	r.Events = nil
}
