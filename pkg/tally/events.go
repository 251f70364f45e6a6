package tally

import "time"

// EventKind names a category of published events.
type EventKind string

const (
	// EventError is published for every completed call with a non-2xx status.
	EventError EventKind = "error"
	// EventResponse is published for every completed call.
	EventResponse EventKind = "response"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k == EventError || k == EventResponse
}

// Event is the value handed to a Listener. It is either a ResponseEvent or an ErrorEvent.
type Event interface {
	Kind() EventKind
}

// Listener receives published events.
type Listener func(Event)

// Subscription identifies a registered listener.
type Subscription uint64

// ResponseEvent describes one completed call.
type ResponseEvent struct {
	Status   int           `json:"status"   yaml:"status"`
	URL      string        `json:"url"      yaml:"url"`
	Method   string        `json:"method"   yaml:"method"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	OK       bool          `json:"ok"       yaml:"ok"`
}

// Kind implements Event.
func (ResponseEvent) Kind() EventKind {
	return EventResponse
}

// ErrorEvent describes one completed call that ended with a non-2xx status.
// Message, Body and RequestID are empty when unavailable.
type ErrorEvent struct {
	ResponseEvent

	StatusText string `json:"status_text"          yaml:"status_text"`
	Message    string `json:"message,omitempty"    yaml:"message,omitempty"`
	Body       string `json:"body,omitempty"       yaml:"body,omitempty"`
	RequestID  string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}

// Kind implements Event.
func (ErrorEvent) Kind() EventKind {
	return EventError
}
