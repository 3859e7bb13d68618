package storage

import "time"

type Kind string

const (
	KindQuizAnswer Kind = "quiz_answer"
	KindGeneration Kind = "generation"
	KindTutorChat  Kind = "tutor_chat"
)

// Event is a single study interaction. It is intentionally simple to
// allow future DB implementations. Events are expected to be appended
// in chronological order.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"user_id"`
	Kind      Kind      `json:"kind"`

	// quiz_answer
	Correct *bool `json:"correct,omitempty"`

	// generation: what was generated and how many items the set accepted
	ContentKind string `json:"content_kind,omitempty"`
	Items       int    `json:"items,omitempty"`
	Topic       string `json:"topic,omitempty"`
}

// Recorder abstracts persistence of study events.
// LoadEvents should return events in chronological order.
// AppendEvent should atomically append a new event.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendEvent(event Event) error
	LoadEvents() ([]Event, error)
}
