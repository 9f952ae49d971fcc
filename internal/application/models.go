package application

import "time"

// EventInput captures caller provided event fields.
type EventInput struct {
	Title string
	Start time.Time
	End   time.Time
	Place string
}

// Event represents a persisted calendar event.
type Event struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Place     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConflictPair describes two events whose windows overlap. Conflicts are
// recomputed from the current snapshot on every request and never cached.
type ConflictPair struct {
	A Event
	B Event
}

// Suggestion proposes a new window for MoveEvent that resolves a conflict
// with Anchor. Explanation is optional narrator-provided prose; an empty
// value means the narrator was unavailable and carries no significance for
// correctness.
type Suggestion struct {
	MoveEvent   Event
	Anchor      Event
	NewStart    time.Time
	NewEnd      time.Time
	Reason      string
	Explanation string
}

// ApplySuggestionParams wraps the data required to apply an accepted
// suggestion.
type ApplySuggestionParams struct {
	EventID  string
	NewStart time.Time
	NewEnd   time.Time
}
