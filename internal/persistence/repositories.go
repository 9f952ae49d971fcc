package persistence

import (
	"context"
	"time"
)

// EventRepository stores calendar events. Implementations serialize concurrent
// access per event; callers rely on that rather than locking themselves.
type EventRepository interface {
	CreateEvent(ctx context.Context, event Event) error
	GetEvent(ctx context.Context, id string) (Event, error)
	// ListEvents returns all events ordered by start time ascending, ties
	// broken by ID. Detection and slot search depend on this ordering.
	ListEvents(ctx context.Context) ([]Event, error)
	// UpdateEventWindow overwrites only the stored time window of an event.
	// The write is unconditional; there is no optimistic-concurrency check.
	UpdateEventWindow(ctx context.Context, id string, start, end time.Time) error
	// DeleteAllEvents removes every stored event.
	DeleteAllEvents(ctx context.Context) error
}
