package main

import (
	"context"
	"time"

	"github.com/example/calendar-resolver/internal/application"
	"github.com/example/calendar-resolver/internal/persistence"
	"github.com/example/calendar-resolver/internal/persistence/sqlite"
)

// eventRepositoryAdapter bridges the application repository contract to the
// SQLite store's persistence models.
type eventRepositoryAdapter struct {
	store *sqlite.Store
}

func newEventRepositoryAdapter(store *sqlite.Store) *eventRepositoryAdapter {
	return &eventRepositoryAdapter{store: store}
}

func (a *eventRepositoryAdapter) CreateEvent(ctx context.Context, event application.Event) (application.Event, error) {
	if err := a.store.CreateEvent(ctx, toPersistenceEvent(event)); err != nil {
		return application.Event{}, err
	}
	return event, nil
}

func (a *eventRepositoryAdapter) ListEvents(ctx context.Context) ([]application.Event, error) {
	records, err := a.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]application.Event, 0, len(records))
	for _, record := range records {
		events = append(events, toApplicationEvent(record))
	}
	return events, nil
}

func (a *eventRepositoryAdapter) UpdateEventWindow(ctx context.Context, id string, start, end time.Time) error {
	return a.store.UpdateEventWindow(ctx, id, start, end)
}

func (a *eventRepositoryAdapter) DeleteAllEvents(ctx context.Context) error {
	return a.store.DeleteAllEvents(ctx)
}

func toPersistenceEvent(event application.Event) persistence.Event {
	return persistence.Event{
		ID:        event.ID,
		Title:     event.Title,
		Start:     event.Start,
		End:       event.End,
		Place:     event.Place,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}

func toApplicationEvent(record persistence.Event) application.Event {
	return application.Event{
		ID:        record.ID,
		Title:     record.Title,
		Start:     record.Start,
		End:       record.End,
		Place:     record.Place,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
