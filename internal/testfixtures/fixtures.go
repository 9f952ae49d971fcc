package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/calendar-resolver/internal/application"
	"github.com/example/calendar-resolver/internal/persistence"
	"github.com/example/calendar-resolver/internal/scheduler"
)

var eventCounter uint64

var referenceTime = time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
// It falls on a weekday morning inside the working-hours envelope.
func ReferenceTime() time.Time {
	return referenceTime
}

// EventFixture represents a deterministic event record that can be
// materialised for application, persistence, or scheduler tests.
type EventFixture struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Place     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventOption configures the generated event fixture.
type EventOption func(*EventFixture)

// NewEventFixture returns a deterministic event fixture with optional
// overrides. Successive fixtures are placed back to back so they do not
// conflict unless a test arranges them to.
func NewEventFixture(opts ...EventOption) EventFixture {
	idx := atomic.AddUint64(&eventCounter, 1)
	start := referenceTime.Add(time.Duration(idx) * 2 * time.Hour)
	fixture := EventFixture{
		ID:        fmt.Sprintf("event-%03d", idx),
		Title:     fmt.Sprintf("Event %03d", idx),
		Start:     start,
		End:       start.Add(time.Hour),
		Place:     "Room A",
		CreatedAt: referenceTime,
		UpdatedAt: referenceTime,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithWindow overrides the fixture's time window.
func WithWindow(start, end time.Time) EventOption {
	return func(f *EventFixture) {
		f.Start = start
		f.End = end
	}
}

// WithTitle overrides the fixture's title.
func WithTitle(title string) EventOption {
	return func(f *EventFixture) {
		f.Title = title
	}
}

// Application converts the fixture into the application layer model.
func (f EventFixture) Application() application.Event {
	return application.Event{
		ID:        f.ID,
		Title:     f.Title,
		Start:     f.Start,
		End:       f.End,
		Place:     f.Place,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// Persistence converts the fixture into the persistence layer model.
func (f EventFixture) Persistence() persistence.Event {
	return persistence.Event{
		ID:        f.ID,
		Title:     f.Title,
		Start:     f.Start,
		End:       f.End,
		Place:     f.Place,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// Scheduler converts the fixture into the engine's value type.
func (f EventFixture) Scheduler() scheduler.Event {
	return scheduler.Event{
		ID:    f.ID,
		Title: f.Title,
		Start: f.Start,
		End:   f.End,
		Place: f.Place,
	}
}
