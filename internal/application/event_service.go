package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/example/calendar-resolver/internal/narrator"
	"github.com/example/calendar-resolver/internal/persistence"
	"github.com/example/calendar-resolver/internal/scheduler"
)

// EventRepository captures the persistence interactions needed by the service.
type EventRepository interface {
	CreateEvent(ctx context.Context, event Event) (Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
	UpdateEventWindow(ctx context.Context, id string, start, end time.Time) error
	DeleteAllEvents(ctx context.Context) error
}

// EventService orchestrates validation, conflict detection, and rescheduling
// suggestions. It holds no mutable state of its own; every computation is a
// pure function of the repository snapshot it reads.
type EventService struct {
	events      EventRepository
	narrator    narrator.Narrator
	searchDays  int
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewEventService wires dependencies for event operations. A nil narrator
// falls back to the no-op implementation; searchDays below 1 falls back to
// the default lookahead.
func NewEventService(events EventRepository, explain narrator.Narrator, searchDays int, idGenerator func() string, now func() time.Time) *EventService {
	if explain == nil {
		explain = narrator.Noop{}
	}
	if searchDays < 1 {
		searchDays = scheduler.DefaultSearchDays
	}
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &EventService{
		events:      events,
		narrator:    explain,
		searchDays:  searchDays,
		idGenerator: idGenerator,
		now:         now,
	}
}

// NewEventServiceWithLogger constructs an EventService that logs through the
// supplied logger.
func NewEventServiceWithLogger(events EventRepository, explain narrator.Narrator, searchDays int, idGenerator func() string, now func() time.Time, logger *slog.Logger) *EventService {
	svc := NewEventService(events, explain, searchDays, idGenerator, now)
	svc.logger = defaultLogger(logger)
	return svc
}

// CreateEvent validates the input before delegating to persistence. A window
// whose end is not strictly after its start is rejected, never corrected.
func (s *EventService) CreateEvent(ctx context.Context, input EventInput) (Event, error) {
	if s == nil || s.events == nil {
		return Event{}, fmt.Errorf("event repository not configured")
	}

	vErr := &ValidationError{}
	validateEventInput(input, vErr)
	if vErr.HasErrors() {
		return Event{}, vErr
	}

	createdAt := s.now()
	event := Event{
		ID:        s.idGenerator(),
		Title:     strings.TrimSpace(input.Title),
		Start:     input.Start,
		End:       input.End,
		Place:     input.Place,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	persisted, err := s.events.CreateEvent(ctx, event)
	if err != nil {
		return Event{}, mapRepoError(err)
	}

	serviceLogger(ctx, s.logger, "create_event", "event_id", persisted.ID).InfoContext(ctx, "event created")
	return persisted, nil
}

// ListEvents returns the current snapshot sorted by start time ascending,
// ties broken by ID. This ordering is the precondition for conflict
// detection and free-slot search.
func (s *EventService) ListEvents(ctx context.Context) ([]Event, error) {
	if s == nil || s.events == nil {
		return nil, fmt.Errorf("event repository not configured")
	}

	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}

	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start.Equal(ordered[j].Start) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].Start.Before(ordered[j].Start)
	})

	return ordered, nil
}

// DetectConflicts recomputes all pairwise overlaps from the current snapshot.
func (s *EventService) DetectConflicts(ctx context.Context) ([]ConflictPair, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	conflicts := scheduler.DetectConflicts(toSchedulerEvents(events))
	if len(conflicts) == 0 {
		return nil, nil
	}

	pairs := make([]ConflictPair, 0, len(conflicts))
	for _, c := range conflicts {
		pairs = append(pairs, ConflictPair{A: fromSchedulerEvent(c.A), B: fromSchedulerEvent(c.B)})
	}
	return pairs, nil
}

// BuildSuggestions proposes one relocation per conflicting pair, each
// computed against the same snapshot. Suggestions in a batch are not
// cross-checked against each other's proposed positions, and the fallback
// placement after a fully booked lookahead may itself still conflict.
// Narrator failures are swallowed; affected suggestions simply carry no
// explanation.
func (s *EventService) BuildSuggestions(ctx context.Context) ([]Suggestion, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	proposed := scheduler.BuildSuggestions(toSchedulerEvents(events), s.searchDays)
	if len(proposed) == 0 {
		return nil, nil
	}

	suggestions := make([]Suggestion, 0, len(proposed))
	for _, p := range proposed {
		suggestion := Suggestion{
			MoveEvent: fromSchedulerEvent(p.MoveEvent),
			Anchor:    fromSchedulerEvent(p.Anchor),
			NewStart:  p.NewStart,
			NewEnd:    p.NewEnd,
			Reason:    p.Reason,
		}
		suggestion.Explanation = s.explain(ctx, p)
		suggestions = append(suggestions, suggestion)
	}

	serviceLogger(ctx, s.logger, "build_suggestions").InfoContext(ctx, "suggestions built", "count", len(suggestions))
	return suggestions, nil
}

// ApplySuggestion overwrites the stored window of the moved event. The write
// is unconditional; concurrent mutation of the same event between suggestion
// and apply is a known race this service does not guard against. Applying
// the same suggestion twice leaves the same stored window as applying it
// once.
func (s *EventService) ApplySuggestion(ctx context.Context, params ApplySuggestionParams) error {
	if s == nil || s.events == nil {
		return fmt.Errorf("event repository not configured")
	}

	if _, err := scheduler.NewWindow(params.NewStart, params.NewEnd); err != nil {
		vErr := &ValidationError{}
		vErr.add("time", "start must be before end")
		return vErr
	}

	if err := s.events.UpdateEventWindow(ctx, params.EventID, params.NewStart, params.NewEnd); err != nil {
		return mapRepoError(err)
	}

	serviceLogger(ctx, s.logger, "apply_suggestion", "event_id", params.EventID).InfoContext(ctx, "suggestion applied")
	return nil
}

// ClearEvents removes every stored event.
func (s *EventService) ClearEvents(ctx context.Context) error {
	if s == nil || s.events == nil {
		return fmt.Errorf("event repository not configured")
	}
	if err := s.events.DeleteAllEvents(ctx); err != nil {
		return mapRepoError(err)
	}
	serviceLogger(ctx, s.logger, "clear_events").InfoContext(ctx, "events cleared")
	return nil
}

func (s *EventService) explain(ctx context.Context, p scheduler.Suggestion) string {
	req := narrator.Request{
		EventTitle: p.MoveEvent.Title,
		Original:   p.MoveEvent.Window(),
		Proposed:   scheduler.Window{Start: p.NewStart, End: p.NewEnd},
	}

	text, err := s.narrator.Explain(ctx, req)
	if err != nil {
		if !errors.Is(err, narrator.ErrUnavailable) {
			serviceLogger(ctx, s.logger, "build_suggestions").WarnContext(ctx, "narrator failed", "error", err, "error_kind", ErrorKind(err))
		}
		return ""
	}
	return text
}

func validateEventInput(input EventInput, vErr *ValidationError) {
	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}

	if input.Start.IsZero() {
		vErr.add("start", "start is required")
	}
	if input.End.IsZero() {
		vErr.add("end", "end is required")
	}

	if !input.Start.IsZero() && !input.End.IsZero() {
		if _, err := scheduler.NewWindow(input.Start, input.End); err != nil {
			vErr.add("time", "start must be before end")
		}
	}
}

func toSchedulerEvents(events []Event) []scheduler.Event {
	converted := make([]scheduler.Event, 0, len(events))
	for _, ev := range events {
		converted = append(converted, scheduler.Event{
			ID:    ev.ID,
			Title: ev.Title,
			Start: ev.Start,
			End:   ev.End,
			Place: ev.Place,
		})
	}
	return converted
}

func fromSchedulerEvent(ev scheduler.Event) Event {
	return Event{
		ID:    ev.ID,
		Title: ev.Title,
		Start: ev.Start,
		End:   ev.End,
		Place: ev.Place,
	}
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, persistence.ErrDuplicate) {
		return ErrAlreadyExists
	}
	return err
}
