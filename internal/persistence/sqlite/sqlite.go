// Package sqlite provides the SQLite-backed event repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/example/calendar-resolver/internal/persistence"
)

const timeLayout = time.RFC3339

// Store implements persistence.EventRepository on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open connects to the database identified by dsn.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite allows a single writer; a one-connection pool also keeps
	// in-memory databases visible across database/sql connections.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the events table when it does not exist yet. The migration
// is idempotent and safe to run on every start.
func (s *Store) Migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS events (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			start_iso  TEXT NOT NULL,
			end_iso    TEXT NOT NULL,
			place      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}
	return nil
}

// CreateEvent inserts a new event record.
func (s *Store) CreateEvent(ctx context.Context, event persistence.Event) error {
	const query = `
		INSERT INTO events (id, title, start_iso, end_iso, place, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Start.Format(timeLayout),
		event.End.Format(timeLayout),
		event.Place,
		event.CreatedAt.Format(timeLayout),
		event.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return persistence.ErrDuplicate
		}
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID.
func (s *Store) GetEvent(ctx context.Context, id string) (persistence.Event, error) {
	const query = `
		SELECT id, title, start_iso, end_iso, place, created_at, updated_at
		FROM events
		WHERE id = ?
	`

	event, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.Event{}, persistence.ErrNotFound
	}
	if err != nil {
		return persistence.Event{}, fmt.Errorf("querying event: %w", err)
	}

	return event, nil
}

// ListEvents returns all events ordered by start time ascending, ties broken
// by ID.
func (s *Store) ListEvents(ctx context.Context) ([]persistence.Event, error) {
	const query = `
		SELECT id, title, start_iso, end_iso, place, created_at, updated_at
		FROM events
		ORDER BY start_iso ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := make([]persistence.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// UpdateEventWindow overwrites the stored time window of an event. The write
// is unconditional; concurrent mutation between read and write is not guarded
// against.
func (s *Store) UpdateEventWindow(ctx context.Context, id string, start, end time.Time) error {
	const query = `
		UPDATE events
		SET start_iso = ?, end_iso = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		start.Format(timeLayout),
		end.Format(timeLayout),
		time.Now().Format(timeLayout),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating event window: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}

	return nil
}

// DeleteAllEvents removes every stored event.
func (s *Store) DeleteAllEvents(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("deleting events: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (persistence.Event, error) {
	var (
		event     persistence.Event
		startISO  string
		endISO    string
		createdAt string
		updatedAt string
	)

	if err := row.Scan(&event.ID, &event.Title, &startISO, &endISO, &event.Place, &createdAt, &updatedAt); err != nil {
		return persistence.Event{}, err
	}

	var err error
	if event.Start, err = time.Parse(timeLayout, startISO); err != nil {
		return persistence.Event{}, fmt.Errorf("parsing start: %w", err)
	}
	if event.End, err = time.Parse(timeLayout, endISO); err != nil {
		return persistence.Event{}, fmt.Errorf("parsing end: %w", err)
	}
	if event.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return persistence.Event{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if event.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return persistence.Event{}, fmt.Errorf("parsing updated_at: %w", err)
	}

	return event, nil
}
