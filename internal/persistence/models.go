package persistence

import "time"

// Event represents a calendar entry stored in persistence.
type Event struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Place     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
