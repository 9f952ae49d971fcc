package scheduler

import (
	"errors"
	"time"
)

// ErrInvalidWindow indicates a time window whose end is not strictly after its start.
var ErrInvalidWindow = errors.New("scheduler: window end must be after start")

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow validates and constructs a window. Inputs with End <= Start are
// rejected, never corrected.
func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// Duration returns the window length.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps reports whether two half-open windows intersect. Touching
// endpoints (w.End == other.Start) do not count as overlapping.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}
