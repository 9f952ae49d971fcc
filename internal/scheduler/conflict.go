package scheduler

import "time"

// Event represents a calendar entry in the conflict-resolution domain.
type Event struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	Place string
}

// Window returns the event's time window.
func (e Event) Window() Window {
	return Window{Start: e.Start, End: e.End}
}

// ConflictPair is an unordered pair of distinct events whose windows overlap.
// A conflict is a transient observation recomputed from the current snapshot;
// it is never cached or persisted.
type ConflictPair struct {
	A Event
	B Event
}

// DetectConflicts returns every pair of events whose windows overlap under
// half-open semantics. The input is expected to be sorted by start time
// ascending; the detector does not enforce this. Pairs are emitted in (i, j)
// index order over the input with i < j.
//
// The scan is an exhaustive O(n²) comparison. Event counts per calendar are
// small, so no interval index is needed.
func DetectConflicts(events []Event) []ConflictPair {
	if len(events) < 2 {
		return nil
	}

	conflicts := make([]ConflictPair, 0)
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if events[i].Window().Overlaps(events[j].Window()) {
				conflicts = append(conflicts, ConflictPair{A: events[i], B: events[j]})
			}
		}
	}

	return conflicts
}
