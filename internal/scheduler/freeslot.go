package scheduler

import (
	"sort"
	"time"
)

const (
	// DayStartHour is the first hour of the daily working envelope (inclusive).
	DayStartHour = 8
	// DayEndHour is the last hour of the daily working envelope (exclusive).
	DayEndHour = 21
	// DefaultSearchDays bounds how many days FindFreeSlot examines.
	DefaultSearchDays = 7
)

// FindFreeSlot locates the earliest window of the given duration that starts
// no earlier than lowerBound, lies entirely within the daily working envelope
// [08:00, 21:00), and does not intersect any event scheduled that day. Up to
// searchDays calendar days are examined starting from the lower bound's day;
// values below 1 fall back to DefaultSearchDays.
//
// The search is first-fit greedy with ties broken by earliest start. An event
// is only treated as busy on its start date, so a window spanning midnight
// blocks nothing on the following day; this mirrors the per-day bookkeeping
// of the suggestion flow and is an accepted approximation.
//
// The boolean result is false when no day within the lookahead has room.
// That is a normal outcome for the caller to handle, not an error.
func FindFreeSlot(events []Event, duration time.Duration, lowerBound time.Time, searchDays int) (time.Time, bool) {
	if searchDays < 1 {
		searchDays = DefaultSearchDays
	}

	probe := roundUpToFiveMinutes(lowerBound)

	for dayOffset := 0; dayOffset < searchDays; dayOffset++ {
		day := probe.AddDate(0, 0, dayOffset)
		busy := busyWindowsOn(events, day)

		dayStart := atHour(day, DayStartHour)
		dayEnd := atHour(day, DayEndHour)

		cursor := dayStart
		if dayOffset == 0 && probe.After(dayStart) {
			cursor = probe
		}

		if len(busy) == 0 {
			if !cursor.Add(duration).After(dayEnd) {
				return cursor, true
			}
			continue
		}

		for _, b := range busy {
			if !cursor.Add(duration).After(b.Start) {
				return cursor, true
			}
			if b.End.After(cursor) {
				cursor = b.End
			}
		}

		if !cursor.Add(duration).After(dayEnd) {
			return cursor, true
		}
	}

	return time.Time{}, false
}

// roundUpToFiveMinutes advances t to the next 5-minute boundary, leaving it
// unchanged when already aligned. Sub-minute precision counts as past the
// boundary, so the result never precedes t.
func roundUpToFiveMinutes(t time.Time) time.Time {
	minute := t.Minute()
	if t.Second() > 0 || t.Nanosecond() > 0 {
		minute++
	}
	minute = (minute + 4) / 5 * 5
	hourStart := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return hourStart.Add(time.Duration(minute) * time.Minute)
}

// busyWindowsOn collects the windows of events whose start date falls on the
// same calendar day as day, sorted by start then end.
func busyWindowsOn(events []Event, day time.Time) []Window {
	y, m, d := day.Date()

	busy := make([]Window, 0)
	for _, ev := range events {
		ey, em, ed := ev.Start.Date()
		if ey == y && em == m && ed == d {
			busy = append(busy, ev.Window())
		}
	}

	sort.Slice(busy, func(i, j int) bool {
		if busy[i].Start.Equal(busy[j].Start) {
			return busy[i].End.Before(busy[j].End)
		}
		return busy[i].Start.Before(busy[j].Start)
	})

	return busy
}

func atHour(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
