package scheduler

import (
	"testing"
	"time"
)

func TestRoundUpToFiveMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "already aligned", in: at(t, 14, 5), want: at(t, 14, 5)},
		{name: "rounds up", in: at(t, 14, 7), want: at(t, 14, 10)},
		{name: "one past boundary", in: at(t, 14, 1), want: at(t, 14, 5)},
		{name: "rolls into next hour", in: at(t, 14, 58), want: at(t, 15, 0)},
		{name: "seconds push past an aligned minute", in: at(t, 14, 5).Add(30 * time.Second), want: at(t, 14, 10)},
		{name: "a single nanosecond pushes past an aligned minute", in: at(t, 14, 5).Add(time.Nanosecond), want: at(t, 14, 10)},
		{name: "seconds within an unaligned minute", in: at(t, 14, 7).Add(59 * time.Second), want: at(t, 14, 10)},
		{name: "seconds roll into the next hour", in: at(t, 14, 58).Add(30 * time.Second), want: at(t, 15, 0)},
		{name: "top of hour unchanged", in: at(t, 14, 0), want: at(t, 14, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := roundUpToFiveMinutes(tc.in); !got.Equal(tc.want) {
				t.Fatalf("roundUpToFiveMinutes(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFindFreeSlot(t *testing.T) {
	t.Parallel()

	t.Run("empty day returns the rounded lower bound", func(t *testing.T) {
		t.Parallel()

		slot, ok := FindFreeSlot(nil, time.Hour, at(t, 10, 0), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if !slot.Equal(at(t, 10, 0)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 10, 0))
		}
	})

	t.Run("lower bound is rounded up before probing", func(t *testing.T) {
		t.Parallel()

		slot, ok := FindFreeSlot(nil, 30*time.Minute, at(t, 14, 7), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if !slot.Equal(at(t, 14, 10)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 14, 10))
		}
	})

	t.Run("slot never starts before a sub-minute lower bound", func(t *testing.T) {
		t.Parallel()

		lower := at(t, 14, 5).Add(30 * time.Second)
		slot, ok := FindFreeSlot(nil, 30*time.Minute, lower, DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if slot.Before(lower) {
			t.Fatalf("slot %v starts before the lower bound %v", slot, lower)
		}
		if !slot.Equal(at(t, 14, 10)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 14, 10))
		}
	})

	t.Run("slot fits before the first busy window", func(t *testing.T) {
		t.Parallel()

		events := []Event{eventAt(t, "busy", 11, 0, 12, 0)}
		slot, ok := FindFreeSlot(events, time.Hour, at(t, 9, 0), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if !slot.Equal(at(t, 9, 0)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 9, 0))
		}
	})

	t.Run("cursor advances past busy windows", func(t *testing.T) {
		t.Parallel()

		events := []Event{
			eventAt(t, "a", 9, 0, 10, 0),
			eventAt(t, "b", 10, 0, 12, 30),
		}
		slot, ok := FindFreeSlot(events, time.Hour, at(t, 9, 0), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if !slot.Equal(at(t, 12, 30)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 12, 30))
		}
	})

	t.Run("gap between busy windows is used when large enough", func(t *testing.T) {
		t.Parallel()

		events := []Event{
			eventAt(t, "a", 9, 0, 10, 0),
			eventAt(t, "b", 11, 0, 12, 0),
		}
		slot, ok := FindFreeSlot(events, time.Hour, at(t, 9, 0), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if !slot.Equal(at(t, 10, 0)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 10, 0))
		}
	})

	t.Run("too narrow gap is skipped", func(t *testing.T) {
		t.Parallel()

		events := []Event{
			eventAt(t, "a", 9, 0, 10, 0),
			eventAt(t, "b", 10, 30, 12, 0),
		}
		slot, ok := FindFreeSlot(events, time.Hour, at(t, 9, 0), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if !slot.Equal(at(t, 12, 0)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 12, 0))
		}
	})

	t.Run("slot never leaves the working envelope", func(t *testing.T) {
		t.Parallel()

		// 20:30 lower bound leaves only 30 free minutes today, so a one hour
		// slot must land at 08:00 the next morning.
		slot, ok := FindFreeSlot(nil, time.Hour, at(t, 20, 30), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		want := at(t, 8, 0).AddDate(0, 0, 1)
		if !slot.Equal(want) {
			t.Fatalf("slot = %v, want %v", slot, want)
		}
	})

	t.Run("fully booked lookahead reports no slot", func(t *testing.T) {
		t.Parallel()

		events := make([]Event, 0, DefaultSearchDays)
		for day := 0; day < DefaultSearchDays; day++ {
			events = append(events, Event{
				ID:    "full",
				Title: "All day block",
				Start: at(t, 8, 0).AddDate(0, 0, day),
				End:   at(t, 21, 0).AddDate(0, 0, day),
			})
		}

		if _, ok := FindFreeSlot(events, 30*time.Minute, at(t, 8, 0), DefaultSearchDays); ok {
			t.Fatal("expected no slot within the lookahead")
		}
	})

	t.Run("midnight spanning event is only busy on its start date", func(t *testing.T) {
		t.Parallel()

		overnight := Event{
			ID:    "overnight",
			Title: "Overnight",
			Start: time.Date(2024, time.March, 14, 20, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		}

		slot, ok := FindFreeSlot([]Event{overnight}, 2*time.Hour, at(t, 20, 0), DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		// The next day is treated as free even though the event runs into it.
		want := at(t, 8, 0).AddDate(0, 0, 1)
		if !slot.Equal(want) {
			t.Fatalf("slot = %v, want %v", slot, want)
		}
	})

	t.Run("returned slot respects lower bound and busy windows", func(t *testing.T) {
		t.Parallel()

		events := []Event{
			eventAt(t, "a", 8, 0, 9, 30),
			eventAt(t, "b", 9, 30, 13, 0),
			eventAt(t, "c", 14, 0, 16, 0),
		}
		lower := at(t, 9, 0)
		duration := 45 * time.Minute

		slot, ok := FindFreeSlot(events, duration, lower, DefaultSearchDays)
		if !ok {
			t.Fatal("expected a slot")
		}
		if slot.Before(lower) {
			t.Fatalf("slot %v precedes lower bound %v", slot, lower)
		}
		proposed := Window{Start: slot, End: slot.Add(duration)}
		for _, ev := range events {
			if proposed.Overlaps(ev.Window()) {
				t.Fatalf("slot %v overlaps busy event %s", slot, ev.ID)
			}
		}
		if !slot.Equal(at(t, 13, 0)) {
			t.Fatalf("slot = %v, want %v", slot, at(t, 13, 0))
		}
	})
}
