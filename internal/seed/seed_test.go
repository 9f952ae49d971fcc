package seed

import (
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
events:
  - title: Design sync
    start: 2024-03-14T09:00
    end: 2024-03-14T10:00
    place: Room A
  - title: Planning
    start: 2024-03-14T11:30
    end: 2024-03-14T12:15
`)

	inputs, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}

	first := inputs[0]
	if first.Title != "Design sync" || first.Place != "Room A" {
		t.Fatalf("first input = %+v", first)
	}
	wantStart := time.Date(2024, time.March, 14, 9, 0, 0, 0, time.Local)
	if !first.Start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", first.Start, wantStart)
	}

	second := inputs[1]
	if got := second.End.Sub(second.Start); got != 45*time.Minute {
		t.Fatalf("second window length = %v", got)
	}
	if second.Place != "" {
		t.Fatalf("place should default to empty, got %q", second.Place)
	}
}

func TestParse_RejectsBadTimestamps(t *testing.T) {
	t.Parallel()

	data := []byte(`
events:
  - title: Broken
    start: tomorrow
    end: 2024-03-14T10:00
`)

	_, err := Parse(data)
	if err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
	if !strings.Contains(err.Error(), "Broken") {
		t.Fatalf("error should name the offending event, got %v", err)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	inputs, err := Parse([]byte("events: []\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 0 {
		t.Fatalf("expected no inputs, got %d", len(inputs))
	}
}
