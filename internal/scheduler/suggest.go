package scheduler

import (
	"fmt"
	"time"
)

// ReasonNoFreeSlot is attached to fallback suggestions produced when the
// lookahead window holds no free slot. The fallback places the mover
// immediately after the anchor ends and may itself still conflict with other
// events; it is a last-resort placement, not a guarantee of conflict freedom.
const ReasonNoFreeSlot = "no free slot within lookahead; placed immediately after conflicting event"

// reasonResolveOverlap labels suggestions backed by a found free slot.
func reasonResolveOverlap(anchorTitle string) string {
	return fmt.Sprintf("resolve overlap with '%s'", anchorTitle)
}

// Suggestion proposes relocating MoveEvent to [NewStart, NewEnd). The
// proposed window always preserves the original duration of MoveEvent in
// whole minutes.
type Suggestion struct {
	MoveEvent Event
	Anchor    Event
	NewStart  time.Time
	NewEnd    time.Time
	Reason    string
}

// BuildSuggestions proposes one relocation per conflicting pair. The event
// with the later (or equal) start time moves; the other acts as the anchor
// and stays fixed. The free-slot search starts at the anchor's end, so a
// mover is never proposed to begin before the event it collided with ends.
//
// Every suggestion is computed against the supplied snapshot. Suggestions in
// the same batch are not cross-checked against each other's proposed, not
// yet applied positions, and the no-slot fallback can itself still conflict.
func BuildSuggestions(events []Event, searchDays int) []Suggestion {
	conflicts := DetectConflicts(events)
	if len(conflicts) == 0 {
		return nil
	}

	suggestions := make([]Suggestion, 0, len(conflicts))
	for _, pair := range conflicts {
		toMove, anchor := pair.B, pair.A
		if toMove.Start.Before(anchor.Start) {
			toMove, anchor = anchor, toMove
		}

		// Whole-minute granularity; fractional seconds truncate toward zero.
		duration := toMove.End.Sub(toMove.Start).Truncate(time.Minute)

		// The mover's own current window must not block its relocation.
		slot, ok := FindFreeSlot(eventsExcluding(events, toMove.ID), duration, anchor.End, searchDays)

		suggestion := Suggestion{
			MoveEvent: toMove,
			Anchor:    anchor,
		}
		if ok {
			suggestion.NewStart = slot
			suggestion.NewEnd = slot.Add(duration)
			suggestion.Reason = reasonResolveOverlap(anchor.Title)
		} else {
			suggestion.NewStart = anchor.End
			suggestion.NewEnd = anchor.End.Add(duration)
			suggestion.Reason = ReasonNoFreeSlot
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}

func eventsExcluding(events []Event, id string) []Event {
	kept := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.ID == id {
			continue
		}
		kept = append(kept, ev)
	}
	return kept
}
