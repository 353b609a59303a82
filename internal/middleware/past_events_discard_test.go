package middleware

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestPastEventsDiscard_PassesThroughByDefault(t *testing.T) {
	m := NewPastEventsDiscard()
	ev := event.Event{SourceID: 1, Type: event.Keyboard{Key: event.Key("a"), Value: "a", HasValue: true, Status: event.Pressed}}

	got := m.Next(ev, nil)
	if _, ok := got.(event.Keyboard); !ok {
		t.Fatalf("expected Keyboard passthrough, got %T", got)
	}
}

func TestPastEventsDiscard_DiscardPreviousDropsOlderEvents(t *testing.T) {
	m := NewPastEventsDiscard()

	m.Next(event.Event{SourceID: 5, Type: event.DiscardPrevious{MinimumSourceID: 10}}, nil)

	old := m.Next(event.Event{SourceID: 7, Type: event.Keyboard{Key: event.Key("a"), Value: "a", HasValue: true, Status: event.Pressed}}, nil)
	if _, ok := old.(event.Skipped); !ok {
		t.Fatalf("expected Skipped for id below threshold, got %T", old)
	}

	fresh := m.Next(event.Event{SourceID: 10, Type: event.Keyboard{Key: event.Key("a"), Value: "a", HasValue: true, Status: event.Pressed}}, nil)
	if _, ok := fresh.(event.Skipped); ok {
		t.Fatalf("expected event at threshold to pass through, got Skipped")
	}
}

func TestPastEventsDiscard_DiscardBetweenIsClosedWindow(t *testing.T) {
	m := NewPastEventsDiscard()

	m.Next(event.Event{SourceID: 1, Type: event.DiscardBetween{Start: 3, End: 6}}, nil)

	cases := []struct {
		id      event.SourceID
		dropped bool
	}{
		{2, false},
		{3, true},
		{5, true},
		{6, false},
		{100, false},
	}
	for _, c := range cases {
		got := m.Next(event.Event{SourceID: c.id, Type: event.Keyboard{Key: event.Key("a"), Value: "a", HasValue: true, Status: event.Pressed}}, nil)
		_, skipped := got.(event.Skipped)
		if skipped != c.dropped {
			t.Fatalf("id %d: expected dropped=%v, got %v", c.id, c.dropped, skipped)
		}
	}
}

func TestPastEventsDiscard_DiscardPreviousReplacesEarlierWindow(t *testing.T) {
	m := NewPastEventsDiscard()

	m.Next(event.Event{SourceID: 1, Type: event.DiscardBetween{Start: 3, End: 6}}, nil)
	m.Next(event.Event{SourceID: 7, Type: event.DiscardPrevious{MinimumSourceID: 20}}, nil)

	got := m.Next(event.Event{SourceID: 4, Type: event.Keyboard{Key: event.Key("a"), Value: "a", HasValue: true, Status: event.Pressed}}, nil)
	if _, ok := got.(event.Skipped); !ok {
		t.Fatalf("expected id 4 to now be dropped under the replaced window, got %T", got)
	}

	got2 := m.Next(event.Event{SourceID: 20, Type: event.Keyboard{Key: event.Key("a"), Value: "a", HasValue: true, Status: event.Pressed}}, nil)
	if _, ok := got2.(event.Skipped); ok {
		t.Fatalf("expected id 20 to pass through, got Skipped")
	}
}
