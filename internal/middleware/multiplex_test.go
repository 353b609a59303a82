package middleware

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestMultiplex_TextEffectBecomesRenderingRequested(t *testing.T) {
	lookup := func(id event.MatchID) (event.Match, bool) {
		return event.Match{ID: id, Effect: event.TextEffect{Format: event.FormatPlain}}, true
	}
	m := NewMultiplex(lookup)
	ccm := event.CauseCompensatedMatch{Match: event.DetectedMatch{ID: 1, Trigger: ":hi"}}
	got := m.Next(event.Event{Type: ccm}, nil)
	rr, ok := got.(event.RenderingRequested)
	if !ok || rr.MatchID != 1 || rr.Trigger != ":hi" {
		t.Fatalf("expected RenderingRequested, got %#v", got)
	}
}

func TestMultiplex_ImageEffectBecomesImageRequested(t *testing.T) {
	lookup := func(id event.MatchID) (event.Match, bool) {
		return event.Match{ID: id, Effect: event.ImageEffect{Path: "/tmp/x.png"}}, true
	}
	m := NewMultiplex(lookup)
	ccm := event.CauseCompensatedMatch{Match: event.DetectedMatch{ID: 2}}
	got := m.Next(event.Event{Type: ccm}, nil)
	ir, ok := got.(event.ImageRequested)
	if !ok || ir.Path != "/tmp/x.png" {
		t.Fatalf("expected ImageRequested, got %#v", got)
	}
}

func TestMultiplex_UnknownMatchEmitsProcessingErrorAndNOOP(t *testing.T) {
	m := NewMultiplex(func(event.MatchID) (event.Match, bool) { return event.Match{}, false })
	var dispatched []event.Event
	got := m.Next(event.Event{Type: event.CauseCompensatedMatch{Match: event.DetectedMatch{ID: 9}}}, func(e event.Event) {
		dispatched = append(dispatched, e)
	})
	if _, ok := got.(event.NOOP); !ok {
		t.Fatalf("expected NOOP, got %T", got)
	}
	if len(dispatched) != 1 {
		t.Fatalf("expected a ProcessingError to be dispatched, got %d", len(dispatched))
	}
}
