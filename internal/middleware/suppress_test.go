package middleware

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestSuppress_DropsMatchesWhenSuppressed(t *testing.T) {
	s := NewSuppress(func() (AppContext, bool) { return AppContext{Class: "terminal"}, true })
	got := s.Next(event.Event{Type: event.MatchesDetected{Matches: []event.DetectedMatch{{ID: 1}}}}, nil)
	if _, ok := got.(event.NOOP); !ok {
		t.Fatalf("expected NOOP, got %T", got)
	}
}

func TestSuppress_PassesMatchesWhenNotSuppressed(t *testing.T) {
	s := NewSuppress(func() (AppContext, bool) { return AppContext{}, false })
	ev := event.Event{Type: event.MatchesDetected{Matches: []event.DetectedMatch{{ID: 1}}}}
	got := s.Next(ev, nil)
	if _, ok := got.(event.MatchesDetected); !ok {
		t.Fatalf("expected passthrough, got %T", got)
	}
}

func TestSuppress_IgnoresOtherEvents(t *testing.T) {
	s := NewSuppress(nil)
	got := s.Next(event.Event{Type: event.Heartbeat{}}, nil)
	if _, ok := got.(event.Heartbeat); !ok {
		t.Fatalf("expected passthrough, got %T", got)
	}
}
