package middleware

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

type fakeEngine struct {
	matches []event.DetectedMatch
	ok      bool
}

func (f fakeEngine) Handle(event.Type) ([]event.DetectedMatch, bool) { return f.matches, f.ok }

func TestMatcherStage_NoMatchPassesThrough(t *testing.T) {
	s := NewMatcherStage(fakeEngine{ok: false})
	ev := event.Event{Type: event.Keyboard{Key: event.Key("a")}}
	got := s.Next(ev, nil)
	if _, ok := got.(event.Keyboard); !ok {
		t.Fatalf("expected passthrough, got %T", got)
	}
}

func TestMatcherStage_MatchBecomesMatchesDetected(t *testing.T) {
	dm := event.DetectedMatch{ID: 1, Trigger: ":hi"}
	s := NewMatcherStage(fakeEngine{matches: []event.DetectedMatch{dm}, ok: true})
	got := s.Next(event.Event{Type: event.Keyboard{Key: event.Key("i")}}, nil)
	md, ok := got.(event.MatchesDetected)
	if !ok || len(md.Matches) != 1 || md.Matches[0].ID != 1 {
		t.Fatalf("expected MatchesDetected{1}, got %#v", got)
	}
}
