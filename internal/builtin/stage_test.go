package builtin

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func newTestStage(t *testing.T) *Stage {
	t.Helper()
	reg, err := NewRegistry(Catalog(SearchOptions{HasTrigger: true, Trigger: ":s"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewStage(reg, fakeContext{configInfo: "cfg", appInfo: "app"})
}

func TestStage_ResolvesBuiltinMatch(t *testing.T) {
	s := newTestStage(t)
	ev := event.Event{Type: event.CauseCompensatedMatch{
		Match: event.DetectedMatch{ID: idShowLogs},
	}}
	out := s.Next(ev, nil)
	if _, ok := out.(event.ShowLogs); !ok {
		t.Fatalf("got %T, want ShowLogs", out)
	}
}

func TestStage_PassesThroughNonBuiltinMatch(t *testing.T) {
	s := newTestStage(t)
	ev := event.Event{Type: event.CauseCompensatedMatch{
		Match: event.DetectedMatch{ID: event.MatchID(7)},
	}}
	out := s.Next(ev, nil)
	ccm, ok := out.(event.CauseCompensatedMatch)
	if !ok {
		t.Fatalf("got %T, want passthrough CauseCompensatedMatch", out)
	}
	if ccm.Match.ID != event.MatchID(7) {
		t.Fatalf("match mutated: got id %d", ccm.Match.ID)
	}
}

func TestStage_PassesThroughOtherEventTypes(t *testing.T) {
	s := newTestStage(t)
	ev := event.Event{Type: event.ShowLogs{}}
	out := s.Next(ev, nil)
	if _, ok := out.(event.ShowLogs); !ok {
		t.Fatalf("got %T, want passthrough ShowLogs", out)
	}
}

func TestStage_Name(t *testing.T) {
	s := NewStage(nil, nil)
	if s.Name() != "Builtin" {
		t.Fatalf("got %q", s.Name())
	}
}
