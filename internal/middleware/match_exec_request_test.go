package middleware

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestMatchExecRequest_DirectRequestBecomesMatchesDetected(t *testing.T) {
	m := NewMatchExecRequest()
	got := m.Next(event.Event{Type: event.MatchExecRequest{ID: 42, Args: map[string]string{"a": "b"}}}, nil)
	md, ok := got.(event.MatchesDetected)
	if !ok || len(md.Matches) != 1 || md.Matches[0].ID != 42 {
		t.Fatalf("expected MatchesDetected with id 42, got %#v", got)
	}
}

func TestMatchExecRequest_BoundHotkeyResolves(t *testing.T) {
	m := NewMatchExecRequest(WithHotkeyBindings(map[int]event.MatchID{7: 1000000007}))
	got := m.Next(event.Event{Type: event.HotKey{ID: 7}}, nil)
	md, ok := got.(event.MatchesDetected)
	if !ok || md.Matches[0].ID != 1000000007 {
		t.Fatalf("expected resolved match id, got %#v", got)
	}
}

func TestMatchExecRequest_UnboundHotkeyPassesThrough(t *testing.T) {
	m := NewMatchExecRequest()
	got := m.Next(event.Event{Type: event.HotKey{ID: 99}}, nil)
	if _, ok := got.(event.HotKey); !ok {
		t.Fatalf("expected passthrough, got %T", got)
	}
}
