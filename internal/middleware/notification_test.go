package middleware

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

type recordingNotifier struct {
	titles, bodies []string
}

func (r *recordingNotifier) Notify(title, body string) {
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
}

func TestNotification_RenderingErrorNotifies(t *testing.T) {
	rec := &recordingNotifier{}
	n := NewNotification(rec)
	got := n.Next(event.Event{Type: event.RenderingError{Message: "missing var"}}, nil)
	if _, ok := got.(event.RenderingError); !ok {
		t.Fatalf("expected passthrough, got %T", got)
	}
	if len(rec.bodies) != 1 || rec.bodies[0] != "missing var" {
		t.Fatalf("expected a notification with the error message, got %#v", rec.bodies)
	}
}

func TestNotification_IgnoresUnrelatedEvents(t *testing.T) {
	rec := &recordingNotifier{}
	n := NewNotification(rec)
	n.Next(event.Event{Type: event.Heartbeat{}}, nil)
	if len(rec.bodies) != 0 {
		t.Fatalf("expected no notification, got %#v", rec.bodies)
	}
}
