package middleware

import (
	"testing"
	"time"

	"github.com/espanso/espanso-core/internal/event"
)

func press(k event.Key) event.Event {
	return event.Event{Type: event.Keyboard{Key: k, Status: event.Pressed}}
}

func TestDisable_StartsEnabledAndPassesKeysThrough(t *testing.T) {
	d := NewDisable()
	got := d.Next(press(event.Key("a")), nil)
	if _, ok := got.(event.Keyboard); !ok {
		t.Fatalf("expected passthrough, got %T", got)
	}
}

func TestDisable_ExplicitRequestsToggleFlag(t *testing.T) {
	d := NewDisable()

	got := d.Next(event.Event{Type: event.DisableRequest{}}, nil)
	if _, ok := got.(event.Disabled); !ok {
		t.Fatalf("expected Disabled, got %T", got)
	}

	blocked := d.Next(press(event.Key("a")), nil)
	if _, ok := blocked.(event.NOOP); !ok {
		t.Fatalf("expected NOOP while disabled, got %T", blocked)
	}

	got2 := d.Next(event.Event{Type: event.EnableRequest{}}, nil)
	if _, ok := got2.(event.Enabled); !ok {
		t.Fatalf("expected Enabled, got %T", got2)
	}
}

func TestDisable_DoubleTapOfToggleKeyTogglesFlag(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cur := base
	clock := func() time.Time { return cur }

	d := NewDisable(WithToggleKey(event.KeyControl), WithClock(clock), WithDoubleTapWindow(300*time.Millisecond))

	first := d.Next(press(event.KeyControl), nil)
	if _, ok := first.(event.Enabled); ok {
		t.Fatalf("first tap alone should not toggle, got %T", first)
	}

	cur = cur.Add(100 * time.Millisecond)
	second := d.Next(press(event.KeyControl), nil)
	if _, ok := second.(event.Disabled); !ok {
		t.Fatalf("expected Disabled after double-tap, got %T", second)
	}
}

func TestDisable_DoubleTapOutsideWindowDoesNotToggle(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cur := base
	clock := func() time.Time { return cur }

	d := NewDisable(WithToggleKey(event.KeyControl), WithClock(clock), WithDoubleTapWindow(300*time.Millisecond))

	d.Next(press(event.KeyControl), nil)
	cur = cur.Add(time.Second)
	got := d.Next(press(event.KeyControl), nil)
	if _, ok := got.(event.Keyboard); !ok {
		t.Fatalf("expected passthrough when outside window, got %T", got)
	}
}
