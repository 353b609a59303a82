package middleware

import (
	"time"

	"github.com/espanso/espanso-core/internal/event"
)

// DefaultDoubleTapWindow is how long a second toggle-key press may follow
// the first and still count as a double-tap, when no explicit window is
// configured.
const DefaultDoubleTapWindow = 500 * time.Millisecond

// Clock returns the current time. Tests inject a deterministic one; callers
// otherwise default to time.Now.
type Clock func() time.Time

// Disable is stage 2: it tracks the enabled flag and detects a double-tap
// of a configured toggle key, emitting Enabled/Disabled. While disabled it
// rewrites every Keyboard event to NOOP so nothing downstream ever sees a
// keystroke (spec §4.2 step 2).
type Disable struct {
	toggleKey event.Key
	window    time.Duration
	now       Clock

	enabled      bool
	lastPressAt  time.Time
	hasLastPress bool
}

// DisableOption configures a Disable middleware at construction time.
type DisableOption func(*Disable)

// WithToggleKey sets the key whose double-tap toggles the enabled flag. The
// zero value, event.Key(""), never matches any Keyboard event, disabling
// double-tap detection entirely.
func WithToggleKey(k event.Key) DisableOption {
	return func(d *Disable) { d.toggleKey = k }
}

// WithDoubleTapWindow overrides DefaultDoubleTapWindow.
func WithDoubleTapWindow(window time.Duration) DisableOption {
	return func(d *Disable) { d.window = window }
}

// WithClock overrides the default time.Now, for deterministic tests.
func WithClock(now Clock) DisableOption {
	return func(d *Disable) { d.now = now }
}

// NewDisable builds a Disable middleware, starting enabled.
func NewDisable(opts ...DisableOption) *Disable {
	d := &Disable{
		window:  DefaultDoubleTapWindow,
		now:     time.Now,
		enabled: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (*Disable) Name() string { return "Disable" }

func (d *Disable) Next(ev event.Event, _ Dispatch) event.Type {
	switch t := ev.Type.(type) {
	case event.EnableRequest:
		d.enabled = true
		return event.Enabled{}
	case event.DisableRequest:
		d.enabled = false
		return event.Disabled{}
	case event.ToggleRequest:
		return d.toggle()
	case event.Keyboard:
		if d.isToggleTap(t) {
			return d.toggle()
		}
		if !d.enabled {
			return event.NOOP{}
		}
		return t
	default:
		return ev.Type
	}
}

func (d *Disable) toggle() event.Type {
	if d.enabled {
		d.enabled = false
		return event.Disabled{}
	}
	d.enabled = true
	return event.Enabled{}
}

func (d *Disable) isToggleTap(k event.Keyboard) bool {
	if d.toggleKey == "" || k.Key != d.toggleKey || k.Status != event.Pressed {
		return false
	}

	now := d.now()
	isDoubleTap := d.hasLastPress && now.Sub(d.lastPressAt) <= d.window
	d.lastPressAt = now
	d.hasLastPress = true
	return isDoubleTap
}
