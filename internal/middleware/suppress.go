package middleware

import "github.com/espanso/espanso-core/internal/event"

// AppContext identifies the focused application, as reported by the
// platform's window-context provider.
type AppContext struct {
	Class string
	Title string
	Exec  string
}

// SuppressFunc reports whether expansion is disabled for the focused app,
// per the active configuration. It is re-evaluated on every MatchesDetected
// rather than cached, since the focused app can change between keystrokes
// without an explicit event the chain would otherwise observe.
type SuppressFunc func() (AppContext, bool)

// Suppress is stage 7: when the active config disables expansion for the
// focused app, it drops MatchesDetected entirely (spec §4.2 step 7).
type Suppress struct {
	suppressed SuppressFunc
}

func NewSuppress(suppressed SuppressFunc) *Suppress {
	if suppressed == nil {
		suppressed = func() (AppContext, bool) { return AppContext{}, false }
	}
	return &Suppress{suppressed: suppressed}
}

func (*Suppress) Name() string { return "Suppress" }

func (s *Suppress) Next(ev event.Event, _ Dispatch) event.Type {
	if _, ok := ev.Type.(event.MatchesDetected); !ok {
		return ev.Type
	}
	if _, drop := s.suppressed(); drop {
		return event.NOOP{}
	}
	return ev.Type
}
