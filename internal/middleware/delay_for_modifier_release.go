package middleware

import (
	"time"

	"github.com/espanso/espanso-core/internal/event"
)

// DefaultModifierPollInterval is how often DelayForModifierRelease re-polls
// the ModifierStateProvider while waiting.
const DefaultModifierPollInterval = 10 * time.Millisecond

// DefaultModifierWaitCeiling is the hard upper bound on how long
// DelayForModifierRelease will block before giving up and injecting
// anyway.
const DefaultModifierWaitCeiling = 3 * time.Second

// ModifierStateProvider reports whether a conflicting modifier (Shift,
// Ctrl, Alt, Meta) is currently held down, as observed directly from the
// OS rather than through the event stream (the stream may be backed up
// behind the very injection this stage is about to perform).
type ModifierStateProvider interface {
	AnyModifierDown() bool
}

// DelayForModifierRelease is stage 15: before any injection event reaches
// the dispatcher, it polls the ModifierStateProvider and blocks (up to a
// hard ceiling) until no conflicting modifier is down, since injected
// characters are mangled if the user is still holding one (spec §4.2 step
// 15). It is the single suspension point in the whole engine (spec §5).
type DelayForModifierRelease struct {
	provider ModifierStateProvider
	poll     time.Duration
	ceiling  time.Duration
	now      Clock
	sleep    func(time.Duration)
}

// DelayOption configures a DelayForModifierRelease at construction time.
type DelayOption func(*DelayForModifierRelease)

func WithModifierPollInterval(d time.Duration) DelayOption {
	return func(m *DelayForModifierRelease) { m.poll = d }
}

func WithModifierWaitCeiling(d time.Duration) DelayOption {
	return func(m *DelayForModifierRelease) { m.ceiling = d }
}

func withModifierClock(now Clock, sleep func(time.Duration)) DelayOption {
	return func(m *DelayForModifierRelease) { m.now, m.sleep = now, sleep }
}

func NewDelayForModifierRelease(provider ModifierStateProvider, opts ...DelayOption) *DelayForModifierRelease {
	m := &DelayForModifierRelease{
		provider: provider,
		poll:     DefaultModifierPollInterval,
		ceiling:  DefaultModifierWaitCeiling,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (*DelayForModifierRelease) Name() string { return "DelayForModifierRelease" }

func (m *DelayForModifierRelease) Next(ev event.Event, _ Dispatch) event.Type {
	if !isInjection(ev.Type) || m.provider == nil {
		return ev.Type
	}

	deadline := m.now().Add(m.ceiling)
	for m.provider.AnyModifierDown() && m.now().Before(deadline) {
		m.sleep(m.poll)
	}
	return ev.Type
}

func isInjection(t event.Type) bool {
	switch t.(type) {
	case event.TextInject, event.HtmlInject, event.ImageInject, event.KeySequenceInject:
		return true
	default:
		return false
	}
}
