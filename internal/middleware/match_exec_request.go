package middleware

import "github.com/espanso/espanso-core/internal/event"

// MatchExecRequest is stage 4: it translates explicit external invocations
// (a CLI/IPC request to fire a match by id, or a platform-registered
// global hotkey) into a MatchesDetected carrying a single match with no
// typed trigger, so the rest of the chain treats it exactly like a typed
// expansion from here on (spec §4.2 step 4).
type MatchExecRequest struct {
	hotkeys map[int]event.MatchID
}

// MatchExecRequestOption configures a MatchExecRequest middleware.
type MatchExecRequestOption func(*MatchExecRequest)

// WithHotkeyBindings sets the hotkey-id -> match-id table used to resolve
// HotKey events.
func WithHotkeyBindings(bindings map[int]event.MatchID) MatchExecRequestOption {
	return func(m *MatchExecRequest) { m.hotkeys = bindings }
}

func NewMatchExecRequest(opts ...MatchExecRequestOption) *MatchExecRequest {
	m := &MatchExecRequest{hotkeys: map[int]event.MatchID{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (*MatchExecRequest) Name() string { return "MatchExecRequest" }

func (m *MatchExecRequest) Next(ev event.Event, _ Dispatch) event.Type {
	switch t := ev.Type.(type) {
	case event.MatchExecRequest:
		return event.MatchesDetected{Matches: []event.DetectedMatch{{ID: t.ID, Args: t.Args}}}
	case event.HotKey:
		id, ok := m.hotkeys[t.ID]
		if !ok {
			return ev.Type
		}
		return event.MatchesDetected{Matches: []event.DetectedMatch{{ID: id}}}
	default:
		return ev.Type
	}
}
