package middleware

import "github.com/espanso/espanso-core/internal/event"

// Exit is stage 20, the last stage in the chain: on ExitRequested it emits
// the terminal Exit event that breaks the engine loop (spec §4.2 step 20).
type Exit struct{}

func NewExit() *Exit {
	return &Exit{}
}

func (*Exit) Name() string { return "Exit" }

func (*Exit) Next(ev event.Event, _ Dispatch) event.Type {
	req, ok := ev.Type.(event.ExitRequested)
	if !ok {
		return ev.Type
	}
	return event.Exit{Mode: req.Mode}
}
