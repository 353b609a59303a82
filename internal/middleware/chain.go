package middleware

import "github.com/espanso/espanso-core/internal/event"

// Dispatch enqueues an auxiliary event back to the engine's post-dispatch
// queue, to be observed before the next raw keystroke (spec §4.2).
type Dispatch func(event.Event)

// Middleware is one ordered stage of the chain. Next receives the full
// envelope (so a stage can read SourceID for e.g. discard-window checks)
// but returns only the possibly-rewritten Type: SourceID is constant for
// the whole chain run, since derived events inherit their parent's
// SourceID (spec §3, "Monotonic source id").
type Middleware interface {
	Name() string
	Next(ev event.Event, dispatch Dispatch) event.Type
}

// Chain runs a fixed, ordered list of middlewares over every event.
type Chain struct {
	stages []Middleware
}

// New builds a Chain in the given order. Order matters: see spec §4.2 for
// the canonical ordering this package's stage constructors are meant to be
// assembled in (PastEventsDiscard first, Exit last).
func New(stages ...Middleware) *Chain {
	return &Chain{stages: stages}
}

// Run passes ev through every stage in order, threading dispatch so stages
// can enqueue auxiliary events, and returns the event the last stage
// produced.
func (c *Chain) Run(ev event.Event, dispatch Dispatch) event.Event {
	for _, stage := range c.stages {
		ev.Type = stage.Next(ev, dispatch)
	}
	return ev
}

// Stages returns the configured stage list, in order, for diagnostics.
func (c *Chain) Stages() []Middleware {
	return c.stages
}
