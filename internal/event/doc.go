// Package event defines the closed set of events that flow through the
// espanso core: the funnel stamps every event with a monotonic SourceID,
// the middleware chain transforms and re-emits events, and the dispatcher
// consumes whatever event falls out the bottom of the chain.
//
// # Event shape
//
// An Event is a small envelope around a Type:
//
//	type Event struct {
//	    SourceID SourceID
//	    Type     Type
//	}
//
// Type is a closed interface — only the variants declared in this package
// implement it (the unexported eventType method prevents other packages
// from adding variants). This is the idiomatic Go rendering of what the
// original implementation expresses as a tagged union/enum: a sealed
// interface with one concrete struct per variant, switched over with a
// type switch at the point of use, e.g.:
//
//	switch t := ev.Type.(type) {
//	case event.Keyboard:
//	    handleKey(t)
//	case event.MatchesDetected:
//	    handleMatches(t)
//	}
//
// # Groups
//
// Variants fall into five groups, split across files by group:
//
//   - raw.go:          Raw input from OS-level sources (Keyboard, Mouse, HotKey, ...)
//   - intermediate.go: Events produced while processing a match
//   - effect.go:       Terminal events consumed by dispatcher executors
//   - feedback.go:     Events the engine feeds back to itself
//   - control.go:      Lifecycle and enable/disable/exit events
//
// match.go holds the data model for matches themselves (Match, Cause,
// Effect, Variable) since several event variants embed them.
package event
