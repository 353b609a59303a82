// Package funnel implements the C5 component of the espanso core: a
// select-style multiplexer across N asynchronous event sources (keyboard
// detector, UI channel, exit signal, heartbeat, ...) plus an internal
// post-dispatch queue.
//
// The funnel blocks on whichever source is ready, reads exactly one raw
// event.Type, stamps it with the next SourceID, and returns it wrapped in
// an event.Event. The post-dispatch queue always takes priority over OS
// sources: middlewares frequently enqueue follow-up events
// (event.MatchInjected, event.DiscardPrevious, compensation events) that
// must be observed before the next raw keystroke, which is what makes
// DiscardPrevious an effective "throw away anything caused by the
// keystrokes I'm compensating for" cutoff (spec §5).
//
// Because the engine loop that calls Receive runs on a single goroutine
// (spec §5, "strictly single-threaded cooperative"), a plain priority check
// at the top of Receive — drain the queue first, only then select across
// sources — is sufficient: nothing else can enqueue into the post-dispatch
// queue between one Receive call returning and the next one being called.
package funnel
