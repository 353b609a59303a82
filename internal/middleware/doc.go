// Package middleware implements the C4 component of the espanso core: a
// fixed, ordered chain of ~20 transforms that turns raw funnel events into
// the terminal injection events the dispatcher consumes (spec §4.2).
//
// Each Middleware has signature Next(event, dispatch) -> event: it may
// return a (possibly rewritten) event that continues down the chain, and/or
// enqueue any number of auxiliary events back to the engine's post-dispatch
// queue via dispatch. Every middleware must be idempotent on event types it
// does not recognize — it returns the event unchanged — so that the chain
// can grow or reorder without every stage needing to know about every event
// variant.
//
// Each middleware owns only its own local state; Chain holds no shared
// mutable state beyond the ordered stage list itself, mirroring the
// teacher's dispatcher executor registry (a list of independent handlers
// run in order until one claims the event) adapted from "first handler
// wins" to "every stage runs and can rewrite the event".
package middleware
