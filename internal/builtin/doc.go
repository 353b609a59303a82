// Package builtin implements espanso's built-in matches and hotkeys: a
// fixed catalog of synthetic matches bound to the reserved id range
// [event.BuiltinIDBase, event.BuiltinIDBase+K), that exist independent of
// any user config.
//
// Each entry pairs an id with an Action, a function that produces the
// event.Type it causes directly, bypassing the normal Cause/Effect/render
// pipeline entirely — mirroring the original implementation's
// BuiltInMatch.action: fn(&dyn Context) -> EventType (espanso/src/cli/
// worker/builtin/mod.rs).
//
// Stage is a middleware.Middleware-shaped component (same Name/Next
// signature, satisfied structurally) meant to be wired into the chain
// between CauseCompensate and Multiplex: it intercepts
// event.CauseCompensatedMatch for a built-in id and returns the Action's
// result directly; any other match id passes through unchanged for
// Multiplex to resolve against the configured MatchStore.
package builtin
