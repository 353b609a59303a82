// Package state holds the engine's interior-mutable cells and read-only
// caches: the match cache Multiplex resolves a detected match against,
// the enabled flag the daemon's Suppress predicate reads, and a
// best-effort ModifierStateProvider the demo driver feeds from whatever
// raw key signal it can observe.
//
// Per spec, the match cache is immutable after construction; only the
// engine thread touches the enabled flag and the modifier tracker, so
// neither needs anything heavier than a mutex.
package state
