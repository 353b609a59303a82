// Package matcher implements the C2 component of the espanso core: it turns
// a stream of classified keystrokes into event.DetectedMatch values.
//
// The matcher never touches injectors or the renderer. It keeps a bounded
// deque of state snapshots (one per sub-matcher, per keystroke) so that a
// Backspace can pop back to the state as it was before the erased key, and
// so that an "invalidating" event (arrow keys, mouse click, Escape) can
// clear the whole deque when the buffer can no longer be trusted to reflect
// what the user actually typed.
//
// Two sub-matchers run side by side against the same snapshot sequence: the
// rolling trie matcher (internal/matcher/rolling) for literal trigger
// strings, and the sliding-window regex matcher (internal/matcher/regexm)
// for RegexCause matches. Matcher itself only owns classification and
// history bookkeeping; it delegates the actual matching algorithm to each
// SubMatcher.
package matcher
