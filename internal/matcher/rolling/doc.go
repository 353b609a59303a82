// Package rolling implements the rolling trie matcher: literal TriggerCause
// matches are compiled into a trie keyed by character atoms, and a cursor
// walks the trie one keystroke at a time, so that detecting a match never
// requires rescanning the whole typed buffer (espanso-match/src/rolling in
// the original implementation; adapted here from a batch "match whole
// string against a topic tree" shape, as seen in keystorm's event/topic
// trie, to an incremental per-keystroke cursor walk).
//
// A trie node can carry two sibling edges for the same rune: an exact-case
// edge and a folded (case-insensitive) edge, so that a single input
// character can simultaneously advance a case-sensitive cursor and a
// case-insensitive one. Word-boundary requirements are not encoded as trie
// edges; instead each cursor tracks whether its start position was at a
// boundary (buffer start, or immediately after a separator), and a
// right-boundary requirement is resolved one atom later via a short-lived
// "pending" completion that fires only if the very next atom is itself a
// separator.
package rolling
