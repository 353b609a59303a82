package middleware

import "errors"

// ErrNoMatches is returned by MatchSelect when a selector is asked to
// disambiguate an empty candidate set — a caller bug, since MatchSelect
// itself turns a truly empty set into NOOP before ever calling a Selector.
var ErrNoMatches = errors.New("middleware: selector called with no candidates")
