package matcher

import "errors"

// ErrNoSubMatchers is returned by New when constructed without at least one
// SubMatcher — a matcher with nothing to consult can never detect anything.
var ErrNoSubMatchers = errors.New("matcher: at least one sub-matcher is required")
