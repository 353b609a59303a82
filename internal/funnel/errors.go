package funnel

import "errors"

// ErrNoSources is returned by New when constructed with an empty source
// list — a funnel with nothing to read from can never produce anything but
// EndOfStream.
var ErrNoSources = errors.New("funnel: at least one source is required")
