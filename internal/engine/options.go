package engine

import "github.com/espanso/espanso-core/internal/corelog"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger the engine uses to report dispatch failures.
// Defaults to corelog.Discard.
func WithLogger(logger corelog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// OnExit registers a callback invoked once, right before Run returns, with
// the ExitMode the chain (or end-of-stream) produced. Useful for a
// supervisor that needs to know whether to restart the worker or let the
// whole process exit.
func OnExit(fn func(event ExitNotice)) Option {
	return func(e *Engine) {
		e.onExit = fn
	}
}
