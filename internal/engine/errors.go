package engine

import "errors"

// Errors returned by engine construction.
var (
	// ErrNilFunnel indicates New was called without a Funnel.
	ErrNilFunnel = errors.New("engine: nil funnel")

	// ErrNilQueue indicates New was called without the funnel's shared
	// post-dispatch Queue.
	ErrNilQueue = errors.New("engine: nil queue")

	// ErrNilChain indicates New was called without a middleware Chain.
	ErrNilChain = errors.New("engine: nil chain")

	// ErrNilDispatcher indicates New was called without a Dispatcher.
	ErrNilDispatcher = errors.New("engine: nil dispatcher")
)
