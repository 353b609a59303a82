// Package engine drives the single-threaded cooperative loop described in
// spec §5: it pulls one event.Event at a time from a funnel.Funnel, runs it
// through a middleware.Chain, and dispatches whatever terminal event.Type
// the chain produced to a dispatch.Dispatcher.
//
// # Architecture
//
// Each iteration of Run does exactly one of:
//
//  1. Receive returns event.EndOfStream: every source closed and the
//     post-dispatch queue is empty. Run returns immediately.
//  2. Receive returns event.Skipped: a source produced nothing usable.
//     Run loops back to Receive without touching the chain.
//  3. Receive returns a real event: it is run through the chain. Stages
//     may push auxiliary events onto the funnel's shared Queue via the
//     dispatch callback threaded through Chain.Run — those are drained,
//     with priority over new source events, on the next Receive call.
//     The chain's own output is then either event.Exit (Run returns with
//     that mode), event.NOOP/event.Skipped (nothing to dispatch), or a
//     genuine terminal event, which is handed to the Dispatcher.
//
// # Usage
//
//	e, err := engine.New(f, queue, chain, dispatcher, engine.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	mode := e.Run(ctx)
//
// The caller decides what an ExitMode means for the process: RestartWorker
// typically means re-run New/Run with a fresh Funnel after reloading
// config, ExitAllProcesses means the whole daemon should terminate.
package engine
