package engine

import (
	"context"

	"github.com/espanso/espanso-core/internal/corelog"
	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/funnel"
	"github.com/espanso/espanso-core/internal/middleware"
)

// ExitNotice is passed to an OnExit callback when Run returns.
type ExitNotice struct {
	// Mode is the exit mode the chain (or end-of-stream) produced.
	Mode event.ExitMode
	// EndOfStream is true when Run stopped because every source closed
	// rather than because the chain produced event.Exit.
	EndOfStream bool
}

// Engine ties a Funnel, a middleware Chain, and a Dispatcher into the
// cooperative event loop spec §5 describes.
type Engine struct {
	funnel     *funnel.Funnel
	queue      *funnel.Queue
	chain      *middleware.Chain
	dispatcher *dispatch.Dispatcher

	logger corelog.Logger
	onExit func(ExitNotice)
}

// New builds an Engine. All four arguments are required.
func New(f *funnel.Funnel, queue *funnel.Queue, chain *middleware.Chain, d *dispatch.Dispatcher, opts ...Option) (*Engine, error) {
	if f == nil {
		return nil, ErrNilFunnel
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	if chain == nil {
		return nil, ErrNilChain
	}
	if d == nil {
		return nil, ErrNilDispatcher
	}

	e := &Engine{
		funnel:     f,
		queue:      queue,
		chain:      chain,
		dispatcher: d,
		logger:     corelog.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run drives the cooperative loop until the chain produces event.Exit or
// the funnel reports event.EndOfStream, or ctx is cancelled (which the
// funnel also surfaces as EndOfStream). It returns the resulting ExitMode.
func (e *Engine) Run(ctx context.Context) event.ExitMode {
	for {
		ev := e.funnel.Receive(ctx)

		switch ev.Type.(type) {
		case event.EndOfStream:
			e.notifyExit(ExitNotice{Mode: event.ExitAllProcesses, EndOfStream: true})
			return event.ExitAllProcesses
		case event.Skipped:
			continue
		}

		out := e.chain.Run(ev, e.queue.Push)

		switch t := out.Type.(type) {
		case event.Exit:
			e.notifyExit(ExitNotice{Mode: t.Mode})
			return t.Mode
		case event.NOOP, event.Skipped:
			continue
		default:
			if result := e.dispatcher.Dispatch(out.Type); result.IsError() {
				e.logger.Errorf("dispatch %T failed: %v", out.Type, result.Err)
			}
		}
	}
}

func (e *Engine) notifyExit(notice ExitNotice) {
	if e.onExit != nil {
		e.onExit(notice)
	}
}
