// Package script implements the var_type=="script" extension: it evaluates
// a Lua snippet (github.com/yuin/gopher-lua) against the render scope.
//
// gopher-lua's LState is not goroutine-safe, so — exactly as in the
// teacher's plugin host (internal/plugin/lua/executor.go) — every call into
// the LState is serialized through a single owner goroutine via a
// channel-based call queue, even though espanso's own render loop is itself
// single-threaded; a Renderer may be shared across goroutines by an
// embedder, and this is the cheapest way to make that safe without forcing
// every caller to hold an external lock.
package script

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// ErrExecutorClosed is returned when attempting to use a closed executor.
var ErrExecutorClosed = errors.New("script: executor is closed")

type call struct {
	fn     func(L *lua.LState) error
	result chan error
}

// Executor serializes all Lua operations for one LState through a single
// goroutine.
type Executor struct {
	L     *lua.LState
	queue chan *call
	done  chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once
}

// NewExecutor creates an Executor over L. Run must be started on the
// goroutine that will own L before any Execute call.
func NewExecutor(L *lua.LState, queueSize int) *Executor {
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Executor{L: L, queue: make(chan *call, queueSize), done: make(chan struct{})}
}

// Run processes queued calls until ctx is cancelled or Close is called. It
// must run on the goroutine that owns L.
func (e *Executor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			e.drain(ctx.Err())
			return
		case <-e.done:
			e.drain(ErrExecutorClosed)
			return
		case c, ok := <-e.queue:
			if !ok {
				return
			}
			c.result <- e.runOne(c)
			close(c.result)
		}
	}
}

func (e *Executor) runOne(c *call) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			case string:
				err = errors.New(v)
			default:
				err = errors.New("script: lua panic")
			}
		}
	}()
	return c.fn(e.L)
}

func (e *Executor) drain(err error) {
	for {
		select {
		case c, ok := <-e.queue:
			if !ok {
				return
			}
			c.result <- err
			close(c.result)
		default:
			return
		}
	}
}

// Execute runs fn on the owner goroutine and blocks for its result.
func (e *Executor) Execute(ctx context.Context, fn func(L *lua.LState) error) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}
	c := &call{fn: fn, result: make(chan error, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrExecutorClosed
	case e.queue <- c:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err, ok := <-c.result:
		if !ok {
			return ErrExecutorClosed
		}
		return err
	}
}

// Close stops Run and rejects further Execute calls.
func (e *Executor) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		close(e.done)
	})
}
