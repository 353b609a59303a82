package funnel

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/espanso/espanso-core/internal/event"
)

// Source is one asynchronous origin of raw events (a platform keyboard
// detector, the tray UI channel, the exit signal, a heartbeat ticker, ...).
// The funnel treats every source identically: it only cares that a Source
// produces event.Type values on C.
type Source struct {
	// Name identifies the source for diagnostics; it plays no role in
	// ordering or matching.
	Name string
	C    <-chan event.Type
}

// Queue is the post-dispatch priority queue: middlewares push follow-up
// events here (via the dispatch callback passed to each middleware's
// next()), and the funnel always drains it before reading from any OS
// source. Queue is safe for use only from the single engine goroutine that
// also calls Funnel.Receive — middlewares run on that same goroutine, so no
// synchronization is needed beyond a plain slice.
type Queue struct {
	items []event.Event
}

// NewQueue creates an empty post-dispatch queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev to the back of the queue.
func (q *Queue) Push(ev event.Event) {
	q.items = append(q.items, ev)
}

// Pop removes and returns the front of the queue, FIFO among events pushed
// since the last Pop.
func (q *Queue) Pop() (event.Event, bool) {
	if len(q.items) == 0 {
		return event.Event{}, false
	}
	ev := q.items[0]
	q.items = q.items[1:]
	return ev, true
}

// Len reports how many events are currently queued.
func (q *Queue) Len() int {
	return len(q.items)
}

// Funnel multiplexes N sources plus a post-dispatch queue into a single
// stream of stamped events.
type Funnel struct {
	sources []Source
	queue   *Queue
	nextID  atomic.Uint64

	mu     sync.Mutex
	cases  []reflect.SelectCase
	closed []bool
}

// New creates a Funnel over the given sources, sharing the given
// post-dispatch queue with the engine's dispatch callback.
func New(sources []Source, queue *Queue) (*Funnel, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	f := &Funnel{
		sources: sources,
		queue:   queue,
		closed:  make([]bool, len(sources)),
	}
	f.cases = make([]reflect.SelectCase, len(sources))
	for i, s := range sources {
		f.cases[i] = reflect.SelectCase{
			Dir:  reflect.SelectRecv,
			Chan: reflect.ValueOf(s.C),
		}
	}
	return f, nil
}

// nextSourceID assigns the next monotonically increasing SourceID.
func (f *Funnel) nextSourceID() event.SourceID {
	return event.SourceID(f.nextID.Add(1))
}

// Receive produces exactly one event per call, honoring the contract in
// spec §4.1: the post-dispatch queue has priority, SourceID is strictly
// increasing, no event is duplicated across sources. Receive blocks until
// something is available or ctx is cancelled.
//
// A closed source is handled internally by re-selecting. A value from a
// source that is nil or not an event.Type is returned as event.Skipped.
func (f *Funnel) Receive(ctx context.Context) event.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	if qe, ok := f.queue.Pop(); ok {
		return qe
	}

	for {
		if f.allClosed() {
			return event.New(f.nextSourceID(), event.EndOfStream{})
		}

		cases := f.liveCases(ctx)
		chosen, recv, recvOK := reflect.Select(cases)

		// The last case is always ctx.Done().
		if chosen == len(cases)-1 {
			return event.New(f.nextSourceID(), event.EndOfStream{})
		}

		idx := f.liveIndex(chosen)
		if !recvOK {
			f.closed[idx] = true
			continue
		}

		t, ok := recv.Interface().(event.Type)
		if !ok || t == nil {
			return event.New(f.nextSourceID(), event.Skipped{})
		}
		return event.New(f.nextSourceID(), t)
	}
}

// liveCases builds the reflect.SelectCase slice for sources that have not
// yet closed, plus a trailing ctx.Done() case.
func (f *Funnel) liveCases(ctx context.Context) []reflect.SelectCase {
	cases := make([]reflect.SelectCase, 0, len(f.cases)+1)
	for i, c := range f.cases {
		if !f.closed[i] {
			cases = append(cases, c)
		}
	}
	cases = append(cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(ctx.Done()),
	})
	return cases
}

// liveIndex maps a chosen index within liveCases back into f.sources/f.closed.
func (f *Funnel) liveIndex(chosen int) int {
	count := -1
	for i := range f.cases {
		if !f.closed[i] {
			count++
			if count == chosen {
				return i
			}
		}
	}
	return -1
}

func (f *Funnel) allClosed() bool {
	for _, c := range f.closed {
		if !c {
			return false
		}
	}
	return true
}

// SourceNames returns the configured source names, in order, for
// diagnostics.
func (f *Funnel) SourceNames() []string {
	names := make([]string, len(f.sources))
	for i, s := range f.sources {
		names[i] = s.Name
	}
	return names
}
