package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/engine"
	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/funnel"
	"github.com/espanso/espanso-core/internal/middleware"
)

// passthroughStage rewrites Keyboard{Value} into a TextInject with the
// same text, simulating "the chain detected and rendered a match" without
// needing the whole real chain wired up.
type passthroughStage struct{}

func (passthroughStage) Name() string { return "passthrough" }

func (passthroughStage) Next(ev event.Event, _ middleware.Dispatch) event.Type {
	if kb, ok := ev.Type.(event.Keyboard); ok && kb.HasValue {
		return event.TextInject{Text: kb.Value}
	}
	return ev.Type
}

// exitOnRequest turns event.ExitRequested into event.Exit, like the real
// Exit stage, so tests can end the loop deterministically.
type exitOnRequest struct{}

func (exitOnRequest) Name() string { return "exit" }

func (exitOnRequest) Next(ev event.Event, _ middleware.Dispatch) event.Type {
	if req, ok := ev.Type.(event.ExitRequested); ok {
		return event.Exit{Mode: req.Mode}
	}
	return ev.Type
}

func newTestEngine(t *testing.T, source chan event.Type, recordText *[]string) *engine.Engine {
	t.Helper()
	q := funnel.NewQueue()
	f, err := funnel.New([]funnel.Source{{Name: "test", C: source}}, q)
	if err != nil {
		t.Fatalf("funnel.New: %v", err)
	}

	chain := middleware.New(passthroughStage{}, exitOnRequest{})

	d := dispatch.NewWithDefaults()
	d.Register(dispatch.TypeTextInject, dispatch.ExecutorFunc(func(ev event.Type) dispatch.Result {
		if ti, ok := ev.(event.TextInject); ok {
			*recordText = append(*recordText, ti.Text)
		}
		return dispatch.OK()
	}))

	e, err := engine.New(f, q, chain, d)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func TestRun_DispatchesChainOutputToExecutor(t *testing.T) {
	source := make(chan event.Type, 2)
	var got []string
	e := newTestEngine(t, source, &got)

	source <- event.Keyboard{Key: "a", Value: "a", HasValue: true, Status: event.Pressed}
	source <- event.ExitRequested{Mode: event.ExitAllProcesses}

	mode := e.Run(context.Background())
	if mode != event.ExitAllProcesses {
		t.Fatalf("expected ExitAllProcesses, got %v", mode)
	}
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected one dispatched TextInject{a}, got %v", got)
	}
}

func TestRun_EndsOnEndOfStream(t *testing.T) {
	source := make(chan event.Type)
	close(source)
	var got []string
	e := newTestEngine(t, source, &got)

	mode := e.Run(context.Background())
	if mode != event.ExitAllProcesses {
		t.Fatalf("expected ExitAllProcesses on end-of-stream, got %v", mode)
	}
}

func TestRun_EndsOnContextCancel(t *testing.T) {
	source := make(chan event.Type)
	var got []string
	e := newTestEngine(t, source, &got)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	mode := e.Run(ctx)
	if mode != event.ExitAllProcesses {
		t.Fatalf("expected ExitAllProcesses on cancellation, got %v", mode)
	}
}

func TestRun_InvokesOnExitCallback(t *testing.T) {
	source := make(chan event.Type, 1)
	source <- event.ExitRequested{Mode: event.RestartWorker}

	q := funnel.NewQueue()
	f, err := funnel.New([]funnel.Source{{Name: "test", C: source}}, q)
	if err != nil {
		t.Fatal(err)
	}
	chain := middleware.New(exitOnRequest{})
	d := dispatch.NewWithDefaults()

	var notice engine.ExitNotice
	called := false
	e, err := engine.New(f, q, chain, d, engine.OnExit(func(n engine.ExitNotice) {
		called = true
		notice = n
	}))
	if err != nil {
		t.Fatal(err)
	}

	e.Run(context.Background())
	if !called || notice.Mode != event.RestartWorker || notice.EndOfStream {
		t.Fatalf("expected OnExit called with RestartWorker, got called=%v notice=%+v", called, notice)
	}
}

// dispatchesAuxOnPing is a one-shot stage that, on seeing a Heartbeat,
// dispatches a TextInject{"aux"} auxiliary event and yields NOOP itself,
// mirroring how a real stage defers work to a future pass via Dispatch.
type dispatchesAuxOnPing struct{ fired bool }

func (*dispatchesAuxOnPing) Name() string { return "aux" }

func (s *dispatchesAuxOnPing) Next(ev event.Event, dispatch middleware.Dispatch) event.Type {
	if _, ok := ev.Type.(event.Heartbeat); ok && !s.fired {
		s.fired = true
		dispatch(event.Event{SourceID: ev.SourceID, Type: event.TextInject{Text: "aux"}})
		return event.NOOP{}
	}
	return ev.Type
}

func TestRun_DispatchedAuxEventsTakePriorityOverNextSourceEvent(t *testing.T) {
	source := make(chan event.Type, 2)
	q := funnel.NewQueue()
	f, err := funnel.New([]funnel.Source{{Name: "test", C: source}}, q)
	if err != nil {
		t.Fatal(err)
	}
	chain := middleware.New(&dispatchesAuxOnPing{}, exitOnRequest{})

	var got []string
	d := dispatch.NewWithDefaults()
	d.Register(dispatch.TypeTextInject, dispatch.ExecutorFunc(func(ev event.Type) dispatch.Result {
		got = append(got, ev.(event.TextInject).Text)
		return dispatch.OK()
	}))

	e, err := engine.New(f, q, chain, d)
	if err != nil {
		t.Fatal(err)
	}

	source <- event.Heartbeat{}
	source <- event.ExitRequested{Mode: event.ExitAllProcesses}

	e.Run(context.Background())

	if len(got) != 1 || got[0] != "aux" {
		t.Fatalf("expected the dispatched aux TextInject to be processed, got %v", got)
	}
}

func TestNew_RejectsNilDependencies(t *testing.T) {
	q := funnel.NewQueue()
	f, _ := funnel.New([]funnel.Source{{Name: "x", C: make(chan event.Type)}}, q)
	chain := middleware.New()
	d := dispatch.NewWithDefaults()

	if _, err := engine.New(nil, q, chain, d); err != engine.ErrNilFunnel {
		t.Fatalf("expected ErrNilFunnel, got %v", err)
	}
	if _, err := engine.New(f, nil, chain, d); err != engine.ErrNilQueue {
		t.Fatalf("expected ErrNilQueue, got %v", err)
	}
	if _, err := engine.New(f, q, nil, d); err != engine.ErrNilChain {
		t.Fatalf("expected ErrNilChain, got %v", err)
	}
	if _, err := engine.New(f, q, chain, nil); err != engine.ErrNilDispatcher {
		t.Fatalf("expected ErrNilDispatcher, got %v", err)
	}
}
