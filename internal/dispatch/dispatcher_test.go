package dispatch_test

import (
	"errors"
	"testing"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

func TestNewWithDefaults(t *testing.T) {
	d := dispatch.NewWithDefaults()
	if d.Metrics() != nil {
		t.Error("expected nil metrics by default")
	}
}

func TestNewWithMetrics(t *testing.T) {
	d := dispatch.New(dispatch.DefaultConfig().WithMetrics())
	if d.Metrics() == nil {
		t.Fatal("expected non-nil metrics when enabled")
	}
}

func TestDispatch_NoExecutorRegistered(t *testing.T) {
	d := dispatch.NewWithDefaults()
	result := d.Dispatch(event.TextInject{Text: "hi"})
	if !result.IsError() {
		t.Fatalf("expected StatusError, got %v", result.Status)
	}
	if !errors.Is(result.Err, dispatch.ErrNoExecutor) {
		t.Fatalf("expected ErrNoExecutor, got %v", result.Err)
	}
}

func TestDispatch_RoutesToRegisteredExecutor(t *testing.T) {
	d := dispatch.NewWithDefaults()
	var got event.Type
	d.Register(dispatch.TypeTextInject, dispatch.ExecutorFunc(func(ev event.Type) dispatch.Result {
		got = ev
		return dispatch.OK()
	}))

	result := d.Dispatch(event.TextInject{Text: "hello"})
	if !result.IsOK() {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if ti, ok := got.(event.TextInject); !ok || ti.Text != "hello" {
		t.Fatalf("expected executor to receive TextInject{hello}, got %#v", got)
	}
}

func TestDispatch_RecoversFromPanicByDefault(t *testing.T) {
	d := dispatch.New(dispatch.DefaultConfig().WithMetrics())
	d.Register(dispatch.TypeImageInject, dispatch.ExecutorFunc(func(ev event.Type) dispatch.Result {
		panic("injector exploded")
	}))

	result := d.Dispatch(event.ImageInject{Path: "/tmp/x.png"})
	if !result.IsError() {
		t.Fatalf("expected StatusError after recovered panic, got %v", result.Status)
	}
	if !errors.Is(result.Err, dispatch.ErrExecutorPanic) {
		t.Fatalf("expected ErrExecutorPanic, got %v", result.Err)
	}
	if d.Metrics().TotalPanics() != 1 {
		t.Fatalf("expected one recorded panic, got %d", d.Metrics().TotalPanics())
	}
}

func TestDispatch_PanicPropagatesWhenRecoveryDisabled(t *testing.T) {
	d := dispatch.New(dispatch.DefaultConfig().WithPanicRecovery(false))
	d.Register(dispatch.TypeImageInject, dispatch.ExecutorFunc(func(ev event.Type) dispatch.Result {
		panic("injector exploded")
	}))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic to propagate when recovery disabled")
		}
	}()
	d.Dispatch(event.ImageInject{Path: "/tmp/x.png"})
}

func TestDispatch_RecordsMetricsPerType(t *testing.T) {
	d := dispatch.New(dispatch.DefaultConfig().WithMetrics())
	d.Register(dispatch.TypeTextInject, dispatch.ExecutorFunc(func(ev event.Type) dispatch.Result {
		return dispatch.OK()
	}))

	d.Dispatch(event.TextInject{Text: "a"})
	d.Dispatch(event.TextInject{Text: "b"})

	tm, ok := d.Metrics().Snapshot(dispatch.TypeTextInject)
	if !ok {
		t.Fatal("expected metrics snapshot for TextInject")
	}
	if tm.DispatchCount != 2 {
		t.Fatalf("expected DispatchCount 2, got %d", tm.DispatchCount)
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r := dispatch.NewRegistry()
	r.Register("Zeta", dispatch.ExecutorFunc(func(event.Type) dispatch.Result { return dispatch.OK() }))
	r.Register("Alpha", dispatch.ExecutorFunc(func(event.Type) dispatch.Result { return dispatch.OK() }))

	list := r.List()
	if len(list) != 2 || list[0] != "Alpha" || list[1] != "Zeta" {
		t.Fatalf("expected sorted [Alpha Zeta], got %v", list)
	}
}

func TestTypeName(t *testing.T) {
	if name := dispatch.TypeName(event.TextInject{}); name != "TextInject" {
		t.Fatalf("expected TextInject, got %q", name)
	}
}
