package middleware

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestAction_PlainRenderedBecomesTextInjectAndDispatchesDiscard(t *testing.T) {
	a := NewAction(func() event.SourceID { return 42 })
	var dispatched []event.Event
	got := a.Next(event.Event{SourceID: 10, Type: event.Rendered{MatchID: 1, Body: "hello", Format: event.FormatPlain}},
		func(e event.Event) { dispatched = append(dispatched, e) })

	inj, ok := got.(event.TextInject)
	if !ok || inj.Text != "hello" {
		t.Fatalf("expected TextInject{hello}, got %#v", got)
	}
	if len(dispatched) != 2 {
		t.Fatalf("expected 2 dispatched events, got %d", len(dispatched))
	}
	if _, ok := dispatched[0].Type.(event.MatchInjected); !ok {
		t.Fatalf("expected first dispatched event to be MatchInjected, got %T", dispatched[0].Type)
	}
	dp, ok := dispatched[1].Type.(event.DiscardPrevious)
	if !ok || dp.MinimumSourceID != 42 {
		t.Fatalf("expected DiscardPrevious{42}, got %#v", dispatched[1].Type)
	}
}

func TestAction_PlainRenderedAfterCompensationDispatchesUndoRecorded(t *testing.T) {
	a := NewAction(nil)
	var dispatched []event.Event
	dispatch := func(e event.Event) { dispatched = append(dispatched, e) }

	a.Next(event.Event{SourceID: 3, Type: event.TriggerCompensation{Trigger: ":hi"}}, dispatch)
	dispatched = nil

	a.Next(event.Event{SourceID: 3, Type: event.Rendered{MatchID: 1, Body: "hello", Format: event.FormatPlain}}, dispatch)

	var found bool
	for _, d := range dispatched {
		if ur, ok := d.Type.(event.UndoRecorded); ok {
			found = true
			if ur.Trigger != ":hi" || ur.InjectedText != "hello" {
				t.Fatalf("unexpected UndoRecorded: %#v", ur)
			}
		}
	}
	if !found {
		t.Fatalf("expected an UndoRecorded to be dispatched, got %#v", dispatched)
	}
}

func TestAction_MarkdownRenderedDefersThroughMarkdownStage(t *testing.T) {
	a := NewAction(nil)
	var dispatched []event.Event
	got := a.Next(event.Event{Type: event.Rendered{MatchID: 1, Body: "**hi**", Format: event.FormatMarkdown}},
		func(e event.Event) { dispatched = append(dispatched, e) })

	if _, ok := got.(event.NOOP); !ok {
		t.Fatalf("expected NOOP this pass, got %T", got)
	}
	if len(dispatched) != 1 {
		t.Fatalf("expected 1 deferred event, got %d", len(dispatched))
	}
	if _, ok := dispatched[0].Type.(event.MarkdownInject); !ok {
		t.Fatalf("expected deferred MarkdownInject, got %T", dispatched[0].Type)
	}
}

func TestAction_TriggerCompensationProducesBackspaces(t *testing.T) {
	a := NewAction(nil)
	got := a.Next(event.Event{Type: event.TriggerCompensation{Trigger: " :hi", LeftSeparator: " ", HasLeftSep: true}}, nil)
	ks, ok := got.(event.KeySequenceInject)
	if !ok || len(ks.Keys) != 3 {
		t.Fatalf("expected 3 backspaces, got %#v", got)
	}
	for _, k := range ks.Keys {
		if k != event.KeyBackspace {
			t.Fatalf("expected all backspaces, got %v", k)
		}
	}
}

func TestAction_UndoPrecedesTextWithBackspaces(t *testing.T) {
	a := NewAction(nil)
	var dispatched []event.Event
	got := a.Next(event.Event{Type: event.Undo{Trigger: ":hi", Replace: "hello"}},
		func(e event.Event) { dispatched = append(dispatched, e) })

	ks, ok := got.(event.KeySequenceInject)
	if !ok || len(ks.Keys) != 4 {
		t.Fatalf("expected 4 backspaces (5 chars - 1), got %#v", got)
	}
	if len(dispatched) != 1 {
		t.Fatalf("expected 1 deferred TextInject, got %d", len(dispatched))
	}
	inj, ok := dispatched[0].Type.(event.TextInject)
	if !ok || inj.Text != ":hi" {
		t.Fatalf("expected deferred TextInject{:hi}, got %#v", dispatched[0].Type)
	}
}

func TestAction_CursorHintCompensationProducesArrowLefts(t *testing.T) {
	a := NewAction(nil)
	got := a.Next(event.Event{Type: event.CursorHintCompensation{BackCount: 2}}, nil)
	ks, ok := got.(event.KeySequenceInject)
	if !ok || len(ks.Keys) != 2 || ks.Keys[0] != event.KeyLeftArrow {
		t.Fatalf("expected 2 ArrowLefts, got %#v", got)
	}
}
