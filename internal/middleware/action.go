package middleware

import (
	"unicode/utf8"

	"github.com/espanso/espanso-core/internal/event"
)

// NextSourceID allocates the source id the funnel will stamp on the next
// raw event, used by Action to build a DiscardPrevious window that covers
// everything already observed at injection time.
type NextSourceID func() event.SourceID

// Action is stage 14: the terminal translation from a rendered/resolved
// effect (or a compensation request) into the injection event the
// dispatcher consumes, plus the discard-window bookkeeping that keeps
// espanso from reprocessing its own synthesized input (spec §4.2 step 14).
type Action struct {
	nextID  NextSourceID
	pending map[event.SourceID]string
}

func NewAction(nextID NextSourceID) *Action {
	return &Action{nextID: nextID, pending: make(map[event.SourceID]string)}
}

func (*Action) Name() string { return "Action" }

func (a *Action) Next(ev event.Event, dispatch Dispatch) event.Type {
	switch t := ev.Type.(type) {
	case event.Rendered:
		return a.handleRendered(ev, t, dispatch)
	case event.ImageResolved:
		a.markInjected(ev, t.MatchID, dispatch)
		return event.ImageInject{Path: t.Path}
	case event.CursorHintCompensation:
		return event.KeySequenceInject{Keys: repeatKey(event.KeyLeftArrow, t.BackCount)}
	case event.TriggerCompensation:
		a.pending[ev.SourceID] = t.Trigger
		return event.KeySequenceInject{Keys: repeatKey(event.KeyBackspace, compensationBackspaces(t))}
	case event.Undo:
		return a.handleUndo(ev, t, dispatch)
	default:
		return ev.Type
	}
}

func (a *Action) handleRendered(ev event.Event, r event.Rendered, dispatch Dispatch) event.Type {
	switch r.Format {
	case event.FormatHTML:
		a.markInjected(ev, r.MatchID, dispatch)
		return event.HtmlInject{HTML: r.Body, Fallback: r.Body}
	case event.FormatMarkdown:
		// Route back through the chain so the Markdown stage (12) converts
		// the body to HTML before anything is injected.
		if dispatch != nil {
			dispatch(event.Event{SourceID: ev.SourceID, Type: event.MarkdownInject{Markdown: r.Body}})
		}
		return event.NOOP{}
	default:
		a.markInjected(ev, r.MatchID, dispatch)
		if trigger, ok := a.pending[ev.SourceID]; ok {
			delete(a.pending, ev.SourceID)
			if dispatch != nil {
				dispatch(event.Event{SourceID: ev.SourceID, Type: event.UndoRecorded{
					MatchID:      r.MatchID,
					Trigger:      trigger,
					InjectedText: r.Body,
				}})
			}
		}
		return event.TextInject{Text: r.Body}
	}
}

func (a *Action) handleUndo(ev event.Event, u event.Undo, dispatch Dispatch) event.Type {
	backspaces := utf8.RuneCountInString(u.Replace) - 1
	if backspaces < 0 {
		backspaces = 0
	}
	if dispatch != nil {
		dispatch(event.Event{SourceID: ev.SourceID, Type: event.TextInject{Text: u.Trigger}})
	}
	return event.KeySequenceInject{Keys: repeatKey(event.KeyBackspace, backspaces)}
}

// markInjected enqueues the feedback/discard pair that must follow every
// terminal injection: MatchInjected feeds the matcher a virtual separator,
// and DiscardPrevious throws away anything the injected keystrokes would
// otherwise cause the matcher/funnel to reprocess.
func (a *Action) markInjected(ev event.Event, id event.MatchID, dispatch Dispatch) {
	if dispatch == nil {
		return
	}
	dispatch(event.Event{SourceID: ev.SourceID, Type: event.MatchInjected{MatchID: id}})
	if a.nextID != nil {
		dispatch(event.Event{SourceID: ev.SourceID, Type: event.DiscardPrevious{MinimumSourceID: a.nextID()}})
	}
}

func compensationBackspaces(t event.TriggerCompensation) int {
	n := utf8.RuneCountInString(t.Trigger)
	if t.HasLeftSep {
		n -= utf8.RuneCountInString(t.LeftSeparator)
	}
	if n < 0 {
		return 0
	}
	return n
}

func repeatKey(k event.Key, n int) []event.Key {
	if n <= 0 {
		return nil
	}
	keys := make([]event.Key, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}
