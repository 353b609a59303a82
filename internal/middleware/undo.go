package middleware

import "github.com/espanso/espanso-core/internal/event"

// Undo is stage 16: it remembers the most recent UndoRecorded (emitted by
// Action once a typed-trigger plain-text expansion lands) and, if the next
// key press is a Backspace, consumes the record and emits Undo. Any other
// key press, mouse event, or cursor-hint compensation in between
// invalidates the pending record; key releases and other events do not
// (spec §4.2 step 16).
type Undo struct {
	pending    event.UndoRecorded
	hasPending bool
}

func NewUndo() *Undo {
	return &Undo{}
}

func (*Undo) Name() string { return "Undo" }

func (u *Undo) Next(ev event.Event, _ Dispatch) event.Type {
	switch t := ev.Type.(type) {
	case event.UndoRecorded:
		u.pending = t
		u.hasPending = true
		return ev.Type
	case event.Keyboard:
		if t.Status != event.Pressed {
			// Released carries no new trigger-completing information; every
			// physical keypress also emits one, and it must not invalidate
			// the record left behind by the Pressed event that just fired.
			return ev.Type
		}
		if u.hasPending && t.Key == event.KeyBackspace {
			rec := u.pending
			u.hasPending = false
			return event.Undo{MatchID: rec.MatchID, Trigger: rec.Trigger, Replace: rec.InjectedText}
		}
		u.hasPending = false
		return ev.Type
	case event.Mouse, event.CursorHintCompensation:
		u.hasPending = false
		return ev.Type
	default:
		return ev.Type
	}
}
