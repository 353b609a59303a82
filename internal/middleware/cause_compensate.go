package middleware

import "github.com/espanso/espanso-core/internal/event"

// CauseCompensate is stage 9: for a selected match with a non-empty typed
// trigger, it makes TriggerCompensation the event that continues down this
// pass (so Action, stage 14, emits the erasing backspaces right away) and
// defers the match itself — as CauseCompensatedMatch — to the next pass via
// dispatch, so the backspaces are always injected before the replacement
// text (spec §4.2 step 9). A match with no typed trigger (an explicit
// invocation via MatchExecRequest/HotKey/Search) needs no compensation and
// continues straight through as CauseCompensatedMatch.
type CauseCompensate struct{}

func NewCauseCompensate() *CauseCompensate {
	return &CauseCompensate{}
}

func (*CauseCompensate) Name() string { return "CauseCompensate" }

func (*CauseCompensate) Next(ev event.Event, dispatch Dispatch) event.Type {
	sel, ok := ev.Type.(event.MatchSelected)
	if !ok {
		return ev.Type
	}

	if sel.Match.Trigger == "" {
		return event.CauseCompensatedMatch{Match: sel.Match}
	}

	if dispatch != nil {
		dispatch(event.Event{
			SourceID: ev.SourceID,
			Type:     event.CauseCompensatedMatch{Match: sel.Match},
		})
	}
	return event.TriggerCompensation{
		Trigger:       sel.Match.Trigger,
		LeftSeparator: sel.Match.LeftSeparator,
		HasLeftSep:    sel.Match.LeftSeparator != "",
	}
}
