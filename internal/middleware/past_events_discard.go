package middleware

import "github.com/espanso/espanso-core/internal/event"

type discardWindowKind int

const (
	discardNone discardWindowKind = iota
	discardBelow
	discardBetween
)

// PastEventsDiscard is stage 1: it drops any event whose SourceID falls in
// the currently tracked window, replacing that window whenever a
// DiscardPrevious/DiscardBetween event is observed. This is what makes the
// Action middleware's post-injection DiscardPrevious effective — espanso
// never sees its own synthesized input (spec §4.2 step 1, §5).
type PastEventsDiscard struct {
	kind       discardWindowKind
	below      event.SourceID
	start, end event.SourceID
}

func NewPastEventsDiscard() *PastEventsDiscard {
	return &PastEventsDiscard{}
}

func (*PastEventsDiscard) Name() string { return "PastEventsDiscard" }

func (m *PastEventsDiscard) Next(ev event.Event, _ Dispatch) event.Type {
	switch t := ev.Type.(type) {
	case event.DiscardPrevious:
		m.kind = discardBelow
		m.below = t.MinimumSourceID
		return t
	case event.DiscardBetween:
		m.kind = discardBetween
		m.start, m.end = t.Start, t.End
		return t
	}

	if m.shouldDiscard(ev.SourceID) {
		return event.Skipped{}
	}
	return ev.Type
}

func (m *PastEventsDiscard) shouldDiscard(id event.SourceID) bool {
	switch m.kind {
	case discardBelow:
		return id < m.below
	case discardBetween:
		return id >= m.start && id < m.end
	default:
		return false
	}
}
