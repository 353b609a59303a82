package middleware

import "github.com/espanso/espanso-core/internal/event"

// MatchLookup resolves a configured match by id, giving access to its
// Effect (DetectedMatch only carries the detection context, not what
// firing it produces).
type MatchLookup func(id event.MatchID) (event.Match, bool)

// Multiplex is stage 10: it turns CauseCompensatedMatch into the concrete
// follow-up request for the match's effect kind (spec §4.2 step 10).
type Multiplex struct {
	lookup MatchLookup
}

func NewMultiplex(lookup MatchLookup) *Multiplex {
	return &Multiplex{lookup: lookup}
}

func (*Multiplex) Name() string { return "Multiplex" }

func (m *Multiplex) Next(ev event.Event, dispatch Dispatch) event.Type {
	ccm, ok := ev.Type.(event.CauseCompensatedMatch)
	if !ok {
		return ev.Type
	}

	cfg, found := m.lookup(ccm.Match.ID)
	if !found {
		if dispatch != nil {
			dispatch(event.Event{SourceID: ev.SourceID, Type: event.ProcessingError{
				Kind:    event.ErrKindOther,
				Message: "multiplex: unknown match id",
			}})
		}
		return event.NOOP{}
	}

	switch eff := cfg.Effect.(type) {
	case event.TextEffect:
		return event.RenderingRequested{
			MatchID:        ccm.Match.ID,
			Trigger:        ccm.Match.Trigger,
			TriggerArgs:    ccm.Match.Args,
			Format:         eff.Format,
			RightSeparator: ccm.Match.RightSeparator,
		}
	case event.ImageEffect:
		return event.ImageRequested{MatchID: ccm.Match.ID, Path: eff.Path}
	default:
		return event.NOOP{}
	}
}
