package middleware

import "github.com/espanso/espanso-core/internal/event"

// MatchFilter narrows a detected-match set down to the ones valid in the
// current context (focused app class/title/exec), e.g. per-app match
// exclusions from the active configuration.
type MatchFilter func(candidates []event.DetectedMatch) []event.DetectedMatch

// Selector opens a chooser UI over two or more ambiguous candidates and
// blocks until the user picks one, or cancels. A Selector must never be
// called with an empty candidate slice; callers that do so should treat it
// as the programming error ErrNoMatches documents.
type Selector interface {
	Select(candidates []event.DetectedMatch) (event.DetectedMatch, bool)
}

// MatchSelect is stage 8: it resolves a MatchesDetected set down to at most
// one match, via filtering and (if still ambiguous) an interactive
// Selector (spec §4.2 step 8).
type MatchSelect struct {
	filter   MatchFilter
	selector Selector
}

func NewMatchSelect(filter MatchFilter, selector Selector) *MatchSelect {
	if filter == nil {
		filter = func(c []event.DetectedMatch) []event.DetectedMatch { return c }
	}
	return &MatchSelect{filter: filter, selector: selector}
}

func (*MatchSelect) Name() string { return "MatchSelect" }

func (s *MatchSelect) Next(ev event.Event, _ Dispatch) event.Type {
	md, ok := ev.Type.(event.MatchesDetected)
	if !ok {
		return ev.Type
	}

	valid := s.filter(md.Matches)
	switch {
	case len(valid) == 0:
		return event.NOOP{}
	case len(valid) == 1:
		return event.MatchSelected{Match: valid[0]}
	}

	if s.selector == nil {
		return event.MatchSelected{Match: valid[0]}
	}
	chosen, picked := s.selector.Select(valid)
	if !picked {
		return event.NOOP{}
	}
	return event.MatchSelected{Match: chosen}
}
