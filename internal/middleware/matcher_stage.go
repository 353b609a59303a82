package middleware

import (
	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/matcher"
)

// matchEngine is the subset of *matcher.Matcher this stage depends on,
// narrowed for testability.
type matchEngine interface {
	Handle(t event.Type) ([]event.DetectedMatch, bool)
}

// MatcherStage is stage 6, the hard one (spec §4.3): it feeds every event
// through the configured matcher and, when one or more matches fire,
// rewrites the event to MatchesDetected. Everything else (ordinary
// keystrokes with no match, mouse clicks, MatchInjected feedback) passes
// through unchanged, since the matcher already did its only job — updating
// its own internal history — as a side effect of Handle.
type MatcherStage struct {
	engine matchEngine
}

func NewMatcherStage(engine matchEngine) *MatcherStage {
	return &MatcherStage{engine: engine}
}

// NewMatcherStageFrom is a convenience constructor over the concrete
// matcher.Matcher type.
func NewMatcherStageFrom(m *matcher.Matcher) *MatcherStage {
	return &MatcherStage{engine: m}
}

func (*MatcherStage) Name() string { return "Matcher" }

func (s *MatcherStage) Next(ev event.Event, _ Dispatch) event.Type {
	matches, ok := s.engine.Handle(ev.Type)
	if !ok || len(matches) == 0 {
		return ev.Type
	}
	return event.MatchesDetected{Matches: matches}
}
