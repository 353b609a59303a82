package builtin

import (
	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/middleware"
)

// Stage intercepts CauseCompensatedMatch events bound to a built-in id and
// resolves them directly via the matching BuiltIn's Action, short-circuiting
// Multiplex's configured MatchStore lookup. It is wired into the chain
// between CauseCompensate and Multiplex.
type Stage struct {
	registry *Registry
	ctx      Context
}

// NewStage builds a Stage over registry, answering built-in actions against
// ctx.
func NewStage(registry *Registry, ctx Context) *Stage {
	return &Stage{registry: registry, ctx: ctx}
}

func (*Stage) Name() string { return "Builtin" }

func (s *Stage) Next(ev event.Event, _ middleware.Dispatch) event.Type {
	ccm, ok := ev.Type.(event.CauseCompensatedMatch)
	if !ok {
		return ev.Type
	}
	bi, ok := s.registry.Lookup(ccm.Match.ID)
	if !ok {
		return ev.Type
	}
	return bi.Action(s.ctx)
}
