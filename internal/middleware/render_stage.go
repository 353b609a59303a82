package middleware

import (
	"context"

	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/render"
)

// renderEngine is the subset of *render.Renderer this stage depends on.
type renderEngine interface {
	Render(ctx context.Context, req render.Request) render.Response
}

// RenderStage is stage 11, described in full in internal/render (spec
// §4.4): on RenderingRequested it looks up the match's body template and
// variables and runs them through the renderer, producing Rendered on
// success, NOOP on an explicit abort, or a dispatched RenderingError plus
// NOOP on a hard failure (missing variable, circular dependency).
type RenderStage struct {
	lookup   MatchLookup
	renderer renderEngine
	ctx      context.Context
}

func NewRenderStage(lookup MatchLookup, renderer renderEngine) *RenderStage {
	return &RenderStage{lookup: lookup, renderer: renderer, ctx: context.Background()}
}

func (*RenderStage) Name() string { return "Render" }

func (s *RenderStage) Next(ev event.Event, dispatch Dispatch) event.Type {
	rr, ok := ev.Type.(event.RenderingRequested)
	if !ok {
		return ev.Type
	}

	cfg, found := s.lookup(rr.MatchID)
	if !found {
		return event.NOOP{}
	}
	textEffect, ok := cfg.Effect.(event.TextEffect)
	if !ok {
		return event.NOOP{}
	}

	req := render.Request{
		MatchID:       rr.MatchID,
		Trigger:       rr.Trigger,
		TriggerArgs:   rr.TriggerArgs,
		Body:          textEffect.Replace,
		Vars:          textEffect.Vars,
		Format:        rr.Format,
		PropagateCase: cfg.PropagateCase,
	}
	resp := s.renderer.Render(s.ctx, req)

	switch resp.Kind {
	case render.ResultOK:
		if resp.CursorHintBackCount != 0 && dispatch != nil {
			dispatch(event.Event{SourceID: ev.SourceID, Type: event.CursorHintCompensation{BackCount: resp.CursorHintBackCount}})
		}
		return event.Rendered{MatchID: rr.MatchID, Body: resp.Body, Format: rr.Format}
	case render.ResultAborted:
		return event.NOOP{}
	default:
		if dispatch != nil {
			dispatch(event.Event{SourceID: ev.SourceID, Type: event.RenderingError{Kind: resp.ErrKind, Message: resp.ErrMsg}})
		}
		return event.NOOP{}
	}
}
