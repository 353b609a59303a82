// Package ai implements the var_type=="ai" extension: given a prompt param,
// ask a configured model provider to draft the snippet. This is the one
// place in the whole repo where the three LLM SDKs declared in the
// teacher's go.mod but otherwise unused get a natural home — see
// SPEC_FULL.md §B.
package ai

import (
	"context"
	"fmt"

	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/render"
)

// provider is the minimal contract every backend implements.
type provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Extension routes to one of several provider backends selected by the
// variable's "provider" param ("anthropic", "openai", "gemini").
type Extension struct {
	providers map[string]provider
	def       string
}

// Option configures an Extension.
type Option func(*Extension)

func WithProvider(name string, p provider) Option {
	return func(e *Extension) { e.providers[name] = p }
}

func WithDefaultProvider(name string) Option {
	return func(e *Extension) { e.def = name }
}

func New(opts ...Option) *Extension {
	e := &Extension{providers: make(map[string]provider), def: "anthropic"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (*Extension) Name() string { return "ai" }

func (e *Extension) Calculate(ctx context.Context, _ *render.RenderContext, _ render.Scope, params render.Params) render.Result {
	prompt := params["prompt"].Str
	if prompt == "" {
		return render.OK(render.Single(""))
	}
	name := e.def
	if p, ok := params["provider"]; ok && p.Str != "" {
		name = p.Str
	}
	p, ok := e.providers[name]
	if !ok {
		return render.Errorf(event.ErrKindOther, fmt.Sprintf("ai: unconfigured provider %q", name))
	}
	text, err := p.Complete(ctx, prompt)
	if err != nil {
		return render.Aborted()
	}
	return render.OK(render.Single(text))
}
