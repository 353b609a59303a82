// Package random implements the var_type=="random" extension: picks one
// entry from params.choices uniformly at random.
package random

import (
	"context"
	"math/rand"

	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/render"
)

// Source is injected so tests can pin the pick deterministically.
type Source interface {
	Intn(n int) int
}

type Extension struct {
	src Source
}

func New(src Source) Extension {
	if src == nil {
		src = rand.New(rand.NewSource(1))
	}
	return Extension{src: src}
}

func (Extension) Name() string { return "random" }

func (e Extension) Calculate(_ context.Context, _ *render.RenderContext, _ render.Scope, params render.Params) render.Result {
	choices, ok := params["choices"]
	if !ok || choices.Is != event.KindList || len(choices.List) == 0 {
		return render.OK(render.Single(""))
	}
	pick := choices.List[e.src.Intn(len(choices.List))]
	return render.OK(render.Single(pick.Str))
}
