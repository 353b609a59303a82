// Package echo implements the var_type=="echo" extension: it returns one of
// its own string params verbatim, the simplest possible extension and a
// useful building block for tests and static snippets.
package echo

import (
	"context"

	"github.com/espanso/espanso-core/internal/render"
)

type Extension struct{}

func New() Extension { return Extension{} }

func (Extension) Name() string { return "echo" }

func (Extension) Calculate(_ context.Context, _ *render.RenderContext, _ render.Scope, params render.Params) render.Result {
	v, ok := params["echo"]
	if !ok {
		return render.OK(render.Single(""))
	}
	return render.OK(render.Single(v.Str))
}
