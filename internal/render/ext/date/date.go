// Package date implements the var_type=="date" extension.
package date

import (
	"context"
	"time"

	"github.com/espanso/espanso-core/internal/render"
)

// Clock is injected so tests don't depend on wall-clock time.
type Clock func() time.Time

type Extension struct {
	now Clock
}

func New(now Clock) Extension {
	if now == nil {
		now = time.Now
	}
	return Extension{now: now}
}

func (Extension) Name() string { return "date" }

func (e Extension) Calculate(_ context.Context, _ *render.RenderContext, _ render.Scope, params render.Params) render.Result {
	layout := time.RFC3339
	if f, ok := params["format"]; ok && f.Str != "" {
		layout = f.Str
	}
	t := e.now()
	if offset, ok := params["offset"]; ok {
		t = t.Add(time.Duration(offset.Num) * time.Second)
	}
	return render.OK(render.Single(t.Format(layout)))
}
