// Package json implements the var_type=="json" extension: it decodes a
// JSON-string param and extracts a field via a gjson path expression.
package json

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/espanso/espanso-core/internal/render"
)

type Extension struct{}

func New() Extension { return Extension{} }

func (Extension) Name() string { return "json" }

func (Extension) Calculate(_ context.Context, _ *render.RenderContext, _ render.Scope, params render.Params) render.Result {
	doc := params["json"].Str
	path := params["path"].Str
	if doc == "" || path == "" {
		return render.OK(render.Single(""))
	}
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return render.OK(render.Single(""))
	}
	if result.IsArray() || result.IsObject() {
		m := make(map[string]string)
		result.ForEach(func(key, value gjson.Result) bool {
			m[key.String()] = value.String()
			return true
		})
		return render.OK(render.Multiple(m))
	}
	return render.OK(render.Single(result.String()))
}
