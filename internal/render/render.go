package render

import (
	"context"
	"strings"

	"github.com/espanso/espanso-core/internal/event"
)

// Renderer resolves a match body's {{var}} references into final text.
type Renderer struct {
	extensions map[string]Extension
	matches    []event.Match
	globalVars map[string]event.Variable
}

// New builds a Renderer. matches is the full configured match cache, used
// to resolve var_type=="match" templates by trigger; globalVars are the
// ambient variables that var_type=="global" aliases resolve against.
func New(matches []event.Match, globalVars []event.Variable, extensions ...Extension) *Renderer {
	r := &Renderer{
		extensions: make(map[string]Extension, len(extensions)),
		matches:    matches,
		globalVars: make(map[string]event.Variable, len(globalVars)),
	}
	for _, ext := range extensions {
		r.extensions[ext.Name()] = ext
	}
	for _, v := range globalVars {
		r.globalVars[v.Name] = v
	}
	return r
}

// Render evaluates req and returns the finished body, or an Aborted/Error
// response per spec §4.4.
func (r *Renderer) Render(ctx context.Context, req Request) Response {
	if !strings.Contains(req.Body, "{{") {
		body := unescape(req.Body)
		body, back, _ := extractCursorHint(body)
		if req.PropagateCase {
			body = applyCasing(body, classify(req.Trigger))
		}
		return Response{Kind: ResultOK, Body: body, CursorHintBackCount: back}
	}

	effective := r.effectiveVars(req.Vars)
	byName := make(map[string]event.Variable, len(effective))
	for _, v := range effective {
		byName[v.Name] = v
	}

	roots := referencedNames(req.Body)
	order, err := topoSort(roots, byName)
	if err != nil {
		return Response{Kind: ResultError, ErrKind: event.ErrKindCircularDependency, ErrMsg: err.Error()}
	}

	scope := make(Scope, len(order))
	rc := &RenderContext{
		Trigger:     req.Trigger,
		TriggerArgs: req.TriggerArgs,
		Render: func(ctx context.Context, trigger string) (string, error) {
			return r.renderTemplateByTrigger(ctx, trigger)
		},
	}

	for _, v := range order {
		if v.VarType == "match" {
			out, resp := r.evalMatchVar(ctx, rc, v)
			if resp != nil {
				return *resp
			}
			scope[v.Name] = out
			continue
		}

		ext, ok := r.extensions[v.VarType]
		if !ok {
			return Response{Kind: ResultError, ErrKind: event.ErrKindOther, ErrMsg: ErrUnknownExtension.Error() + ": " + v.VarType}
		}

		params, err := substituteParams(v, scope)
		if err != nil {
			return Response{Kind: ResultError, ErrKind: event.ErrKindMissingVariable, ErrMsg: err.Error()}
		}

		result := ext.Calculate(ctx, rc, scope, params)
		switch result.Kind {
		case ResultAborted:
			return Response{Kind: ResultAborted}
		case ResultError:
			return Response{Kind: ResultError, ErrKind: result.ErrKind, ErrMsg: result.ErrMsg}
		}
		scope[v.Name] = result.Output
	}

	body := substituteBody(req.Body, scope)
	body = unescape(body)
	body, back, _ := extractCursorHint(body)
	if req.PropagateCase {
		body = applyCasing(body, classify(req.Trigger))
	}
	return Response{Kind: ResultOK, Body: body, CursorHintBackCount: back}
}

// effectiveVars replaces every var_type=="global" entry with the same-named
// ambient global variable (spec §4.4 step 2).
func (r *Renderer) effectiveVars(vars []event.Variable) []event.Variable {
	out := make([]event.Variable, 0, len(vars))
	for _, v := range vars {
		if v.VarType == "global" {
			if g, ok := r.globalVars[v.Name]; ok {
				out = append(out, g)
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

// evalMatchVar implements the var_type=="match" special case (spec §4.4
// step 5): find the template whose triggers contain params.trigger, render
// it recursively, and wrap its body as a Single output.
func (r *Renderer) evalMatchVar(ctx context.Context, rc *RenderContext, v event.Variable) (Output, *Response) {
	trigger := v.Params["trigger"].Str
	body, err := r.renderTemplateByTrigger(ctx, trigger)
	if err != nil {
		resp := Response{Kind: ResultError, ErrKind: event.ErrKindOther, ErrMsg: err.Error()}
		return Output{}, &resp
	}
	return Single(body), nil
}

func (r *Renderer) renderTemplateByTrigger(ctx context.Context, trigger string) (string, error) {
	for _, m := range r.matches {
		cause, ok := m.Cause.(event.TriggerCause)
		if !ok {
			continue
		}
		for _, t := range cause.Triggers {
			if t != trigger {
				continue
			}
			text, ok := m.Effect.(event.TextEffect)
			if !ok {
				return "", ErrNoSuchMatchTemplate
			}
			resp := r.Render(ctx, Request{
				MatchID:       m.ID,
				Trigger:       trigger,
				Body:          text.Replace,
				Vars:          text.Vars,
				Format:        text.Format,
				PropagateCase: m.PropagateCase,
			})
			if resp.Kind != ResultOK {
				return "", ErrNoSuchMatchTemplate
			}
			return resp.Body, nil
		}
	}
	return "", ErrNoSuchMatchTemplate
}

// substituteParams applies inject_vars substitution (spec §4.4 step 4 /
// SPEC_FULL.md §C.3): {{other}} tokens inside string param values are
// replaced from scope; non-string values pass through untouched.
func substituteParams(v event.Variable, scope Scope) (Params, error) {
	params := make(Params, len(v.Params))
	for name, val := range v.Params {
		if !v.InjectVars || val.Is != event.KindString {
			params[name] = val
			continue
		}
		substituted, err := substituteString(val.Str, scope, v.VarType == "form")
		if err != nil {
			return nil, err
		}
		params[name] = event.StringValue(substituted)
	}
	return params, nil
}

func substituteString(s string, scope Scope, isForm bool) (string, error) {
	var missingErr error
	result := varRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
		name, sub, hasSub := subKey(ref)
		out, ok := scope[name]
		if !ok {
			hint := ""
			if isForm {
				hint = " (form fields use [[ ]], not {{ }})"
			}
			missingErr = wrapMissing(name, hint)
			return ""
		}
		if hasSub {
			return out.Multiple[sub]
		}
		return out.Single
	})
	if missingErr != nil {
		return "", missingErr
	}
	return result, nil
}

func wrapMissing(name, hint string) error {
	return &missingVariableError{name: name, hint: hint}
}

type missingVariableError struct {
	name string
	hint string
}

func (e *missingVariableError) Error() string {
	return ErrMissingVariable.Error() + ": " + e.name + e.hint
}

func (e *missingVariableError) Unwrap() error { return ErrMissingVariable }

// substituteBody replaces every {{var}}/{{var.sub}} reference in body with
// its scope value; unknown names or missing sub-keys resolve to the empty
// string (spec §4.4 step 6), never an error.
func substituteBody(body string, scope Scope) string {
	return varRefPattern.ReplaceAllStringFunc(body, func(ref string) string {
		name, sub, hasSub := subKey(ref)
		out, ok := scope[name]
		if !ok {
			return ""
		}
		if hasSub {
			return out.Multiple[sub]
		}
		return out.Single
	})
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, `\{`, "{")
	s = strings.ReplaceAll(s, `\}`, "}")
	return s
}
