package render

import (
	"context"

	"github.com/espanso/espanso-core/internal/event"
)

// Params is the (already inject_vars-substituted) parameter map passed to an
// extension's Calculate.
type Params map[string]event.Value

// OutputKind tags which field of Output is populated.
type OutputKind int

const (
	KindSingle OutputKind = iota
	KindMultiple
)

// Output is an extension's successful result: either one string, or a map
// of named sub-values addressable as {{var.sub}}.
type Output struct {
	Kind     OutputKind
	Single   string
	Multiple map[string]string
}

func Single(s string) Output { return Output{Kind: KindSingle, Single: s} }
func Multiple(m map[string]string) Output {
	return Output{Kind: KindMultiple, Multiple: m}
}

// ResultKind tags which outcome an extension produced.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultAborted
	ResultError
)

// Result is what Extension.Calculate returns: success wraps an Output;
// Aborted silently abandons the whole render (the caller turns it into
// NOOP); Error surfaces a RenderingError/ProcessingError notification.
type Result struct {
	Kind    ResultKind
	Output  Output
	ErrKind event.ErrorKind
	ErrMsg  string
}

func OK(o Output) Result           { return Result{Kind: ResultOK, Output: o} }
func Aborted() Result              { return Result{Kind: ResultAborted} }
func Errorf(k event.ErrorKind, msg string) Result {
	return Result{Kind: ResultError, ErrKind: k, ErrMsg: msg}
}

// RenderContext is passed to every extension call: the render-wide context
// (trigger occurrence, args) plus a Render callback so the var_type=="match"
// special case (spec §4.4 step 5) can recursively render another template
// without Renderer exposing its internals to extensions.
type RenderContext struct {
	Trigger     string
	TriggerArgs map[string]string
	Render      func(ctx context.Context, trigger string) (string, error)
}

// Scope holds the outputs of already-evaluated variables, keyed by name, in
// topological evaluation order.
type Scope map[string]Output

// Extension evaluates one variable var_type. Implementations must be pure
// functions of their inputs; Renderer never retries a failed call.
type Extension interface {
	Name() string
	Calculate(ctx context.Context, rc *RenderContext, scope Scope, params Params) Result
}

// Request is the input to Renderer.Render, mirroring event.RenderingRequested
// plus the match's own vars (spec §4.4).
type Request struct {
	MatchID       event.MatchID
	Trigger       string
	TriggerArgs   map[string]string
	Body          string
	Vars          []event.Variable
	Format        event.Format
	PropagateCase bool
}

// Response is the outcome of a render: either a finished body (with
// CursorHintBackCount set if a $|$ marker was present), or an abort/error.
type Response struct {
	Kind                ResultKind
	Body                string
	CursorHintBackCount int
	ErrKind             event.ErrorKind
	ErrMsg              string
}
