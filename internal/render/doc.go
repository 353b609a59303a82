// Package render implements the C3 component of the espanso core: given a
// match's text body and its configured Variables, it resolves every
// {{var}} reference by topologically evaluating a dependency graph of
// pluggable Extensions, substitutes the results back into the body, and
// applies the casing and cursor-hint post-processing steps (spec §4.4).
//
// Extensions are pure functions over (context, scope, params); Renderer
// itself owns only the graph, the substitution, and the two post-processing
// passes. Concrete extensions (echo, shell, script, json, date, random, ai)
// live under internal/render/ext and are registered with a Renderer at
// construction time, mirroring the teacher's registry-of-handlers shape
// (the same pattern internal/dispatch's executor registry uses) applied
// to a pull-based evaluator instead of a push-based dispatch loop.
package render
