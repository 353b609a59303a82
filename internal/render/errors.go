package render

import "errors"

var (
	// ErrCircularDependency is returned when the variable dependency graph
	// contains a cycle reachable from the body's {{…}} references.
	ErrCircularDependency = errors.New("render: circular variable dependency")
	// ErrMissingVariable is returned when an inject_vars param references a
	// variable name that is neither already evaluated nor reachable.
	ErrMissingVariable = errors.New("render: missing variable reference")
	// ErrUnknownExtension is returned when a variable's var_type has no
	// registered extension.
	ErrUnknownExtension = errors.New("render: unknown extension")
	// ErrNoSuchMatchTemplate is returned by the var_type=="match" special
	// case when no configured match has the requested trigger.
	ErrNoSuchMatchTemplate = errors.New("render: no match template for trigger")
)
