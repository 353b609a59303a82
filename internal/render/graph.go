package render

import "github.com/espanso/espanso-core/internal/event"

type color int

const (
	white color = iota
	grey
	black
)

// dependenciesOf returns the names v depends on: every {{w}} referenced in
// v's string-valued params when InjectVars is set, plus every name in
// v.DependsOn.
func dependenciesOf(v event.Variable) []string {
	var deps []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}
	if v.InjectVars {
		for _, p := range v.Params {
			if p.Is == event.KindString {
				for _, ref := range referencedNames(p.Str) {
					add(ref)
				}
			}
		}
	}
	for _, d := range v.DependsOn {
		add(d)
	}
	return deps
}

// topoSort returns vars reachable from roots, ordered so that every
// variable appears after everything it depends on. byName indexes the
// effective variable list. Returns ErrCircularDependency on a cycle.
func topoSort(roots []string, byName map[string]event.Variable) ([]event.Variable, error) {
	colors := make(map[string]color)
	var order []event.Variable

	var visit func(name string) error
	visit = func(name string) error {
		v, ok := byName[name]
		if !ok {
			// Referenced but not a configured variable: not a graph error.
			// In the body it resolves to empty string at substitution time
			// (spec §4.4 step 6); in an inject_vars param it fails later
			// as ErrMissingVariable.
			return nil
		}
		switch colors[name] {
		case black:
			return nil
		case grey:
			return ErrCircularDependency
		}
		colors[name] = grey
		for _, dep := range dependenciesOf(v) {
			if err := visit(dep); err != nil {
				return err
			}
		}
		colors[name] = black
		order = append(order, v)
		return nil
	}

	for _, r := range roots {
		if err := visit(r); err != nil {
			return nil, err
		}
	}
	return order, nil
}
