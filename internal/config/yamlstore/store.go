package yamlstore

import "github.com/espanso/espanso-core/internal/event"

// override is one app-specific layer: matches that apply only when the
// focused application satisfies Filter.
type override struct {
	filter  AppFilter
	matches []event.Match
}

// Store is the resolved, in-memory match set: a base layer plus zero or
// more app-specific overrides. It is built once at startup by Loader and
// is read-only afterward.
type Store struct {
	base      []event.Match
	overrides []override
}

// Resolve returns the effective match list for the given focused
// application: the base layer plus every override whose filter matches,
// later overrides' matches appended after earlier ones. List order gives
// no precedence: the matcher reports every entry whose trigger fires.
func (s *Store) Resolve(app AppInfo) []event.Match {
	matches := make([]event.Match, len(s.base))
	copy(matches, s.base)
	for _, ov := range s.overrides {
		if ov.filter.Matches(app) {
			matches = append(matches, ov.matches...)
		}
	}
	return matches
}

// AsCache builds a *state.MatchCache-compatible index (the id-keyed view
// Multiplex needs) over the full resolved set for app, without requiring
// callers to depend on internal/state. Callers building a MatchLookup
// directly should use internal/state.NewMatchCache(store.Resolve(app)).
func (s *Store) AsCache(app AppInfo) map[event.MatchID]event.Match {
	resolved := s.Resolve(app)
	byID := make(map[event.MatchID]event.Match, len(resolved))
	for _, m := range resolved {
		byID[m.ID] = m
	}
	return byID
}
