package state

import "github.com/espanso/espanso-core/internal/event"

// MatchCache is the immutable, post-load view of all configured matches,
// indexed by id. It is built once at startup and satisfies
// middleware.MatchLookup via its Lookup method.
type MatchCache struct {
	byID map[event.MatchID]event.Match
}

// NewMatchCache indexes matches by id, failing if two share an id (a
// config-loading bug, not a runtime condition).
func NewMatchCache(matches []event.Match) (*MatchCache, error) {
	byID := make(map[event.MatchID]event.Match, len(matches))
	for _, m := range matches {
		if _, exists := byID[m.ID]; exists {
			return nil, ErrDuplicateMatchID
		}
		byID[m.ID] = m
	}
	return &MatchCache{byID: byID}, nil
}

// Lookup resolves id against the cache. Its signature matches
// middleware.MatchLookup so a *MatchCache can be passed to
// middleware.NewMultiplex directly.
func (c *MatchCache) Lookup(id event.MatchID) (event.Match, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Count returns the number of cached matches.
func (c *MatchCache) Count() int {
	return len(c.byID)
}

// All returns every cached match, in no particular order. Intended for
// builtin.Context's config-summary built-ins and for diagnostics, not for
// hot-path lookups.
func (c *MatchCache) All() []event.Match {
	all := make([]event.Match, 0, len(c.byID))
	for _, m := range c.byID {
		all = append(all, m)
	}
	return all
}
