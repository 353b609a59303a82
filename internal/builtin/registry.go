package builtin

import "github.com/espanso/espanso-core/internal/event"

// Registry resolves a built-in match id to its BuiltIn entry.
type Registry struct {
	byID map[event.MatchID]BuiltIn
}

// NewRegistry indexes matches by id, failing if two entries collide.
func NewRegistry(matches []BuiltIn) (*Registry, error) {
	byID := make(map[event.MatchID]BuiltIn, len(matches))
	for _, m := range matches {
		if _, exists := byID[m.ID]; exists {
			return nil, ErrDuplicateID
		}
		byID[m.ID] = m
	}
	return &Registry{byID: byID}, nil
}

// Lookup returns the BuiltIn bound to id, if any.
func (r *Registry) Lookup(id event.MatchID) (BuiltIn, bool) {
	bi, ok := r.byID[id]
	return bi, ok
}

// Count returns the number of registered built-ins.
func (r *Registry) Count() int {
	return len(r.byID)
}
