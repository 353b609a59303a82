package dispatch

import (
	"reflect"
	"sort"
	"sync"

	"github.com/espanso/espanso-core/internal/event"
)

// Registry maps an event type name to the Executor that handles it.
type Registry struct {
	mu        sync.RWMutex
	executors map[string]Executor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[string]Executor)}
}

// Register binds typeName to e, replacing any previous binding.
func (r *Registry) Register(typeName string, e Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executors[typeName] = e
}

// Unregister removes the executor bound to typeName, if any.
func (r *Registry) Unregister(typeName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.executors, typeName)
}

// Get returns the executor bound to typeName, or nil if none is registered.
func (r *Registry) Get(typeName string) Executor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.executors[typeName]
}

// Has reports whether an executor is registered for typeName.
func (r *Registry) Has(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.executors[typeName]
	return ok
}

// List returns the registered type names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.executors))
	for name := range r.executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered type names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.executors)
}

// TypeName returns the dynamic type name of an event.Type value, e.g.
// "TextInject" for an event.TextInject, for use as a Registry key.
func TypeName(ev event.Type) string {
	t := reflect.TypeOf(ev)
	if t == nil {
		return ""
	}
	return t.Name()
}
