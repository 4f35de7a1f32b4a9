package store

import (
	"sort"
	"sync"
)

// Registry hands out Store instances by name, creating each one on
// first use. Two lookups with the same name return the same instance,
// so subsystems sharing a profile name share its store. Construct one
// Registry at process start and pass it to whatever needs a store.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Store returns the store registered under name, creating it if
// needed.
func (r *Registry) Store(name string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stores[name]
	if !ok {
		s = New()
		r.stores[name] = s
	}
	return s
}

// Has reports whether a store is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stores[name]
	return ok
}

// Names returns the registered store names, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
