package transform

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores transforms by name, providing discovery and duplication
// safeguards. Embedders can share one registry across Hamiltonians or wire a
// dedicated one per instance.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]Transform),
	}
}

// Register adds a transform under Canonical(t.Name()), so a backend may
// register itself as "JW" and still serve every Jordan-Wigner spelling.
// Duplicate names return an error.
func (r *Registry) Register(t Transform) error {
	if t == nil {
		return fmt.Errorf("transform: transform is required")
	}
	name := Canonical(t.Name())
	if name == "" {
		return fmt.Errorf("transform: transform name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transforms[name]; exists {
		return fmt.Errorf("transform: %q already registered", name)
	}

	r.transforms[name] = t
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(t Transform) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get retrieves a transform by exact registry name.
func (r *Registry) Get(name string) (Transform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.transforms[name]
	if !ok {
		return nil, fmt.Errorf("transform: %q not registered", name)
	}
	return t, nil
}

// Resolve retrieves a transform by configured name, folding built-in aliases
// first. Custom names resolve exactly as written.
func (r *Registry) Resolve(name string) (Transform, error) {
	return r.Get(Canonical(name))
}

// List returns the sorted registry names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a transform is registered under the exact name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.transforms[name]
	return ok
}
