package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-forgery/pkg/schema"
)

// Registry stores custom providers by name. Names that collide with built-in
// kinds are rejected (case-sensitively), so a schema reference is never
// ambiguous between a built-in and a custom pool.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]*CustomProvider
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]*CustomProvider),
	}
}

// Register adds a provider under name. Reserved names and duplicates return
// an error.
func (r *Registry) Register(name string, p *CustomProvider) error {
	if p == nil {
		return fmt.Errorf("provider: provider is required")
	}
	if name == "" {
		return fmt.Errorf("provider: provider name is required")
	}
	if schema.IsReserved(name) {
		return fmt.Errorf("provider %q: %w", name, ErrNameCollision)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %q: %w", name, ErrDuplicate)
	}

	r.providers[name] = p
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, p *CustomProvider) {
	if err := r.Register(name, p); err != nil {
		panic(err)
	}
}

// RegisterUniform builds a uniform pool from options and registers it.
func (r *Registry) RegisterUniform(name string, options []string) error {
	p, err := Uniform(options)
	if err != nil {
		return fmt.Errorf("provider %q: %w", name, err)
	}
	return r.Register(name, p)
}

// RegisterWeighted builds a weighted pool from options and registers it.
func (r *Registry) RegisterWeighted(name string, options []WeightedOption) error {
	p, err := Weighted(options)
	if err != nil {
		return fmt.Errorf("provider %q: %w", name, err)
	}
	return r.Register(name, p)
}

// Get retrieves a provider by name.
func (r *Registry) Get(name string) (*CustomProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q: %w", name, ErrNotFound)
	}
	return p, nil
}

// Has reports whether a provider is registered. Satisfies schema.ProviderSet.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}

// Remove drops a provider, reporting whether it existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.providers[name]
	delete(r.providers, name)
	return ok
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
