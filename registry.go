package nodekit

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry holds the components available to a host, keyed by Meta().Name.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]Component)}
}

// Register adds c under its declared name. Registering a nil component, an
// empty name, or a duplicate name is an error.
func (r *Registry) Register(c Component) error {
	if c == nil {
		return fmt.Errorf("component must not be nil")
	}
	name := c.Meta().Name
	if name == "" {
		return fmt.Errorf("component name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.components[name]; exists {
		return fmt.Errorf("component %q already registered", name)
	}
	r.components[name] = c
	return nil
}

// Get returns the component registered under name.
func (r *Registry) Get(name string) (Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrComponentNotFound)
	}
	return c, nil
}

// Metas returns the metadata of all registered components, sorted by name.
func (r *Registry) Metas() []Meta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	metas := make([]Meta, 0, len(r.components))
	for _, c := range r.components {
		metas = append(metas, c.Meta())
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].Name < metas[j].Name })
	return metas
}

// Run invokes the named component with params. An unknown name yields a
// validation failure, matching the pre-call error taxonomy.
func (r *Registry) Run(ctx context.Context, name string, params Params) Result {
	c, err := r.Get(name)
	if err != nil {
		return Fail(err)
	}
	return Run(ctx, c, params)
}
