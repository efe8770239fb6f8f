package entity

import (
	"fmt"
	"sort"
)

// Factory constructs an entity of one species at a position
type Factory func(x, y int) *Entity

// Registry maps species names to factories. It is populated once at
// setup and passed explicitly into whatever spawns entities; there is
// no process-wide registry
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under a species name, replacing any previous one
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Create builds an entity of the named species.
// An unregistered name is a hard configuration error
func (r *Registry) Create(name string, x, y int) (*Entity, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", name)
	}
	return factory(x, y), nil
}

// Names returns the registered species names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
