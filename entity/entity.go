package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entity is a container of components and tags with a grid position.
// IDs are opaque, generated at construction and never reused while the
// entity is live. X and Y are mutated only by the movement system
// during phase 2; every position change must go through
// WorldState.Relocate in the same mutation step
type Entity struct {
	ID   string
	X, Y int

	components map[Kind]Component
	tags       map[string]struct{}
}

// New creates an entity at the given position with a fresh ID
func New(x, y int) *Entity {
	return &Entity{
		ID:         uuid.NewString(),
		X:          x,
		Y:          y,
		components: make(map[Kind]Component),
		tags:       make(map[string]struct{}),
	}
}

// AddComponent attaches a component, replacing any existing component
// of the same kind, and binds the back-reference
func (e *Entity) AddComponent(c Component) {
	e.components[c.Kind()] = c
	c.Bind(e)
}

// RemoveComponent detaches and returns the component of the given kind
func (e *Entity) RemoveComponent(k Kind) (Component, bool) {
	c, ok := e.components[k]
	if ok {
		delete(e.components, k)
	}
	return c, ok
}

// Component returns the component of the given kind.
// Absence is a normal, expected outcome, not an error
func (e *Entity) Component(k Kind) (Component, bool) {
	c, ok := e.components[k]
	return c, ok
}

// HasComponent reports whether a component of the given kind is attached
func (e *Entity) HasComponent(k Kind) bool {
	_, ok := e.components[k]
	return ok
}

// ComponentCount returns the number of attached components
func (e *Entity) ComponentCount() int {
	return len(e.components)
}

// AddTag attaches an informational label. Tags carry no behavior
func (e *Entity) AddTag(tag string) {
	e.tags[tag] = struct{}{}
}

// RemoveTag detaches a label
func (e *Entity) RemoveTag(tag string) {
	delete(e.tags, tag)
}

// HasTag reports whether the label is attached
func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// Update runs phase 1 for this entity: each enabled component updates
// in the fixed kind order. Components only record intentions here;
// world mutations happen in phase 2
func (e *Entity) Update(now time.Time) {
	for _, k := range updateOrder {
		if c, ok := e.components[k]; ok && c.Enabled() {
			c.Update(now)
		}
	}
}
