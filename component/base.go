package component

import "github.com/sondersim/sonder/entity"

// Base carries the owner back-reference and enabled flag shared by all
// components. Embed in component structs to eliminate boilerplate
type Base struct {
	owner   *entity.Entity
	enabled bool
}

func newBase() Base {
	return Base{enabled: true}
}

// Bind sets the non-owning back-reference to the owning entity.
// Called by Entity.AddComponent
func (b *Base) Bind(owner *entity.Entity) {
	b.owner = owner
}

// Owner returns the owning entity, nil before attachment
func (b *Base) Owner() *entity.Entity {
	return b.owner
}

// Enabled reports whether systems and the phase-1 update process this
// component
func (b *Base) Enabled() bool {
	return b.enabled
}

// SetEnabled toggles processing without resetting component state
func (b *Base) SetEnabled(v bool) {
	b.enabled = v
}
