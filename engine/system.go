package engine

import "time"

// System processes world state once per tick during phase 2.
// Systems read intentions recorded in phase 1 and commit world
// mutations, including spatial-index maintenance. Lower priority runs
// first; ties keep registration order
type System interface {
	Update(state *WorldState, now time.Time)
	Priority() int
	Enabled() bool
	Bind(world *World)
}

// SystemBase provides the world back-reference and enabled flag.
// Embed in system structs; the loop calls Bind once at registration
type SystemBase struct {
	world   *World
	enabled bool
}

// NewSystemBase creates an enabled system base
func NewSystemBase() SystemBase {
	return SystemBase{enabled: true}
}

// Bind sets the non-owning world reference, used for bounds checks
func (b *SystemBase) Bind(world *World) {
	b.world = world
}

// World returns the world this system was registered into
func (b *SystemBase) World() *World {
	return b.world
}

// Enabled reports whether the loop runs this system's Update
func (b *SystemBase) Enabled() bool {
	return b.enabled
}

// SetEnabled toggles the system for subsequent ticks
func (b *SystemBase) SetEnabled(v bool) {
	b.enabled = v
}
