package entity

import "time"

// Kind discriminates component slots on an entity.
// At most one component per kind may be attached
type Kind uint8

const (
	KindStats Kind = iota
	KindMovement
	KindAI
	KindPlayerControl
	KindEvolution

	kindCount
)

// updateOrder fixes the phase-1 iteration order over a single entity's
// components so decision logic is deterministic across runs
var updateOrder = [kindCount]Kind{
	KindStats,
	KindMovement,
	KindAI,
	KindPlayerControl,
	KindEvolution,
}

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindStats:
		return "stats"
	case KindMovement:
		return "movement"
	case KindAI:
		return "ai"
	case KindPlayerControl:
		return "player_control"
	case KindEvolution:
		return "evolution"
	default:
		return "unknown"
	}
}

// Component is a capability unit attached to one entity.
// Bind is called once when the component is attached and sets the
// non-owning back-reference to the owner; the entity exclusively owns
// its components.
//
// Update runs during phase 1 of a tick with the current simulated time.
// Components may only mutate their own state or, for decision logic,
// the owning entity's movement intention. The spatial index is never
// touched from a component
type Component interface {
	Kind() Kind
	Enabled() bool
	Bind(owner *Entity)
	Update(now time.Time)
}
