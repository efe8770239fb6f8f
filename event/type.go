package event

// Type represents the kind of game event
type Type int

const (
	// TypeSpawn records an entity entering the world
	// Trigger: initial population, future spawner systems
	// Consumer: data.Recorder | Payload: nil
	TypeSpawn Type = iota

	// TypeMove records a committed movement
	// Trigger: MovementSystem after a successful commit
	// Consumer: data.Recorder | Payload: nil
	TypeMove

	// TypeDespawn records an entity leaving the world
	// Trigger: WorldState.RemoveEntity callers
	// Consumer: data.Recorder | Payload: nil
	TypeDespawn

	// TypeEvolve records a generation advance
	// Trigger: EvolutionSystem when the point threshold is reached
	// Consumer: data.Recorder | Payload: generation
	TypeEvolve

	// TypeSnapshot carries a periodic world-state summary
	// Trigger: TelemetrySystem every SnapshotInterval ticks
	// Consumer: data.Recorder | Payload: entity_count, active_entities
	TypeSnapshot
)

// String returns the event type name used in the persistence layer
func (t Type) String() string {
	switch t {
	case TypeSpawn:
		return "spawn"
	case TypeMove:
		return "move"
	case TypeDespawn:
		return "despawn"
	case TypeEvolve:
		return "evolve"
	case TypeSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// GameEvent is a single simulation event emitted during a tick.
// EntityID is empty for world-level events. Tick is stamped by
// WorldState.PushEvent with the tick the event occurred in
type GameEvent struct {
	Type     Type
	EntityID string
	X, Y     int
	Payload  map[string]any
	Tick     uint64
}
