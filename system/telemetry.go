package system

import (
	"time"

	"github.com/sondersim/sonder/component"
	"github.com/sondersim/sonder/engine"
	"github.com/sondersim/sonder/event"
	"github.com/sondersim/sonder/parameter"
)

// TelemetrySystem emits a periodic world-state snapshot event for the
// persistence layer: tick, entity count and active entity count
type TelemetrySystem struct {
	engine.SystemBase

	interval uint64
}

// NewTelemetrySystem creates a snapshot emitter with the default period
func NewTelemetrySystem() *TelemetrySystem {
	return &TelemetrySystem{
		SystemBase: engine.NewSystemBase(),
		interval:   parameter.SnapshotInterval,
	}
}

// Priority runs last so snapshots observe the tick's final state
func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

// Update pushes a snapshot every interval ticks. Active entities are
// those alive per their stats component; entities without stats count
// as active
func (s *TelemetrySystem) Update(state *engine.WorldState, now time.Time) {
	if state.TickCount()%s.interval != 0 {
		return
	}

	active := 0
	for _, e := range state.Entities() {
		if stats, ok := component.Stats(e); ok && !stats.Alive() {
			continue
		}
		active++
	}

	state.PushEvent(event.GameEvent{
		Type: event.TypeSnapshot,
		Payload: map[string]any{
			"entity_count":    state.EntityCount(),
			"active_entities": active,
		},
	})
}
