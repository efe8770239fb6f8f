package system

import (
	"time"

	"github.com/sondersim/sonder/component"
	"github.com/sondersim/sonder/engine"
	"github.com/sondersim/sonder/event"
	"github.com/sondersim/sonder/parameter"
)

// MovementSystem commits pending movement intentions recorded during
// phase 1. It is the only code path that mutates entity positions,
// and every commit maintains the spatial index in the same step
type MovementSystem struct {
	engine.SystemBase
}

// NewMovementSystem creates the movement committer
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{SystemBase: engine.NewSystemBase()}
}

// Priority runs movement before evolution and telemetry
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update commits each non-zero pending intention whose cooldown has
// elapsed. Out-of-bounds targets are silently clamped to the boundary,
// never rejected. A zero intention is skipped entirely so a no-op
// never resets the cooldown timer
func (s *MovementSystem) Update(state *engine.WorldState, now time.Time) {
	world := s.World()

	for _, e := range state.Entities() {
		mv, ok := component.Movement(e)
		if !ok || !mv.Enabled() {
			continue
		}
		dx, dy := mv.Intent()
		if dx == 0 && dy == 0 {
			continue
		}
		if !mv.CanMoveAt(now) {
			continue
		}

		oldX, oldY := e.X, e.Y
		e.X, e.Y = world.Clamp(e.X+dx, e.Y+dy)
		mv.Commit(now)
		state.Relocate(e, oldX, oldY)

		state.PushEvent(event.GameEvent{
			Type:     event.TypeMove,
			EntityID: e.ID,
			X:        e.X,
			Y:        e.Y,
		})
	}
}
