package system

import (
	"time"

	"github.com/sondersim/sonder/component"
	"github.com/sondersim/sonder/engine"
	"github.com/sondersim/sonder/event"
	"github.com/sondersim/sonder/parameter"
)

// EvolutionSystem accrues evolution points for living entities and
// advances generations once the threshold is banked
type EvolutionSystem struct {
	engine.SystemBase
}

// NewEvolutionSystem creates the evolution processor
func NewEvolutionSystem() *EvolutionSystem {
	return &EvolutionSystem{SystemBase: engine.NewSystemBase()}
}

// Priority runs after movement so point accrual sees final positions
func (s *EvolutionSystem) Priority() int {
	return parameter.PriorityEvolution
}

// Update adds the per-tick point accrual and triggers any pending
// generation advance. Entities with a stats component must be alive
// to accrue; entities without stats accrue unconditionally
func (s *EvolutionSystem) Update(state *engine.WorldState, now time.Time) {
	for _, e := range state.Entities() {
		ev, ok := component.Evolution(e)
		if !ok || !ev.Enabled() {
			continue
		}
		if stats, hasStats := component.Stats(e); hasStats && !stats.Alive() {
			continue
		}

		ev.AddPoints(parameter.EvolutionPointsPerTick)
		if ev.Evolve() {
			state.PushEvent(event.GameEvent{
				Type:     event.TypeEvolve,
				EntityID: e.ID,
				X:        e.X,
				Y:        e.Y,
				Payload:  map[string]any{"generation": ev.Generation},
			})
		}
	}
}
