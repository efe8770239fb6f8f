package component

import (
	"time"

	"github.com/sondersim/sonder/entity"
	"github.com/sondersim/sonder/parameter"
)

// EvolutionComponent accumulates evolution points toward generation
// advances and tracks acquired traits
type EvolutionComponent struct {
	Base

	Points     int
	Generation int
	Mutations  []string
	Traits     map[string]float64
}

// NewEvolution creates a first-generation evolution component
func NewEvolution() *EvolutionComponent {
	return &EvolutionComponent{
		Base:       newBase(),
		Generation: 1,
		Traits:     make(map[string]float64),
	}
}

// Kind returns the component discriminator
func (ev *EvolutionComponent) Kind() entity.Kind {
	return entity.KindEvolution
}

// Update is a no-op; points accrue through the evolution system
func (ev *EvolutionComponent) Update(now time.Time) {}

// AddPoints increases the evolution point accumulator
func (ev *EvolutionComponent) AddPoints(points int) {
	ev.Points += points
}

// CanEvolve reports whether enough points are banked for an advance
func (ev *EvolutionComponent) CanEvolve() bool {
	return ev.Points >= parameter.EvolveCost
}

// Evolve spends the point cost and advances the generation.
// Returns false when the threshold is not met
func (ev *EvolutionComponent) Evolve() bool {
	if !ev.CanEvolve() {
		return false
	}
	ev.Points -= parameter.EvolveCost
	ev.Generation++
	return true
}
