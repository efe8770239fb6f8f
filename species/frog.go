// Package species holds creature factories registered into an entity
// registry at setup time
package species

import (
	"math/rand"

	"github.com/sondersim/sonder/component"
	"github.com/sondersim/sonder/entity"
	"github.com/sondersim/sonder/parameter"
)

// RegisterDefaults wires the built-in species into a registry.
// The rand source is shared by all AI components so one seed
// reproduces a whole run
func RegisterDefaults(reg *entity.Registry, rng *rand.Rand) {
	reg.Register("frog", func(x, y int) *entity.Entity {
		return NewFrog(x, y, rng)
	})
}

// NewFrog builds the starting creature: a random-walking amphibian
// with baseline stats and evolution tracking
func NewFrog(x, y int, rng *rand.Rand) *entity.Entity {
	e := entity.New(x, y)

	e.AddComponent(component.NewStats(
		parameter.FrogHealth,
		parameter.FrogAttack,
		parameter.FrogDefense,
		parameter.FrogSpeed,
	))
	e.AddComponent(component.NewMovement(parameter.FrogMoveCooldown))
	e.AddComponent(component.NewAI(parameter.FrogActionInterval, rng))
	e.AddComponent(component.NewEvolution())

	e.AddTag("frog")
	e.AddTag("animal")
	e.AddTag("amphibian")

	return e
}

// NewPlayerFrog builds a frog steered by input instead of AI
func NewPlayerFrog(x, y int) *entity.Entity {
	e := entity.New(x, y)

	e.AddComponent(component.NewStats(
		parameter.FrogHealth,
		parameter.FrogAttack,
		parameter.FrogDefense,
		parameter.FrogSpeed,
	))
	e.AddComponent(component.NewMovement(parameter.FrogMoveCooldown))
	e.AddComponent(component.NewPlayerControl())
	e.AddComponent(component.NewEvolution())

	e.AddTag("frog")
	e.AddTag("animal")
	e.AddTag("amphibian")
	e.AddTag("player")

	return e
}
