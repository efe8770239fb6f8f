package component

import "github.com/sondersim/sonder/entity"

// Typed accessors. Each returns the concrete component or false when
// absent; absence is a normal condition callers branch on

// Stats returns the entity's stats component
func Stats(e *entity.Entity) (*StatsComponent, bool) {
	c, ok := e.Component(entity.KindStats)
	if !ok {
		return nil, false
	}
	s, ok := c.(*StatsComponent)
	return s, ok
}

// Movement returns the entity's movement component
func Movement(e *entity.Entity) (*MovementComponent, bool) {
	c, ok := e.Component(entity.KindMovement)
	if !ok {
		return nil, false
	}
	m, ok := c.(*MovementComponent)
	return m, ok
}

// AI returns the entity's AI component
func AI(e *entity.Entity) (*AIComponent, bool) {
	c, ok := e.Component(entity.KindAI)
	if !ok {
		return nil, false
	}
	a, ok := c.(*AIComponent)
	return a, ok
}

// PlayerControl returns the entity's player control component
func PlayerControl(e *entity.Entity) (*PlayerControlComponent, bool) {
	c, ok := e.Component(entity.KindPlayerControl)
	if !ok {
		return nil, false
	}
	p, ok := c.(*PlayerControlComponent)
	return p, ok
}

// Evolution returns the entity's evolution component
func Evolution(e *entity.Entity) (*EvolutionComponent, bool) {
	c, ok := e.Component(entity.KindEvolution)
	if !ok {
		return nil, false
	}
	ev, ok := c.(*EvolutionComponent)
	return ev, ok
}
