package parameter

import "time"

// Frog baseline stats
const (
	FrogHealth  = 20
	FrogAttack  = 3
	FrogDefense = 1
	FrogSpeed   = 2
)

// Frog behavior timing
const (
	// FrogActionInterval is the delay between AI decisions
	FrogActionInterval = 1 * time.Second

	// FrogMoveCooldown is the minimum delay between committed moves
	FrogMoveCooldown = 500 * time.Millisecond
)

// Evolution mechanics
const (
	// EvolveCost is the point threshold consumed by one generation advance
	EvolveCost = 10

	// EvolutionPointsPerTick is the passive accrual rate for living entities
	EvolutionPointsPerTick = 1
)
