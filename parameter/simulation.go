package parameter

import "time"

// World defaults, overridable via config file and flags
const (
	DefaultWorldWidth  = 100
	DefaultWorldHeight = 100
	DefaultTickRate    = 10.0 // ticks per second
	DefaultEntities    = 10
)

// Loop timing
const (
	// LoopIdle is the sleep granularity between tick-deadline checks.
	// Short enough that ticks never run late by more than ~1ms at
	// default rates, long enough to avoid a busy-wait
	LoopIdle = 1 * time.Millisecond
)

// System priorities, ascending execution order within phase 2
const (
	PriorityMovement  = 10
	PriorityEvolution = 20
	PriorityTelemetry = 100
)

// Telemetry
const (
	// SnapshotInterval is the tick period between world-state snapshots
	SnapshotInterval = 10
)

// Player input
const (
	// InputBufferSize bounds queued key symbols between ticks.
	// Extra input beyond the buffer is dropped, not blocked on
	InputBufferSize = 8
)
