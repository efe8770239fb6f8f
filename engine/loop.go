package engine

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sondersim/sonder/parameter"
)

// Observer is notified with the completed world once per tick, after
// phase 3 and never mid-tick. Observers must not mutate the world and
// must not re-enter the loop
type Observer func(w *World)

type observerEntry struct {
	id int
	fn Observer
}

// GameLoop drives the phased tick over one world:
//
//	phase 1: each entity updates its own components, recording intentions
//	phase 2: systems commit world mutations in ascending priority order
//	phase 3: the world advances its tick counter
//	phase 4: observers are notified synchronously in registration order
//
// Pacing is soft real-time: a tick fires when the elapsed time since
// the previous tick reaches the tick interval, otherwise the loop
// idles briefly. Ticks may slip under load but never run ahead, and
// missed ticks are not backfilled — at most one tick fires per check
type GameLoop struct {
	world        *World
	clock        Clock
	tickInterval time.Duration

	systems    []System
	observers  []observerEntry
	nextObsID  int
	observerMu sync.Mutex

	running  atomic.Bool
	paused   atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop over the world at the target tick rate.
// A non-positive tick rate is a hard configuration error
func NewGameLoop(world *World, tickRate float64, clock Clock) (*GameLoop, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("invalid tick rate %v", tickRate)
	}
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &GameLoop{
		world:        world,
		clock:        clock,
		tickInterval: time.Duration(float64(time.Second) / tickRate),
		stopChan:     make(chan struct{}),
	}, nil
}

// World returns the world this loop drives
func (gl *GameLoop) World() *World {
	return gl.world
}

// TickInterval returns the pacing interval derived from the tick rate
func (gl *GameLoop) TickInterval() time.Duration {
	return gl.tickInterval
}

// AddSystem registers a system, binds its world reference and keeps
// the system list sorted by ascending priority. The sort is stable so
// equal priorities preserve registration order
func (gl *GameLoop) AddSystem(s System) {
	s.Bind(gl.world)
	gl.systems = append(gl.systems, s)
	sort.SliceStable(gl.systems, func(i, j int) bool {
		return gl.systems[i].Priority() < gl.systems[j].Priority()
	})
}

// Systems returns the registered systems in execution order
func (gl *GameLoop) Systems() []System {
	result := make([]System, len(gl.systems))
	copy(result, gl.systems)
	return result
}

// AddObserver registers a per-tick callback and returns a handle for
// RemoveObserver
func (gl *GameLoop) AddObserver(fn Observer) int {
	gl.observerMu.Lock()
	defer gl.observerMu.Unlock()
	gl.nextObsID++
	gl.observers = append(gl.observers, observerEntry{id: gl.nextObsID, fn: fn})
	return gl.nextObsID
}

// RemoveObserver unregisters the callback with the given handle
func (gl *GameLoop) RemoveObserver(id int) {
	gl.observerMu.Lock()
	defer gl.observerMu.Unlock()
	for i, entry := range gl.observers {
		if entry.id == id {
			gl.observers = append(gl.observers[:i], gl.observers[i+1:]...)
			return
		}
	}
}

// Start runs the loop until Stop is called or maxTicks completed ticks
// elapse (0 means unbounded). Blocks the calling goroutine; the whole
// simulation is single-threaded inside Step. A stopped loop cannot be
// restarted
func (gl *GameLoop) Start(maxTicks uint64) {
	if !gl.running.CompareAndSwap(false, true) {
		return
	}
	defer gl.running.Store(false)

	last := gl.clock.Now()
	var ticks uint64

	for {
		select {
		case <-gl.stopChan:
			return
		default:
		}

		now := gl.clock.Now()
		if !gl.paused.Load() && now.Sub(last) >= gl.tickInterval {
			gl.Step(now)
			last = now
			ticks++
			if maxTicks > 0 && ticks >= maxTicks {
				return
			}
		}

		time.Sleep(parameter.LoopIdle)
	}
}

// Stop halts the loop at the next tick boundary, never mid-phase.
// Terminal for this run; safe to call from any goroutine and more
// than once
func (gl *GameLoop) Stop() {
	gl.stopOnce.Do(func() {
		close(gl.stopChan)
	})
}

// Pause suspends ticking; the loop keeps polling time but performs no
// tick and no observer notification while paused
func (gl *GameLoop) Pause() {
	gl.paused.Store(true)
}

// Resume clears the pause flag
func (gl *GameLoop) Resume() {
	gl.paused.Store(false)
}

// Running reports whether Start is active
func (gl *GameLoop) Running() bool {
	return gl.running.Load()
}

// Paused reports whether ticking is suspended
func (gl *GameLoop) Paused() bool {
	return gl.paused.Load()
}

// Step executes one full tick at the given simulated time.
// Exported for deterministic tests; Start calls it on schedule
func (gl *GameLoop) Step(now time.Time) {
	state := gl.world.State

	// Phase 1: per-entity decision updates, intention writes only
	for _, e := range state.Entities() {
		e.Update(now)
	}

	// Phase 2: systems commit in priority order
	for _, s := range gl.systems {
		if s.Enabled() {
			s.Update(state, now)
		}
	}

	// Phase 3: world bookkeeping
	gl.world.Tick()

	// Phase 4: observer notification, synchronous, registration order
	gl.observerMu.Lock()
	observers := make([]observerEntry, len(gl.observers))
	copy(observers, gl.observers)
	gl.observerMu.Unlock()

	for _, entry := range observers {
		entry.fn(gl.world)
	}
}
