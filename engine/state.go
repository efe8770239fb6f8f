package engine

import (
	"slices"

	"github.com/sondersim/sonder/entity"
	"github.com/sondersim/sonder/event"
)

// Position is an integer grid coordinate pair, the spatial-index key
type Position struct {
	X, Y int
}

// WorldState owns the entity collection and the spatial index.
//
// Invariant, held after every mutation primitive: each entity's id is
// recorded in exactly the bucket for its current position and no
// other, and empty buckets are deleted, never left dangling.
//
// Entity iteration preserves insertion order so phase 1 is
// deterministic
type WorldState struct {
	entities  map[string]*entity.Entity
	order     []string
	grid      map[Position]map[string]struct{}
	tickCount uint64
	events    *event.Queue
}

// NewWorldState creates an empty world state
func NewWorldState() *WorldState {
	return &WorldState{
		entities: make(map[string]*entity.Entity),
		grid:     make(map[Position]map[string]struct{}),
	}
}

// SetEventQueue wires the queue PushEvent publishes to.
// A nil queue (the default) makes PushEvent a no-op
func (s *WorldState) SetEventQueue(q *event.Queue) {
	s.events = q
}

// PushEvent stamps the current tick onto the event and publishes it.
// Fire-and-forget: collaborator failures never reach the simulation
func (s *WorldState) PushEvent(ev event.GameEvent) {
	if s.events == nil {
		return
	}
	ev.Tick = s.tickCount
	s.events.Push(ev)
}

// AddEntity inserts an entity and records it in the spatial index.
// Re-adding an id already present is a no-op
func (s *WorldState) AddEntity(e *entity.Entity) {
	if _, ok := s.entities[e.ID]; ok {
		return
	}
	s.entities[e.ID] = e
	s.order = append(s.order, e.ID)
	s.addToGrid(e.ID, Position{e.X, e.Y})
}

// RemoveEntity removes an entity and its spatial-index record.
// Returns the removed entity, or false when the id is absent
func (s *WorldState) RemoveEntity(id string) (*entity.Entity, bool) {
	e, ok := s.entities[id]
	if !ok {
		return nil, false
	}
	delete(s.entities, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = append(s.order[:i], s.order[i+1:]...)
	}
	s.removeFromGrid(id, Position{e.X, e.Y})
	return e, true
}

// Entity returns the live entity with the given id
func (s *WorldState) Entity(id string) (*entity.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Entities returns the live entities in insertion order
func (s *WorldState) Entities() []*entity.Entity {
	result := make([]*entity.Entity, 0, len(s.order))
	for _, id := range s.order {
		if e, ok := s.entities[id]; ok {
			result = append(result, e)
		}
	}
	return result
}

// EntitiesAt returns the live entities recorded at a position.
// Ids referencing an entity no longer present are filtered out
func (s *WorldState) EntitiesAt(x, y int) []*entity.Entity {
	bucket, ok := s.grid[Position{x, y}]
	if !ok {
		return nil
	}
	result := make([]*entity.Entity, 0, len(bucket))
	for _, id := range s.order {
		if _, in := bucket[id]; !in {
			continue
		}
		if e, live := s.entities[id]; live {
			result = append(result, e)
		}
	}
	return result
}

// Relocate moves an entity's spatial-index record from oldPos to its
// current position. The sole sanctioned index maintenance for a
// position change; callers mutate entity.X/Y and call this in the
// same step
func (s *WorldState) Relocate(e *entity.Entity, oldX, oldY int) {
	s.removeFromGrid(e.ID, Position{oldX, oldY})
	s.addToGrid(e.ID, Position{e.X, e.Y})
}

// EntityCount returns the number of live entities
func (s *WorldState) EntityCount() int {
	return len(s.entities)
}

// TickCount returns the monotonically increasing tick counter
func (s *WorldState) TickCount() uint64 {
	return s.tickCount
}

// BucketCount returns the number of non-empty spatial buckets
func (s *WorldState) BucketCount() int {
	return len(s.grid)
}

// InBucket reports whether the id is recorded at the position
func (s *WorldState) InBucket(id string, x, y int) bool {
	bucket, ok := s.grid[Position{x, y}]
	if !ok {
		return false
	}
	_, in := bucket[id]
	return in
}

func (s *WorldState) addToGrid(id string, pos Position) {
	bucket, ok := s.grid[pos]
	if !ok {
		bucket = make(map[string]struct{})
		s.grid[pos] = bucket
	}
	bucket[id] = struct{}{}
}

func (s *WorldState) removeFromGrid(id string, pos Position) {
	bucket, ok := s.grid[pos]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(s.grid, pos)
	}
}
