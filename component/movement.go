package component

import (
	"time"

	"github.com/sondersim/sonder/entity"
)

// MovementComponent holds the pending movement intention and the
// per-entity cooldown. Decision components (AI, player control) write
// the intention during phase 1; the movement system commits it during
// phase 2. The intention fields are the only entity-external state a
// component may write
type MovementComponent struct {
	Base

	Cooldown time.Duration

	lastMove time.Time
	intentDX int
	intentDY int
}

// NewMovement creates a movement component with the given cooldown.
// The zero lastMove lets the first intention through immediately
func NewMovement(cooldown time.Duration) *MovementComponent {
	return &MovementComponent{
		Base:     newBase(),
		Cooldown: cooldown,
	}
}

// Kind returns the component discriminator
func (m *MovementComponent) Kind() entity.Kind {
	return entity.KindMovement
}

// Update is a no-op; movement state changes through Intend and Commit
func (m *MovementComponent) Update(now time.Time) {}

// CanMoveAt reports whether the cooldown has elapsed at the given time
func (m *MovementComponent) CanMoveAt(now time.Time) bool {
	return !now.Before(m.lastMove.Add(m.Cooldown))
}

// Intend records a pending movement delta, gated by the cooldown.
// Returns false when the cooldown has not elapsed; the intention is
// then discarded, not queued
func (m *MovementComponent) Intend(dx, dy int, now time.Time) bool {
	if !m.CanMoveAt(now) {
		return false
	}
	m.intentDX = dx
	m.intentDY = dy
	return true
}

// Intent returns the pending movement delta
func (m *MovementComponent) Intent() (dx, dy int) {
	return m.intentDX, m.intentDY
}

// Commit stamps the move time and zeroes the pending intention.
// Called by the movement system after the position change and
// spatial-index relocation
func (m *MovementComponent) Commit(now time.Time) {
	m.lastMove = now
	m.intentDX = 0
	m.intentDY = 0
}

// ClearIntent discards the pending intention without stamping the
// cooldown
func (m *MovementComponent) ClearIntent() {
	m.intentDX = 0
	m.intentDY = 0
}

// LastMove returns the time of the last committed move
func (m *MovementComponent) LastMove() time.Time {
	return m.lastMove
}
