package component

import (
	"math/rand"
	"time"

	"github.com/sondersim/sonder/entity"
)

// AIComponent is a timer-gated random-walk decision maker.
// It idles until nextAction, then picks a uniform delta in
// {-1,0,1}x{-1,0,1} and writes it as a movement intention. A (0,0)
// pick is legal and simply produces no intention.
//
// The rand source is injected so runs are reproducible; no ambient
// clock or global rand is consulted
type AIComponent struct {
	Base

	ActionInterval time.Duration

	nextAction time.Time
	rng        *rand.Rand
}

// NewAI creates an AI component acting every interval
func NewAI(interval time.Duration, rng *rand.Rand) *AIComponent {
	return &AIComponent{
		Base:           newBase(),
		ActionInterval: interval,
		rng:            rng,
	}
}

// Kind returns the component discriminator
func (a *AIComponent) Kind() entity.Kind {
	return entity.KindAI
}

// NextAction returns the time of the next scheduled decision
func (a *AIComponent) NextAction() time.Time {
	return a.nextAction
}

// Update runs one decision step during phase 1. Disabling the
// component suspends the state machine without resetting the timer;
// on re-enable an overdue action fires on the next update
func (a *AIComponent) Update(now time.Time) {
	if a.Owner() == nil || now.Before(a.nextAction) {
		return
	}
	a.nextAction = now.Add(a.ActionInterval)

	mv, ok := Movement(a.Owner())
	if !ok || !mv.Enabled() {
		return
	}

	dx := a.rng.Intn(3) - 1
	dy := a.rng.Intn(3) - 1
	if dx == 0 && dy == 0 {
		return
	}
	mv.Intend(dx, dy, now)
}
