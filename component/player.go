package component

import (
	"time"

	"github.com/sondersim/sonder/entity"
	"github.com/sondersim/sonder/parameter"
)

// inputMoves maps discrete input symbols to intention deltas
var inputMoves = map[string][2]int{
	"w": {0, -1}, "a": {-1, 0}, "s": {0, 1}, "d": {1, 0},
	"k": {0, -1}, "h": {-1, 0}, "j": {0, 1}, "l": {1, 0},
	"up": {0, -1}, "left": {-1, 0}, "down": {0, 1}, "right": {1, 0},
}

// PlayerControlComponent turns buffered input symbols into movement
// intentions. Input arrives from the UI goroutine through a bounded
// channel and is drained during phase 1 on the simulation goroutine
type PlayerControlComponent struct {
	Base

	input chan string
}

// NewPlayerControl creates a player control component
func NewPlayerControl() *PlayerControlComponent {
	return &PlayerControlComponent{
		Base:  newBase(),
		input: make(chan string, parameter.InputBufferSize),
	}
}

// Kind returns the component discriminator
func (p *PlayerControlComponent) Kind() entity.Kind {
	return entity.KindPlayerControl
}

// Push enqueues an input symbol without blocking.
// Returns false when the buffer is full or the component is disabled
func (p *PlayerControlComponent) Push(symbol string) bool {
	if !p.Enabled() {
		return false
	}
	select {
	case p.input <- symbol:
		return true
	default:
		return false
	}
}

// Update drains buffered input and records the resulting intention.
// Unknown symbols are ignored; the last movement symbol in the buffer
// wins within a single tick
func (p *PlayerControlComponent) Update(now time.Time) {
	var mv *MovementComponent
	ok := false
	if p.Owner() != nil {
		mv, ok = Movement(p.Owner())
	}
	if !ok || !mv.Enabled() {
		// Drain anyway so stale input does not fire after a
		// movement component is attached later
		for {
			select {
			case <-p.input:
			default:
				return
			}
		}
	}

	for {
		select {
		case symbol := <-p.input:
			if delta, known := inputMoves[symbol]; known {
				mv.Intend(delta[0], delta[1], now)
			}
		default:
			return
		}
	}
}
