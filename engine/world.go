package engine

import "fmt"

// World is the bounded arena: fixed dimensions plus the mutable state.
// Dimensions are immutable after construction
type World struct {
	Width  int
	Height int
	State  *WorldState
}

// NewWorld creates a world with the given bounds.
// Non-positive dimensions are a hard configuration error
func NewWorld(width, height int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid world dimensions %dx%d", width, height)
	}
	return &World{
		Width:  width,
		Height: height,
		State:  NewWorldState(),
	}, nil
}

// InBounds reports whether the position lies inside the arena
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// Clamp truncates a position to the arena, hard clamp, no wraparound
func (w *World) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= w.Width {
		x = w.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= w.Height {
		y = w.Height - 1
	}
	return x, y
}

// Tick advances the tick counter, phase 3 of the loop
func (w *World) Tick() {
	w.State.tickCount++
}
