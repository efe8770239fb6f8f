package engine

import "time"

// Clock is the time source threaded through the loop and into every
// update call. Simulated time is always passed explicitly; nothing in
// the core reads an ambient clock
type Clock interface {
	Now() time.Time
}

// TimeProvider is the real system clock with monotonic readings
type TimeProvider struct{}

// NewTimeProvider creates a monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
