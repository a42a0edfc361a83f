package engine

import "time"

// Clock is a source of wall time
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock converts clock readings into frame timestamps relative to its creation
type FrameClock struct {
	clock Clock
	start time.Time
}

// NewFrameClock anchors frame timestamps at the clock's current reading
func NewFrameClock(clock Clock) *FrameClock {
	return &FrameClock{clock: clock, start: clock.Now()}
}

// Timestamp returns elapsed time since the frame clock was created
func (f *FrameClock) Timestamp() time.Duration {
	return f.clock.Now().Sub(f.start)
}
