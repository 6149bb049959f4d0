package clock

import "time"

// Clock abstracts time lookup so request timing and persistence timestamps
// are testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// NewRealClock creates the production clock.
func NewRealClock() Clock {
	return RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a test clock pinned to a settable instant.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock pinned to start.
func NewFixedClock(start time.Time) *FixedClock {
	return &FixedClock{current: start}
}

// Now returns the pinned instant.
func (f *FixedClock) Now() time.Time {
	return f.current
}

// Advance moves the pinned instant forward by d.
func (f *FixedClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
