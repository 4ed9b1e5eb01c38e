// Package clock abstracts time.Now so time-dependent logic (reminder
// windows, session expiry) can be tested at a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock reports a frozen instant until Advance moves it.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}

func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
