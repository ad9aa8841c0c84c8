// Package clock supplies the time source a match reads once per tick.
package clock

import "time"

// Clock reports monotonic time elapsed since an arbitrary origin
type Clock interface {
	Now() time.Duration
}

// System is a Clock backed by the process monotonic clock
type System struct {
	start time.Time
}

// NewSystem creates a System clock whose origin is now
func NewSystem() *System {
	return &System{start: time.Now()}
}

func (c *System) Now() time.Duration {
	return time.Since(c.start)
}

// Manual is a Clock that only moves when told to. Tests and replays use it
// to drive a match with synthetic time.
type Manual struct {
	now time.Duration
}

// NewManual creates a Manual clock at zero
func NewManual() *Manual {
	return &Manual{}
}

func (c *Manual) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d; negative values are ignored
func (c *Manual) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Ticker is a Clock that advances a fixed step every time it is read, for
// fixed-rate loops that want tick-exact simulated time.
type Ticker struct {
	step time.Duration
	now  time.Duration
}

// NewTicker creates a Ticker advancing by step per read
func NewTicker(step time.Duration) *Ticker {
	return &Ticker{step: step}
}

func (c *Ticker) Now() time.Duration {
	c.now += c.step
	return c.now
}
