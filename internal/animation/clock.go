package animation

import "time"

// Clock reports the time elapsed between ticks in milliseconds.
type Clock interface {
	Delta() float64
}

// WallClock measures real time between calls. The first call returns 0.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

// NewWallClock returns a clock backed by time.Now.
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// Delta returns the milliseconds since the previous call.
func (c *WallClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return float64(dt) / float64(time.Millisecond)
}

// FixedClock returns the same delta on every tick.
type FixedClock float64

// Delta returns the fixed step.
func (c FixedClock) Delta() float64 { return float64(c) }
