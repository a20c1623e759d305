package core

import "time"

// Clock is a monotonic time source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// FrameClock is a simulation clock that only moves when a frame is
// advanced. Each frame lasts exactly 1/TickRate seconds, which keeps
// replays with the same seed and inputs bit-for-bit identical.
type FrameClock struct {
	step   time.Duration
	frames int64
}

// NewFrameClock creates a clock advancing tickRate frames per second.
// Non-positive rates fall back to 60.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{step: time.Second / time.Duration(tickRate)}
}

// Advance moves the clock forward by one frame and returns the new time.
func (c *FrameClock) Advance() time.Duration {
	c.frames++
	return c.Now()
}

// Now returns the elapsed simulation time.
func (c *FrameClock) Now() time.Duration {
	return time.Duration(c.frames) * c.step
}

// Frames returns the number of frames advanced so far.
func (c *FrameClock) Frames() int64 {
	return c.frames
}

// WallClock reads the real monotonic clock relative to its creation.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock whose origin is the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the real time elapsed since the clock was created.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// Interval is a periodic tick event that is polled once per frame rather
// than delivered from a separate goroutine.
type Interval struct {
	period time.Duration
	next   time.Duration
}

// NewInterval creates an interval that first fires one period after start.
func NewInterval(period time.Duration, start time.Duration) *Interval {
	iv := &Interval{period: period}
	iv.Restart(start)
	return iv
}

// Period returns the configured interval length.
func (iv *Interval) Period() time.Duration {
	return iv.period
}

// Restart re-arms the interval so the next firing is one period after now.
func (iv *Interval) Restart(now time.Duration) {
	iv.next = now + iv.period
}

// Shift postpones the pending firing by d. Used to freeze the interval
// while the simulation is paused.
func (iv *Interval) Shift(d time.Duration) {
	iv.next += d
}

// Poll returns how many times the interval elapsed up to now and re-arms
// it. A frame that took longer than several periods reports each missed
// firing, the way a queued timer event would.
func (iv *Interval) Poll(now time.Duration) int {
	if iv.period <= 0 {
		return 0
	}
	fired := 0
	for now >= iv.next {
		fired++
		iv.next += iv.period
	}
	return fired
}
