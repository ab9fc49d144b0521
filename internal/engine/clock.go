// Package engine provides the fixed-timestep clock that drives simulation.
// Real frame time is accumulated and spent in constant steps so movement
// is identical at any frame rate.
package engine

import "time"

// Default timing values.
const (
	DefaultStep     = time.Second / 60
	DefaultMaxFrame = 250 * time.Millisecond
)

// Clock accumulates real elapsed time and hands it out in fixed steps.
// The zero value uses DefaultStep and DefaultMaxFrame.
type Clock struct {
	Step     time.Duration // Fixed simulation step
	MaxFrame time.Duration // Largest elapsed time accepted per frame

	acc time.Duration
}

// NewClock creates a clock with the given step and frame cap.
func NewClock(step, maxFrame time.Duration) *Clock {
	return &Clock{Step: step, MaxFrame: maxFrame}
}

func (c *Clock) step() time.Duration {
	if c.Step <= 0 {
		return DefaultStep
	}
	return c.Step
}

func (c *Clock) maxFrame() time.Duration {
	if c.MaxFrame <= 0 {
		return DefaultMaxFrame
	}
	return c.MaxFrame
}

// Advance adds one frame's elapsed time and returns how many fixed steps
// are now due. Elapsed time above MaxFrame is dropped so a stalled frame
// cannot trigger an ever-growing catch-up.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if limit := c.maxFrame(); elapsed > limit {
		elapsed = limit
	}
	c.acc += elapsed

	step := c.step()
	n := int(c.acc / step)
	c.acc -= time.Duration(n) * step
	return n
}

// Run advances the clock and calls update once per due step with the
// step length in seconds. It returns the number of steps run.
func (c *Clock) Run(elapsed time.Duration, update func(dt float64)) int {
	n := c.Advance(elapsed)
	dt := c.step().Seconds()
	for range n {
		update(dt)
	}
	return n
}

// Alpha returns the unspent fraction of a step, in [0, 1).
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step())
}

// Reset discards any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
