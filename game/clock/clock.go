// Package clock turns host frame timestamps into fixed simulation ticks.
//
// The host calls Advance once per frame with a monotonic timestamp. Elapsed
// time piles up in an accumulator that is drained one tick interval at a
// time, so the number of ticks tracks wall time regardless of frame rate.
// What is left over is returned as the interpolation fraction for the
// renderer.
package clock

import "time"

type Clock struct {
	interval    func() time.Duration
	accumulator time.Duration
	last        time.Duration
	sampled     bool
	stopped     bool
	ticks       uint64
}

// New builds a clock whose tick length is asked for before every drain
// step, so a speed change applies within the same frame.
func New(interval func() time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Reset discards accumulated time and resamples the timestamp. Call it
// whenever time passed that must not be simulated (game start, resume).
func (c *Clock) Reset(now time.Duration) {
	c.accumulator = 0
	c.last = now
	c.sampled = true
	c.stopped = false
}

// Advance accumulates the time since the previous call and fires tick once
// per elapsed interval. tick returns false when the simulation has ended;
// the clock then stops until the next Reset.
func (c *Clock) Advance(now time.Duration, tick func() bool) float64 {
	if c.stopped {
		return 0
	}
	if !c.sampled {
		c.Reset(now)
		return 0
	}

	delta := now - c.last
	if delta < 0 {
		delta = 0
	}
	c.last = now
	c.accumulator += delta

	for {
		iv := c.step()
		if c.accumulator < iv {
			break
		}
		c.accumulator -= iv
		c.ticks++
		if !tick() {
			c.stopped = true
			c.accumulator = 0
			return 0
		}
	}

	return c.Alpha()
}

// Alpha is the fraction of the current interval already elapsed, in [0,1)
func (c *Clock) Alpha() float64 {
	alpha := float64(c.accumulator) / float64(c.step())
	if alpha < 0 {
		return 0
	}
	if alpha >= 1 {
		return 0.999999
	}
	return alpha
}

func (c *Clock) step() time.Duration {
	iv := c.interval()
	if iv <= 0 {
		// a zero interval would drain forever
		iv = time.Millisecond
	}
	return iv
}

func (c *Clock) Stopped() bool {
	return c.stopped
}

// Ticks is the total number of ticks fired since construction
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// SpeedInterval shortens the base interval by rate per effective point,
// never going below min.
func SpeedInterval(base, min, rate time.Duration, effectiveScore int) time.Duration {
	iv := base - time.Duration(effectiveScore)*rate
	if iv < min {
		return min
	}
	return iv
}
