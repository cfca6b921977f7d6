package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

func TestClockAdvance(t *testing.T) {
	t.Run("first call only samples", func(t *testing.T) {
		c := New(fixed(100 * time.Millisecond))
		ticks := 0
		alpha := c.Advance(5*time.Second, func() bool { ticks++; return true })
		assert.Equal(t, 0, ticks)
		assert.Equal(t, 0.0, alpha)
	})

	t.Run("fast frames fire no ticks", func(t *testing.T) {
		c := New(fixed(100 * time.Millisecond))
		c.Reset(0)
		ticks := 0
		alpha := c.Advance(16*time.Millisecond, func() bool { ticks++; return true })
		assert.Equal(t, 0, ticks)
		assert.InDelta(t, 0.16, alpha, 1e-9)

		alpha = c.Advance(32*time.Millisecond, func() bool { ticks++; return true })
		assert.Equal(t, 0, ticks)
		assert.InDelta(t, 0.32, alpha, 1e-9)
	})

	t.Run("dropped frames fire several ticks", func(t *testing.T) {
		c := New(fixed(100 * time.Millisecond))
		c.Reset(0)
		ticks := 0
		alpha := c.Advance(350*time.Millisecond, func() bool { ticks++; return true })
		assert.Equal(t, 3, ticks)
		assert.InDelta(t, 0.5, alpha, 1e-9)
		assert.Equal(t, uint64(3), c.Ticks())
	})

	t.Run("tick count tracks wall time", func(t *testing.T) {
		c := New(fixed(100 * time.Millisecond))
		c.Reset(0)
		ticks := 0
		for now := time.Duration(0); now <= 10*time.Second; now += 7 * time.Millisecond {
			c.Advance(now, func() bool { ticks++; return true })
		}
		// last frame lands on 9.996s
		assert.Equal(t, 99, ticks)
	})

	t.Run("alpha stays below one", func(t *testing.T) {
		c := New(fixed(100 * time.Millisecond))
		c.Reset(0)
		for now := time.Duration(0); now < time.Second; now += 13 * time.Millisecond {
			alpha := c.Advance(now, func() bool { return true })
			assert.GreaterOrEqual(t, alpha, 0.0)
			assert.Less(t, alpha, 1.0)
		}
	})

	t.Run("negative delta is ignored", func(t *testing.T) {
		c := New(fixed(100 * time.Millisecond))
		c.Reset(time.Second)
		ticks := 0
		c.Advance(500*time.Millisecond, func() bool { ticks++; return true })
		assert.Equal(t, 0, ticks)
	})
}

func TestClockIntervalRecomputedPerStep(t *testing.T) {
	iv := 100 * time.Millisecond
	c := New(func() time.Duration { return iv })
	c.Reset(0)

	ticks := 0
	c.Advance(300*time.Millisecond, func() bool {
		ticks++
		// speeding up mid-drain takes effect for the next step
		iv = 50 * time.Millisecond
		return true
	})

	// 100ms, then 50ms steps through the remaining 200ms
	assert.Equal(t, 5, ticks)
}

func TestClockStopsOnTermination(t *testing.T) {
	c := New(fixed(10 * time.Millisecond))
	c.Reset(0)

	ticks := 0
	alpha := c.Advance(time.Second, func() bool {
		ticks++
		return ticks < 3
	})

	assert.Equal(t, 3, ticks)
	assert.Equal(t, 0.0, alpha)
	require.True(t, c.Stopped())

	c.Advance(2*time.Second, func() bool { ticks++; return true })
	assert.Equal(t, 3, ticks, "stopped clock does not drain")

	c.Reset(2 * time.Second)
	assert.False(t, c.Stopped())
	c.Advance(2*time.Second+25*time.Millisecond, func() bool { ticks++; return true })
	assert.Equal(t, 5, ticks)
}

func TestClockResetDropsStaleTime(t *testing.T) {
	c := New(fixed(100 * time.Millisecond))
	c.Reset(0)
	c.Advance(50*time.Millisecond, func() bool { return true })

	// a long gap the host wants skipped, e.g. while paused
	c.Reset(time.Hour)

	ticks := 0
	alpha := c.Advance(time.Hour, func() bool { ticks++; return true })
	assert.Equal(t, 0, ticks)
	assert.Equal(t, 0.0, alpha)

	c.Advance(time.Hour+100*time.Millisecond, func() bool { ticks++; return true })
	assert.Equal(t, 1, ticks)
}

func TestSpeedInterval(t *testing.T) {
	base := 150 * time.Millisecond
	min := 55 * time.Millisecond

	assert.Equal(t, base, SpeedInterval(base, min, time.Millisecond, 0))
	assert.Equal(t, 100*time.Millisecond, SpeedInterval(base, min, time.Millisecond, 50))
	assert.Equal(t, min, SpeedInterval(base, min, time.Millisecond, 5000))
}
