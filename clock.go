package main

import (
	"time"

	"github.com/milk9111/rotate/common"
	"github.com/milk9111/rotate/prefabs"
)

// maxWallStep caps a measured frame so a stalled window does not teleport
// the professor across the patrol bound.
const maxWallStep = 0.25

// stepClock produces the per-frame delta handed to the animation.
type stepClock struct {
	mode string
	tps  func() int
	now  func() time.Time
	last time.Time
}

func newStepClock(mode string, tps func() int) *stepClock {
	return &stepClock{mode: mode, tps: tps, now: time.Now}
}

// Next returns the seconds elapsed since the previous call. The first call
// in wall mode returns 0.
func (c *stepClock) Next() float64 {
	if c.mode == prefabs.TimestepWall {
		now := c.now()
		if c.last.IsZero() {
			c.last = now
			return 0
		}
		dt := now.Sub(c.last).Seconds()
		c.last = now
		return common.Clamp(dt, 0, maxWallStep)
	}
	tps := c.tps()
	if tps <= 0 {
		return 0
	}
	return 1 / float64(tps)
}
