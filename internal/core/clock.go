package core

import (
	"math"
	"time"
)

// minDelta guards against zero or negative wall-clock deltas, e.g. after a
// tab-visibility style timestamp jump.
const minDelta = 1e-6

// fpsWeight is the fixed EMA weight for the frame-rate estimate. It only
// feeds the stats display, so it is deliberately not configurable.
const fpsWeight = 0.1

// Clock advances the animation's logical time in a frame-rate-independent
// way and derives the smoothed frame rate and auto-zoom breathing phase.
type Clock struct {
	T         float64
	ZoomPhase float64
	FPS       float64

	last time.Time
}

// Advance consumes one wall-clock timestamp and moves logical time forward
// by dt * speed * speedScale. It returns the clamped dt in seconds.
func (c *Clock) Advance(now time.Time, speed, speedScale float64) float64 {
	if c.last.IsZero() {
		c.last = now
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < minDelta {
		dt = minDelta
	}
	c.FPS = c.FPS*(1-fpsWeight) + (1/dt)*fpsWeight
	c.T += dt * speed * speedScale
	return dt
}

// Resume drops the previous timestamp reference so the first frame after a
// pause sees a near-zero delta instead of the whole pause gap.
func (c *Clock) Resume() {
	c.last = time.Time{}
}

// Zero resets logical time and the breathing phase. The FPS estimate is
// kept; a cold restart simply re-converges.
func (c *Clock) Zero() {
	c.T = 0
	c.ZoomPhase = 0
}

// EffectiveZoom derives the display-time zoom. When auto-zoom is off it is
// the stored zoom unchanged; the breathing modulation is never written back.
func (c *Clock) EffectiveZoom(zoom float64, auto bool, amp, freq float64) float64 {
	if !auto {
		return zoom
	}
	return zoom * (1 + amp*math.Sin(2*math.Pi*freq*c.ZoomPhase))
}
