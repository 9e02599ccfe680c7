// Package swirl implements the radial swirl field: a rotating, pulsing
// disc of points biased toward its center.
package swirl

import (
	"image/color"
	"math"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

const (
	minPoints = 6000
	maxPoints = 120000

	speedScale = 60

	pulseAmp  = 0.07
	pulseFreq = 0.08
)

type particle struct {
	r     float64 // base radius in [0, 1], sqrt-biased toward center
	theta float64 // base angle
	phase float64 // per-point wobble phase
}

// Swirl owns the disc layout and its transform.
type Swirl struct {
	seed int64
	pts  []particle
}

// New returns a swirl field seeded for deterministic layouts.
func New(seed int64) *Swirl {
	return &Swirl{seed: seed}
}

// Name identifies the field.
func (s *Swirl) Name() string { return "swirl" }

// SpeedScale reports the fixed logical-time rate constant.
func (s *Swirl) SpeedScale() float64 { return speedScale }

// ZoomPulse reports the breathing modulation constants.
func (s *Swirl) ZoomPulse() (float64, float64) { return pulseAmp, pulseFreq }

// Background is a translucent fill so points leave motion trails.
func (s *Swirl) Background() color.RGBA { return color.RGBA{A: 46} }

// Count reports the current particle count.
func (s *Swirl) Count() int { return len(s.pts) }

// Reset is a no-op; the swirl transform holds no accumulated state.
func (s *Swirl) Reset() {}

// Fit rebuilds the layout when the clamped target count changes. An
// unchanged target keeps the existing stochastic layout untouched.
func (s *Swirl) Fit(density float64, vp core.Viewport) (int, bool) {
	target := core.ClampCount(density, vp, minPoints, maxPoints)
	if s.pts != nil && target == len(s.pts) {
		return target, false
	}
	rng := core.NewRNG(s.seed)
	s.pts = make([]particle, target)
	for i := range s.pts {
		s.pts[i] = particle{
			r:     math.Sqrt(rng.Float64()),
			theta: rng.Angle(),
			phase: rng.Angle(),
		}
	}
	return target, true
}

// At maps particle i to screen space: the angle swirls faster near the
// center with a per-point wobble, and the radius breathes.
func (s *Swirl) At(i int, fr core.Frame) (core.Point, bool) {
	p := s.pts[i]
	t := fr.T

	a := p.theta + t/30*(0.6+0.8*(1-p.r)) + 0.22*math.Sin(t/14+p.phase)
	rad := p.r * (1 + 0.06*math.Sin(t/22+p.phase*2))

	scale := core.DiscScale(fr.Vp, fr.Zoom)
	x := fr.Vp.W/2 + math.Cos(a)*rad*scale
	y := fr.Vp.H/2 + math.Sin(a)*rad*scale

	w := 0.25 + 0.75*(1-p.r)
	return core.Point{
		X:      x,
		Y:      y,
		Size:   2,
		Weight: w,
		Color:  core.Shade(80, 220, 210, w),
	}, true
}

func init() {
	core.Register("swirl", func(cfg map[string]string) core.Field {
		return New(core.SeedFrom(cfg, 1))
	})
}
