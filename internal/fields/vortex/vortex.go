// Package vortex implements the axial vortex field: a rim-biased disc with
// differential rotation, visible spiral arms, and an inward gravitational
// compression of the radius.
package vortex

import (
	"image/color"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

const (
	minPoints = 6000
	maxPoints = 120000

	speedScale = 60

	pulseAmp  = 0.06
	pulseFreq = 0.09

	arms = 3
)

type particle struct {
	r     float64 // base radius, biased toward the rim
	theta float64
	phase float64
	nx    float64 // noise-plane coordinate for turbulence
	ny    float64
}

// Vortex owns the rim-biased disc layout and its transform.
type Vortex struct {
	seed  int64
	pts   []particle
	noise opensimplex.Noise
}

// New returns a vortex field seeded for deterministic layouts.
func New(seed int64) *Vortex {
	return &Vortex{seed: seed, noise: opensimplex.New(seed)}
}

// Name identifies the field.
func (v *Vortex) Name() string { return "vortex" }

// SpeedScale reports the fixed logical-time rate constant.
func (v *Vortex) SpeedScale() float64 { return speedScale }

// ZoomPulse reports the breathing modulation constants.
func (v *Vortex) ZoomPulse() (float64, float64) { return pulseAmp, pulseFreq }

// Background is a translucent fill so arms leave motion trails.
func (v *Vortex) Background() color.RGBA { return color.RGBA{A: 46} }

// Count reports the current particle count.
func (v *Vortex) Count() int { return len(v.pts) }

// Reset is a no-op; the vortex transform holds no accumulated state.
func (v *Vortex) Reset() {}

// Fit rebuilds the layout when the clamped target count changes. The base
// radius uses r = 1-(1-u)^1.6, concentrating points near the rim so the
// inward compression reads as a pull toward the core.
func (v *Vortex) Fit(density float64, vp core.Viewport) (int, bool) {
	target := core.ClampCount(density, vp, minPoints, maxPoints)
	if v.pts != nil && target == len(v.pts) {
		return target, false
	}
	rng := core.NewRNG(v.seed)
	v.pts = make([]particle, target)
	for i := range v.pts {
		u := rng.Float64()
		v.pts[i] = particle{
			r:     1 - math.Pow(1-u, 1.6),
			theta: rng.Angle(),
			phase: rng.Angle(),
			nx:    rng.Float64() * 4,
			ny:    rng.Float64() * 4,
		}
	}
	return target, true
}

// At maps particle i to screen space. Rotation speed grows with radius, an
// angular modulation carves spiral arms, and the radius is compressed via
// 0.35 + 0.65*(1-e^{-4r}) before the breathing pulse.
func (v *Vortex) At(i int, fr core.Frame) (core.Point, bool) {
	p := v.pts[i]
	t := fr.T

	rot := t / 24 * (0.35 + 1.1*p.r)
	arm := 0.45 * math.Sin(arms*p.theta-t/18)
	turb := 0.2 * v.noise.Eval2(p.nx, p.ny+t/40)
	a := p.theta + rot + arm + turb

	rad := (0.35 + 0.65*(1-math.Exp(-4*p.r))) * (1 + 0.05*math.Sin(t/26+p.phase))

	scale := core.DiscScale(fr.Vp, fr.Zoom)
	x := fr.Vp.W/2 + math.Cos(a)*rad*scale
	y := fr.Vp.H/2 + math.Sin(a)*rad*scale

	// Points riding an arm crest draw brighter.
	crest := 0.5 + 0.5*math.Sin(arms*p.theta-t/18)
	w := 0.2 + 0.8*crest*crest
	return core.Point{
		X:      x,
		Y:      y,
		Size:   2,
		Weight: w,
		Color:  core.Shade(150, 130, 255, w),
	}, true
}

func init() {
	core.Register("vortex", func(cfg map[string]string) core.Field {
		return New(core.SeedFrom(cfg, 2))
	})
}
