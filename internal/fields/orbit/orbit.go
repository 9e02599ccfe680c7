// Package orbit implements the parametric orbit field: a closed-form
// Lissajous-like curve over synthetic per-particle indices, refit to the
// viewport every frame because its output range is not known a priori.
package orbit

import (
	"image/color"
	"math"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

const (
	minPoints = 2000
	maxPoints = 60000

	speedScale = 60

	pulseAmp  = 0.09
	pulseFreq = 0.07

	// Fraction of the viewport the fitted curve may occupy.
	margin = 0.92

	// Spacing of the second synthetic index stream.
	bStep = 0.37
)

type particle struct {
	a float64 // synthetic curve indices, not spatial coordinates
	b float64
}

// Orbit owns the index layout, the raw-coordinate scratch buffers, and the
// per-frame fit derived from them.
type Orbit struct {
	seed int64
	pts  []particle

	rawX []float64
	rawY []float64

	scale      float64
	offX, offY float64
}

// New returns an orbit field seeded for deterministic layouts.
func New(seed int64) *Orbit {
	return &Orbit{seed: seed, scale: 1}
}

// Name identifies the field.
func (o *Orbit) Name() string { return "orbit" }

// SpeedScale reports the fixed logical-time rate constant.
func (o *Orbit) SpeedScale() float64 { return speedScale }

// ZoomPulse reports the breathing modulation constants.
func (o *Orbit) ZoomPulse() (float64, float64) { return pulseAmp, pulseFreq }

// Background is a translucent fill so the curve leaves motion trails.
func (o *Orbit) Background() color.RGBA { return color.RGBA{A: 46} }

// Count reports the current particle count.
func (o *Orbit) Count() int { return len(o.pts) }

// Reset is a no-op; the curve holds no accumulated state.
func (o *Orbit) Reset() {}

// Fit rebuilds the index layout when the clamped target count changes. The
// indices carry a small seeded jitter so the curve reads as a band rather
// than a hairline.
func (o *Orbit) Fit(density float64, vp core.Viewport) (int, bool) {
	target := core.ClampCount(density, vp, minPoints, maxPoints)
	if o.pts != nil && target == len(o.pts) {
		return target, false
	}
	rng := core.NewRNG(o.seed)
	o.pts = make([]particle, target)
	for i := range o.pts {
		o.pts[i] = particle{
			a: float64(i) + rng.Float64()*0.5,
			b: float64(i)*bStep + rng.Float64()*0.5,
		}
	}
	o.rawX = make([]float64, target)
	o.rawY = make([]float64, target)
	return target, true
}

// Prepare runs the first of the two per-frame passes: evaluate the curve
// for every particle, compute its bounding box, and derive the scale and
// offset that fit the whole curve into the margin-adjusted viewport. The
// divisors below are empirical constants; they have no derivation.
func (o *Orbit) Prepare(fr core.Frame) {
	t := fr.T
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range o.pts {
		x := math.Cos(p.a/14+t/30) + 0.6*math.Sin(p.b/59-t/30)
		y := math.Sin(p.a/14-t/59) + 0.6*math.Cos(p.b/30+t/14)
		o.rawX[i] = x
		o.rawY[i] = y
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 || spanY <= 0 || len(o.pts) == 0 {
		o.scale = 1
		o.offX = fr.Vp.W / 2
		o.offY = fr.Vp.H / 2
		return
	}
	o.scale = margin * math.Min(fr.Vp.W/spanX, fr.Vp.H/spanY)
	o.offX = fr.Vp.W/2 - (minX+maxX)/2*o.scale
	o.offY = fr.Vp.H/2 - (minY+maxY)/2*o.scale
}

// At returns the fitted position computed during Prepare. Zoom scales the
// draw size only; the dynamic fit keeps the curve framed regardless.
func (o *Orbit) At(i int, fr core.Frame) (core.Point, bool) {
	p := o.pts[i]
	w := 0.3 + 0.7*(0.5+0.5*math.Sin(p.a/30+fr.T/14))
	size := 2 * math.Max(fr.Zoom*0.75, 0.5)
	return core.Point{
		X:      o.rawX[i]*o.scale + o.offX,
		Y:      o.rawY[i]*o.scale + o.offY,
		Size:   size,
		Weight: w,
		Color:  core.Shade(150, 255, 130, w),
	}, true
}

func init() {
	core.Register("orbit", func(cfg map[string]string) core.Field {
		return New(core.SeedFrom(cfg, 5))
	})
}
