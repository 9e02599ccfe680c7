// Package tube implements the sideways vortex tube: a horizontal funnel
// whose axis bends in an S-curve and whose swirl tightens toward the tip.
package tube

import (
	"image/color"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

const (
	minPoints = 4000
	maxPoints = 90000

	speedScale = 60

	pulseAmp  = 0.08
	pulseFreq = 0.07
)

type particle struct {
	s     float64 // axial position in [0, 1]; 0 is the wide mouth
	phi   float64 // base swirl angle
	phase float64
}

// Tube owns the axial layout and its transform.
type Tube struct {
	seed  int64
	pts   []particle
	noise opensimplex.Noise
}

// New returns a tube field seeded for deterministic layouts.
func New(seed int64) *Tube {
	return &Tube{seed: seed, noise: opensimplex.New(seed)}
}

// Name identifies the field.
func (tb *Tube) Name() string { return "tube" }

// SpeedScale reports the fixed logical-time rate constant.
func (tb *Tube) SpeedScale() float64 { return speedScale }

// ZoomPulse reports the breathing modulation constants.
func (tb *Tube) ZoomPulse() (float64, float64) { return pulseAmp, pulseFreq }

// Background is a translucent fill so the funnel leaves motion trails.
func (tb *Tube) Background() color.RGBA { return color.RGBA{A: 46} }

// Count reports the current particle count.
func (tb *Tube) Count() int { return len(tb.pts) }

// Reset is a no-op; the tube transform holds no accumulated state.
func (tb *Tube) Reset() {}

// Fit rebuilds the layout when the clamped target count changes.
func (tb *Tube) Fit(density float64, vp core.Viewport) (int, bool) {
	target := core.ClampCount(density, vp, minPoints, maxPoints)
	if tb.pts != nil && target == len(tb.pts) {
		return target, false
	}
	rng := core.NewRNG(tb.seed)
	tb.pts = make([]particle, target)
	for i := range tb.pts {
		tb.pts[i] = particle{
			s:     rng.Float64(),
			phi:   rng.Angle(),
			phase: rng.Angle(),
		}
	}
	return target, true
}

// At maps particle i to screen space. The axis bends via a two-term sine
// combination, the funnel radius is 0.45*(1-s)^1.7 + 0.04 modulated by a
// pulse and a turbulence term, and the horizontal swirl offset is
// half-weighted so the profile reads sideways rather than circular.
func (tb *Tube) At(i int, fr core.Frame) (core.Point, bool) {
	p := tb.pts[i]
	t := fr.T

	vs := core.DiscScale(fr.Vp, fr.Zoom)
	cx := fr.Vp.W / 2
	cy := fr.Vp.H / 2

	halfSpan := fr.Vp.W * 0.42 * fr.Zoom
	ax := cx + (p.s-0.5)*2*halfSpan
	bend := 0.18*math.Sin(t/26+p.s*3.1) + 0.09*math.Sin(t/11+p.s*7.3)
	ay := cy + bend*vs

	funnel := 0.45*math.Pow(1-p.s, 1.7) + 0.04
	spin := p.phi + t/16*(0.8+2.2*p.s)
	pulse := 1 + 0.08*math.Sin(t/21+p.phase)
	turb := 1 + 0.25*tb.noise.Eval2(p.s*5, t/45)
	rad := funnel * pulse * turb * vs

	x := ax + math.Cos(spin)*rad*0.5
	y := ay + math.Sin(spin)*rad

	// Brightness tapers from the wide mouth toward the tight tip.
	w := 0.2 + 0.8*(1-p.s)
	return core.Point{
		X:      x,
		Y:      y,
		Size:   2,
		Weight: w,
		Color:  core.Shade(180, 205, 235, w),
	}, true
}

func init() {
	core.Register("tube", func(cfg map[string]string) core.Field {
		return New(core.SeedFrom(cfg, 3))
	})
}
