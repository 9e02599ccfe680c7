package core

import "math"

// Zoom clamp range applied to host-supplied values.
const (
	ZoomMin = 0.5
	ZoomMax = 4.0
)

// Default parameter values used when the host omits or supplies a
// non-finite value.
const (
	DefaultSpeed   = 1.0
	DefaultDensity = 0.02
	DefaultZoom    = 1.0
)

// Params holds the tunable values a host exposes for an animation. The
// engine reads them every frame; it never writes them back.
type Params struct {
	Speed    float64
	Density  float64
	Zoom     float64
	ZoomAuto bool
	Running  bool
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		Speed:   DefaultSpeed,
		Density: DefaultDensity,
		Zoom:    DefaultZoom,
		Running: true,
	}
}

// Patch carries a partial parameter update. Nil fields are left untouched.
type Patch struct {
	Speed    *float64
	Density  *float64
	Zoom     *float64
	ZoomAuto *bool
}

// Sanitize clamps the parameter set into its documented ranges. Non-finite
// values fall back to defaults rather than propagating as NaN.
func (p *Params) Sanitize() {
	p.Speed = SanitizeSpeed(p.Speed)
	p.Density = SanitizeDensity(p.Density)
	p.Zoom = SanitizeZoom(p.Zoom)
}

// SanitizeSpeed returns a strictly positive, finite speed multiplier.
func SanitizeSpeed(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return DefaultSpeed
	}
	return v
}

// SanitizeDensity returns a finite, non-negative density.
func SanitizeDensity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultDensity
	}
	if v < 0 {
		return 0
	}
	return v
}

// SanitizeZoom clamps zoom into [ZoomMin, ZoomMax].
func SanitizeZoom(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultZoom
	}
	if v < ZoomMin {
		return ZoomMin
	}
	if v > ZoomMax {
		return ZoomMax
	}
	return v
}
