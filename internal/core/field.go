package core

import (
	"image/color"
	"math"
	"strconv"
)

// Frame bundles the per-frame inputs every transform sees: logical time,
// the effective (breathing-adjusted) zoom, and the viewport.
type Frame struct {
	T    float64
	Zoom float64
	Vp   Viewport
}

// Point is the output of a field transform for one particle: a screen
// position in CSS pixels, a draw size, and a visual weight in [0, 1] that
// drives alpha. Color carries the field's shading with the weight already
// folded into it.
type Point struct {
	X, Y   float64
	Size   float64
	Weight float64
	Color  color.RGBA
}

// Field is the contract every animation variant implements. A field owns
// its particle count and immutable base attributes; only the transform
// evolves them over time.
type Field interface {
	Name() string

	// SpeedScale is the fixed per-field constant that makes speed = 1.0 a
	// consistent visual rate regardless of display refresh.
	SpeedScale() float64

	// ZoomPulse returns the amplitude and frequency of the auto-zoom
	// breathing modulation.
	ZoomPulse() (amp, freq float64)

	// Background is the whole-surface fill applied before drawing.
	// Translucent fills leave motion trails.
	Background() color.RGBA

	// Fit recomputes the particle layout for the given density and
	// viewport. When the clamped target matches the current count the
	// existing layout is preserved and rebuilt is false.
	Fit(density float64, vp Viewport) (count int, rebuilt bool)

	// Count reports the current particle count.
	Count() int

	// At transforms particle i for the given frame. ok is false when the
	// particle should not be drawn.
	At(i int, fr Frame) (Point, bool)

	// Reset clears any accumulated simulation state. Layout is untouched.
	Reset()
}

// Stepper is implemented by stateful fields whose simulation advances in
// discrete steps between draws.
type Stepper interface {
	Step(fr Frame, dt, speed, density float64)
}

// Prepass is implemented by fields whose output range is not known a
// priori and must be normalized before the draw pass.
type Prepass interface {
	Prepare(fr Frame)
}

// Factory constructs a Field using an optional configuration map.
type Factory func(cfg map[string]string) Field

var fields = map[string]Factory{}

// Register adds a field factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	fields[name] = f
}

// Fields exposes the registry of available field factories.
func Fields() map[string]Factory {
	return fields
}

// SeedFrom reads an optional "seed" entry from a flag-style config map.
func SeedFrom(cfg map[string]string, fallback int64) int64 {
	if cfg == nil {
		return fallback
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// ClampCount converts a density and viewport into a particle count inside
// the field's bounds. A zero-area viewport yields the minimum layout.
func ClampCount(density float64, vp Viewport, minPoints, maxPoints int) int {
	density = SanitizeDensity(density)
	target := int(math.Floor(density * vp.Area()))
	if target < minPoints {
		return minPoints
	}
	if target > maxPoints {
		return maxPoints
	}
	return target
}

// DiscScale is the shared screen mapping for disc-based fields: normalized
// [-1, 1] coordinates scale by half the short viewport edge with a fixed
// 0.9 margin, times the effective zoom.
func DiscScale(vp Viewport, zoom float64) float64 {
	return math.Min(vp.W, vp.H) * 0.5 * 0.9 * zoom
}
