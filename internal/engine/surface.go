package engine

import "image/color"

// Surface is the capability set the engine draws through: whole-surface
// fills and axis-aligned rects with alpha compositing. Coordinates are CSS
// pixels; any device-pixel-ratio scaling is the surface's own concern and
// is applied once as a draw transform, never per particle.
type Surface interface {
	Fill(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
}

// NullSurface discards all draw calls. It backs headless benchmark runs and
// tests that only care about engine state.
type NullSurface struct {
	Fills int
	Rects int
}

// Fill counts the call and discards it.
func (s *NullSurface) Fill(color.RGBA) { s.Fills++ }

// FillRect counts the call and discards it.
func (s *NullSurface) FillRect(float64, float64, float64, float64, color.RGBA) { s.Rects++ }
