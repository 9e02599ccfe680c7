//go:build !ebiten

package render

import "image/color"

// Surface is a no-op placeholder used when the ebiten build tag is absent.
type Surface struct{}

// NewSurface constructs a stub surface.
func NewSurface() *Surface { return &Surface{} }

// Ensure is a no-op in headless builds.
func (s *Surface) Ensure(int, int, float64) {}

// Fill is a no-op in headless builds.
func (s *Surface) Fill(color.RGBA) {}

// FillRect is a no-op in headless builds.
func (s *Surface) FillRect(float64, float64, float64, float64, color.RGBA) {}
