package core

// Viewport describes the drawable area in CSS-pixel (unscaled) units. DPR
// is recorded for the render surface; field math never multiplies by it.
type Viewport struct {
	W   float64
	H   float64
	DPR float64
}

// Area returns the viewport area in CSS pixels.
func (v Viewport) Area() float64 { return v.W * v.H }

// Valid reports whether the viewport has been measured to a positive size.
func (v Viewport) Valid() bool { return v.W > 0 && v.H > 0 }
