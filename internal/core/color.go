package core

import "image/color"

// Shade premultiplies an RGB triple by a [0, 1] weight and returns it as an
// alpha-premultiplied RGBA, the form the render surface composites with.
func Shade(r, g, b uint8, weight float64) color.RGBA {
	if weight <= 0 {
		return color.RGBA{}
	}
	if weight > 1 {
		weight = 1
	}
	return color.RGBA{
		R: uint8(float64(r) * weight),
		G: uint8(float64(g) * weight),
		B: uint8(float64(b) * weight),
		A: uint8(255 * weight),
	}
}
