//go:build ebiten

// Package render backs the engine's surface contract with an ebiten
// offscreen image.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface draws engine output into an offscreen ebiten image. Coordinates
// arrive in CSS pixels; the device scale factor is applied once per draw op
// as a geometry transform, never inside field math.
type Surface struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
	w, h  float64 // CSS-pixel dimensions
	dpr   float64
}

// NewSurface returns an unsized surface. Ensure must run before drawing.
func NewSurface() *Surface {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Surface{pixel: pixel, dpr: 1}
}

// Ensure resizes the backing image to the given physical dimensions. The
// image persists across frames so translucent fills accumulate trails.
func (s *Surface) Ensure(pw, ph int, dpr float64) {
	if pw <= 0 || ph <= 0 {
		return
	}
	s.dpr = dpr
	s.w = float64(pw) / dpr
	s.h = float64(ph) / dpr
	if s.dst != nil {
		b := s.dst.Bounds()
		if b.Dx() == pw && b.Dy() == ph {
			return
		}
		s.dst.Dispose()
	}
	s.dst = ebiten.NewImage(pw, ph)
	s.dst.Fill(color.Black)
}

// Image exposes the backing image for the final blit to screen.
func (s *Surface) Image() *ebiten.Image { return s.dst }

// Fill composites a whole-surface color. Opaque colors clear the surface;
// translucent ones fade the previous frame toward them.
func (s *Surface) Fill(c color.RGBA) {
	if s.dst == nil {
		return
	}
	if c.A == 255 {
		s.dst.Fill(c)
		return
	}
	s.FillRect(0, 0, s.w, s.h, c)
}

// FillRect composites a rect given in CSS pixels.
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if s.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w*s.dpr, h*s.dpr)
	op.GeoM.Translate(x*s.dpr, y*s.dpr)
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.pixel, op)
}
