//go:build ebiten

// Package ui draws the stats overlay on top of the animation.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
)

const (
	padX       = 10
	padY       = 8
	lineHeight = 14
)

// HUD mirrors the values the engine echoes through its stats callback and
// renders them as an overlay panel. It never reads engine state directly.
type HUD struct {
	fps    float64
	points int
	speed  float64
	zoom   float64

	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &HUD{visible: true, pixel: pixel}
}

// Observe merges a partial stats report into the mirror.
func (h *HUD) Observe(s core.Stats) {
	if s.FPS > 0 {
		h.fps = s.FPS
	}
	if s.Points > 0 {
		h.points = s.Points
	}
	if s.Speed > 0 {
		h.speed = s.Speed
	}
	if s.Zoom > 0 {
		h.zoom = s.Zoom
	}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the panel in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, field string, paused bool) {
	if !h.visible {
		return
	}

	state := "running"
	if paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  [%s]", field, state),
		fmt.Sprintf("fps    %5.1f", h.fps),
		fmt.Sprintf("points %d", h.points),
		fmt.Sprintf("speed  %.2f", h.speed),
		fmt.Sprintf("zoom   %.2f", h.zoom),
		"",
		"space pause  r reset  a auto-zoom",
		"1-5 field  arrows speed/zoom  +/- density",
	}

	w := 0
	for _, l := range lines {
		if n := len(l) * 7; n > w {
			w = n
		}
	}
	panelW := w + 2*padX
	panelH := len(lines)*lineHeight + 2*padY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 150})
	screen.DrawImage(h.pixel, op)

	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, padX, padY+(i+1)*lineHeight-3, color.White)
	}
}
