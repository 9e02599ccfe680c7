//go:build !ebiten

package ui

import "github.com/mrhappynice/mhn-garbage-pages/internal/core"

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Observe is a no-op in headless builds.
func (h *HUD) Observe(core.Stats) {}

// Toggle is a no-op in headless builds.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, string, bool) {}
