//go:build !ebiten

package ui

import "fuego-ca/internal/core"

// HUD is a placeholder for the headless build.
type HUD struct{}

// NewHUD returns a no-op HUD when the ebiten build tag is missing.
func NewHUD(core.Sim, int) *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update(int) {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, int, int) {}
