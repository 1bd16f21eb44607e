//go:build !ebiten

package ui

import "fuego-ca/internal/core"

// Overlay is a placeholder for the headless build.
type Overlay struct{}

// NewOverlay returns a no-op overlay when the ebiten build tag is missing.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
