//go:build !ebiten

package app

import (
	"fmt"

	"fuego-ca/internal/core"
)

// Game is a placeholder so headless builds of the module still compile.
// The interactive viewer lives behind the ebiten build tag.
type Game struct{}

// New panics: constructing the interactive game requires the ebiten tag.
func New(core.Sim, int, int64) *Game {
	panic("the interactive viewer requires building with -tags ebiten")
}

// Reset is a no-op in the headless build.
func (g *Game) Reset(int64) {}

// Update reports that the interactive viewer is unavailable.
func (g *Game) Update() error {
	return fmt.Errorf("the interactive viewer requires building with -tags ebiten")
}

// Draw is a no-op in the headless build.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
