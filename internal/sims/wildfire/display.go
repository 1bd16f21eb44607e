package wildfire

import "image/color"

var wildfirePalette = []color.RGBA{
	{R: 248, G: 246, B: 240, A: 255}, // empty ground
	{R: 34, G: 139, B: 34, A: 255},   // fuel
	{R: 255, G: 0, B: 0, A: 255},     // burning
	{R: 255, G: 165, B: 0, A: 255},   // burned
}

// Palette exposes the color palette used for rendering the wildfire grid.
// Indices match the Cell values written to the display buffer.
func (w *World) Palette() []color.RGBA {
	return wildfirePalette
}

// BurnedCount reports how many cells have finished burning, which drives
// the burned-area export and the HUD status line.
func (w *World) BurnedCount() int {
	n := 0
	for _, c := range w.cellsCurr {
		if c == CellBurned {
			n++
		}
	}
	return n
}

// BurningCount reports how many cells are currently on fire.
func (w *World) BurningCount() int {
	n := 0
	for _, c := range w.cellsCurr {
		if c == CellBurning {
			n++
		}
	}
	return n
}
