package wildfire

// NearestFuel searches an expanding square neighborhood around (cx, cy) for
// a cell holding fuel and returns its coordinates. Radii are tried smallest
// first; within a radius the scan is row-major, so ties resolve to the most
// negative row offset, then the most negative column offset. Each larger
// radius rescans the interior of the previous square, which keeps the
// historical scan order: the result is deterministic but only
// radius-ordered, not strictly nearest. ok is false when no fuel exists
// within maxRadius.
func (w *World) NearestFuel(cx, cy, maxRadius int) (x, y int, ok bool) {
	for r := 1; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			ny := cy + dy
			if ny < 0 || ny >= w.h {
				continue
			}
			for dx := -r; dx <= r; dx++ {
				nx := cx + dx
				if nx < 0 || nx >= w.w {
					continue
				}
				if w.cellsCurr[ny*w.w+nx] == CellFuel {
					return nx, ny, true
				}
			}
		}
	}
	return 0, 0, false
}
