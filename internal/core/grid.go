package core

// FloatGrid stores a 2D field of float64 samples in row-major order. It
// carries per-cell terrain inputs such as the normalized slope field.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a field with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write samples directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At reads the sample at (x, y). The coordinates must be in bounds.
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set writes the sample at (x, y). The coordinates must be in bounds.
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// In reports whether (x, y) lies inside the field.
func (g *FloatGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clear fills the field with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
