package wildfire

import (
	"math/rand"

	"fuego-ca/internal/core"
)

// Cell enumerates the combustion state of one grid position.
type Cell uint8

const (
	// CellEmpty holds no fuel and never transitions.
	CellEmpty Cell = iota
	// CellFuel is combustible and may start burning.
	CellFuel
	// CellBurning is on fire for exactly one step.
	CellBurning
	// CellBurned is terminal.
	CellBurned
)

// RandomSource supplies the uniform [0,1) draws behind each ignition trial.
// *rand.Rand satisfies it; tests substitute scripted sources.
type RandomSource interface {
	Float64() float64
}

// World stores the grid state for the wildfire spread simulation.
type World struct {
	cfg Config

	w, h int

	cellsCurr []Cell
	cellsNext []Cell
	slope     *core.FloatGrid
	fuelMask  []bool

	windVec   Vector
	windSpeed float64
	hour      int

	display []uint8

	rng RandomSource
}

// New returns a wildfire simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a wildfire world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	w := &World{
		cfg:       cfg,
		w:         cfg.Width,
		h:         cfg.Height,
		cellsCurr: make([]Cell, total),
		cellsNext: make([]Cell, total),
		slope:     core.NewFloatGrid(cfg.Width, cfg.Height),
		display:   make([]uint8, total),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
	w.SetWind(cfg.Params.WindDirectionDeg, cfg.Params.WindSpeedKmh)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the active cell layer.
func (w *World) Grid() []Cell { return w.cellsCurr }

// Slope exposes the slope field the ignition probabilities read from.
func (w *World) Slope() *core.FloatGrid { return w.slope }

// Hour reports how many simulated hours have elapsed since the last reset.
func (w *World) Hour() int { return w.hour }

// Wind reports the discretized wind vector and speed for the current hour.
func (w *World) Wind() (Vector, float64) { return w.windVec, w.windSpeed }

// WindReading reports the raw hourly wind inputs before discretization.
func (w *World) WindReading() (directionDeg, speedKmh float64) {
	return w.cfg.Params.WindDirectionDeg, w.cfg.Params.WindSpeedKmh
}

// SetRandomSource replaces the draw source used by ignition trials.
func (w *World) SetRandomSource(src RandomSource) {
	if src != nil {
		w.rng = src
	}
}

// SetSlope installs a slope field. Values are expected in [0,1] and the
// dimensions must match the grid; mismatched fields are ignored.
func (w *World) SetSlope(field *core.FloatGrid) {
	if field == nil || field.W != w.w || field.H != w.h {
		return
	}
	w.slope = field
}

// SetFuelMask installs a vegetation mask used by Reset to lay out fuel. A
// nil mask restores the default random patch seeding.
func (w *World) SetFuelMask(mask []bool) {
	if mask != nil && len(mask) != w.w*w.h {
		return
	}
	w.fuelMask = mask
}

// SetWind installs the wind reading for the coming hour. The direction is
// discretized once here; the vector stays fixed until the next call.
func (w *World) SetWind(directionDeg, speedKmh float64) {
	if speedKmh < 0 {
		speedKmh = 0
	}
	w.cfg.Params.WindDirectionDeg = directionDeg
	w.cfg.Params.WindSpeedKmh = speedKmh
	w.windVec = DirectionVector(directionDeg)
	w.windSpeed = speedKmh
}

// Reset prepares the initial grid using deterministic randomness. With a
// fuel mask installed the mask decides which cells hold fuel; otherwise
// random fuel patches are sprinkled so the sim runs without raster inputs.
func (w *World) Reset(seed int64) {
	if w.w == 0 || w.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if r, ok := w.rng.(*rand.Rand); ok {
		r.Seed(effective)
	}

	total := w.w * w.h
	for i := 0; i < total; i++ {
		w.cellsCurr[i] = CellEmpty
		w.cellsNext[i] = CellEmpty
	}

	if w.fuelMask != nil {
		for i, fuel := range w.fuelMask {
			if fuel {
				w.cellsCurr[i] = CellFuel
			}
		}
	} else {
		w.sprinkleFuelPatches()
	}

	copy(w.cellsNext, w.cellsCurr)
	w.hour = 0
	w.SetWind(w.cfg.Params.WindDirectionDeg, w.cfg.Params.WindSpeedKmh)
	w.rebuildDisplay()
}

// Ignite sets the cell at (x, y) burning. When the cell holds no fuel the
// nearest fuel cell within the configured search radius is lit instead. It
// reports whether any cell started burning.
func (w *World) Ignite(x, y int) bool {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return false
	}
	if w.cellsCurr[y*w.w+x] != CellFuel {
		nx, ny, ok := w.NearestFuel(x, y, w.cfg.Params.SearchRadius)
		if !ok {
			return false
		}
		x, y = nx, ny
	}
	w.cellsCurr[y*w.w+x] = CellBurning
	w.display[y*w.w+x] = uint8(CellBurning)
	return true
}

// Step advances the simulation by one simulated hour.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}
	Propagate(w.cellsCurr, w.cellsNext, w.w, w.h, w.slope, w.windVec, w.windSpeed, w.cfg.Params.Spread, w.rng)
	w.cellsCurr, w.cellsNext = w.cellsNext, w.cellsCurr
	w.hour++
	w.rebuildDisplay()
}

// Propagate computes one synchronous propagation step from curr into next.
// next begins as a copy of curr, so every outcome derives from the same
// prior snapshot. Burning cells burn out unconditionally. Each in-bounds
// Moore neighbor of a burning cell that currently holds fuel gets an
// independent ignition trial; a fuel cell with several burning neighbors
// ends up burning when any one trial succeeds. Sources are visited
// row-major and their neighbor offsets in fixed dy-then-dx order, so runs
// replay exactly for a given draw sequence.
func Propagate(curr, next []Cell, width, height int, slope *core.FloatGrid, wind Vector, speedKmh float64, p SpreadParams, rng RandomSource) {
	copy(next, curr)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if curr[y*width+x] != CellBurning {
				continue
			}
			next[y*width+x] = CellBurned
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= height {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= width {
						continue
					}
					nIdx := ny*width + nx
					if curr[nIdx] != CellFuel {
						continue
					}
					rise := slope.At(nx, ny)
					prob := p.Base + p.Slope*rise + p.Wind*speedKmh
					if dx == wind.DX && dy == wind.DY {
						prob = p.AlignedBase + p.AlignedSlope*rise + p.AlignedWind*speedKmh
					}
					if prob > 1 {
						prob = 1
					}
					if rng.Float64() < prob {
						next[nIdx] = CellBurning
					}
				}
			}
		}
	}
}

func (w *World) sprinkleFuelPatches() {
	count := w.cfg.Params.FuelPatchCount
	if count <= 0 {
		return
	}
	rng, ok := w.rng.(*rand.Rand)
	if !ok {
		return
	}
	minR := w.cfg.Params.FuelPatchRadiusMin
	maxR := w.cfg.Params.FuelPatchRadiusMax
	if minR < 0 {
		minR = 0
	}
	if maxR < minR {
		maxR = minR
	}
	den := w.cfg.Params.FuelPatchDensity
	if den <= 0 {
		den = 1
	}
	for p := 0; p < count; p++ {
		x := rng.Intn(w.w)
		y := rng.Intn(w.h)
		radius := minR
		if maxR > minR {
			radius += rng.Intn(maxR - minR + 1)
		}
		r2 := radius * radius
		for dy := -radius; dy <= radius; dy++ {
			yp := y + dy
			if yp < 0 || yp >= w.h {
				continue
			}
			for dx := -radius; dx <= radius; dx++ {
				xp := x + dx
				if xp < 0 || xp >= w.w {
					continue
				}
				if dx*dx+dy*dy > r2 {
					continue
				}
				if rng.Float64() > den {
					continue
				}
				w.cellsCurr[yp*w.w+xp] = CellFuel
			}
		}
	}
}

func (w *World) rebuildDisplay() {
	for i, c := range w.cellsCurr {
		w.display[i] = uint8(c)
	}
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
