package wildfire

import "strconv"

// SpreadParams holds the ignition-probability coefficients. A fuel cell
// downwind of a burning neighbor ignites with probability
// AlignedBase + AlignedSlope*slope + AlignedWind*speed; every other
// neighbor direction uses Base + Slope*slope + Wind*speed. Probabilities
// are clamped to 1 before the draw.
type SpreadParams struct {
	AlignedBase  float64
	AlignedSlope float64
	AlignedWind  float64
	Base         float64
	Slope        float64
	Wind         float64
}

// Params holds tunable thresholds and probabilities for the wildfire sim.
type Params struct {
	Spread SpreadParams

	// SearchRadius bounds the nearest-fuel fallback used when an ignition
	// point lands on a cell without fuel.
	SearchRadius int

	FuelPatchCount     int
	FuelPatchRadiusMin int
	FuelPatchRadiusMax int
	FuelPatchDensity   float64

	WindDirectionDeg float64
	WindSpeedKmh     float64
}

// Config controls the wildfire simulation dimensions and tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			Spread: SpreadParams{
				AlignedBase:  0.6,
				AlignedSlope: 0.2,
				AlignedWind:  0.02,
				Base:         0.3,
				Slope:        0.1,
				Wind:         0.01,
			},
			SearchRadius:       3,
			FuelPatchCount:     40,
			FuelPatchRadiusMin: 3,
			FuelPatchRadiusMax: 9,
			FuelPatchDensity:   0.7,
			WindDirectionDeg:   90,
			WindSpeedKmh:       5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["search_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SearchRadius = parsed
		}
	}
	if v, ok := cfg["fuel_patch_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FuelPatchCount = parsed
		}
	}
	if v, ok := cfg["fuel_patch_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FuelPatchRadiusMin = parsed
		}
	}
	if v, ok := cfg["fuel_patch_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FuelPatchRadiusMax = parsed
		}
	}
	if c.Params.FuelPatchRadiusMax < c.Params.FuelPatchRadiusMin {
		c.Params.FuelPatchRadiusMax = c.Params.FuelPatchRadiusMin
	}
	if v, ok := cfg["fuel_patch_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.FuelPatchDensity = parsed
		}
	}
	if v, ok := cfg["wind_direction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.WindDirectionDeg = parsed
		}
	}
	if v, ok := cfg["wind_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WindSpeedKmh = parsed
		}
	}
	return c
}
