package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64

	SearchRadius  int
	SlopePath     string
	FuelPath      string
	FuelThreshold float64
}

// NewConfig returns a Config populated with sensible defaults. The default
// tick rate runs one simulated hour per quarter second.
func NewConfig() *Config {
	return &Config{Sim: "wildfire", Width: 256, Height: 256, Scale: 3, TPS: 4, Seed: 42, SearchRadius: 3, FuelThreshold: 0.65}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulated hours per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.SearchRadius, "radius", c.SearchRadius, "nearest-fuel search radius for ignition clicks")
	fs.StringVar(&c.SlopePath, "slope", c.SlopePath, "slope raster (TIFF or PNG), normalized to [0,1]")
	fs.StringVar(&c.FuelPath, "fuel", c.FuelPath, "vegetation-index raster used as the fuel mask")
	fs.Float64Var(&c.FuelThreshold, "fuel-threshold", c.FuelThreshold, "vegetation-index threshold for combustible cells")
}

// SimConfig renders the settings a simulation factory consumes as the
// flag-style string map the registry expects.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":             strconv.Itoa(c.Width),
		"h":             strconv.Itoa(c.Height),
		"seed":          strconv.FormatInt(c.Seed, 10),
		"search_radius": strconv.Itoa(c.SearchRadius),
	}
}
