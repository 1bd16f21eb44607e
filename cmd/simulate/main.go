package main

import (
	"flag"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"fuego-ca/internal/export"
	"fuego-ca/internal/raster"
	"fuego-ca/internal/sims/wildfire"
	"fuego-ca/internal/weather"
)

func main() {
	lat := flag.Float64("lat", -30.86, "ignition latitude")
	lon := flag.Float64("lon", -64.53, "ignition longitude")
	hours := flag.Int("hours", 48, "simulated hours to run")
	size := flag.Int("size", 600, "grid cells per side")
	seed := flag.Int64("seed", 42, "simulation seed")
	slopePath := flag.String("slope", "", "slope raster (TIFF or PNG)")
	fuelPath := flag.String("fuel", "", "vegetation-index raster used as the fuel mask")
	threshold := flag.Float64("fuel-threshold", 0.65, "vegetation-index threshold for combustible cells")
	outDir := flag.String("out", "outputs", "output directory")
	scale := flag.Int("gif-scale", 1, "pixel scale of the exported GIF")
	west := flag.Float64("west", -64.63, "western edge of the raster extent")
	south := flag.Float64("south", -30.96, "southern edge of the raster extent")
	east := flag.Float64("east", -64.43, "eastern edge of the raster extent")
	north := flag.Float64("north", -30.76, "northern edge of the raster extent")
	flag.Parse()

	cfg := wildfire.DefaultConfig()
	cfg.Width = *size
	cfg.Height = *size
	cfg.Seed = *seed
	world := wildfire.NewWithConfig(cfg)

	if *slopePath != "" {
		slope, err := raster.Load(*slopePath, *size, *size)
		if err != nil {
			log.WithError(err).Fatal("load slope raster")
		}
		world.SetSlope(slope)
	}
	if *fuelPath != "" {
		mask, err := raster.FuelMask(*fuelPath, *size, *size, *threshold)
		if err != nil {
			log.WithError(err).Fatal("load fuel raster")
		}
		world.SetFuelMask(mask)
	}
	world.Reset(*seed)

	forecast, err := weather.NewClient().Forecast(*lat, *lon)
	if err != nil {
		log.WithError(err).Warn("weather service unavailable, using the default forecast")
		forecast = weather.DefaultForecast()
	}

	bounds := export.Bounds{Left: *west, Bottom: *south, Right: *east, Top: *north}
	cx, cy := bounds.GridIndex(*lat, *lon, *size, *size)
	if !world.Ignite(cx, cy) {
		log.WithFields(log.Fields{"x": cx, "y": cy}).Warn("no fuel near the ignition point")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.WithError(err).Fatal("create output directory")
	}
	if err := export.WriteIgnitionPoint(filepath.Join(*outDir, "ignition_point.geojson"), *lat, *lon); err != nil {
		log.WithError(err).Error("export ignition point")
	}

	anim := export.NewAnimation(*size, *size, *scale, world.Palette())
	anim.AddFrame(world.Cells())

	for hour := 0; hour < *hours; hour++ {
		reading := forecast[hour%len(forecast)]
		world.SetWind(reading.DirectionDeg, reading.SpeedKmh)
		world.Step()
		anim.AddFrame(world.Cells())
		log.WithFields(log.Fields{
			"hour":     hour + 1,
			"wind_kmh": reading.SpeedKmh,
			"wind_deg": reading.DirectionDeg,
			"burning":  world.BurningCount(),
			"burned":   world.BurnedCount(),
		}).Info("advanced one hour")
	}

	if err := anim.WriteFile(filepath.Join(*outDir, "simulation.gif")); err != nil {
		log.WithError(err).Fatal("export animation")
	}
	if err := export.WriteBurnedArea(filepath.Join(*outDir, "burned_area.geojson"), world.Grid(), *size, *size, bounds); err != nil {
		log.WithError(err).Fatal("export burned area")
	}
}
