//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fuego-ca/internal/app"
	"fuego-ca/internal/core"
	"fuego-ca/internal/raster"
	"fuego-ca/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	if world, isWildfire := sim.(*wildfire.World); isWildfire {
		size := sim.Size()
		if cfg.SlopePath != "" {
			slope, err := raster.Load(cfg.SlopePath, size.W, size.H)
			if err != nil {
				log.Fatalf("load slope raster: %v", err)
			}
			world.SetSlope(slope)
		}
		if cfg.FuelPath != "" {
			mask, err := raster.FuelMask(cfg.FuelPath, size.W, size.H, cfg.FuelThreshold)
			if err != nil {
				log.Fatalf("load fuel raster: %v", err)
			}
			world.SetFuelMask(mask)
		}
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("fuego-ca / " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
