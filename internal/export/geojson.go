package export

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"fuego-ca/internal/sims/wildfire"
)

// Bounds is the geographic extent of the raster the grid was resampled
// from, in the raster's coordinate reference system (north-up).
type Bounds struct {
	Left   float64
	Bottom float64
	Right  float64
	Top    float64
}

// CellCorner maps grid coordinates to the geographic position of the cell's
// top-left corner, the affine the raster's bounds imply.
func (b Bounds) CellCorner(x, y, w, h int) (lon, lat float64) {
	lon = b.Left + float64(x)*(b.Right-b.Left)/float64(w)
	lat = b.Top - float64(y)*(b.Top-b.Bottom)/float64(h)
	return lon, lat
}

// GridIndex maps a geographic position to the grid cell containing it,
// clamped to the grid extent.
func (b Bounds) GridIndex(lat, lon float64, w, h int) (x, y int) {
	x = int((lon - b.Left) / (b.Right - b.Left) * float64(w))
	y = int((b.Top - lat) / (b.Top - b.Bottom) * float64(h))
	if x < 0 {
		x = 0
	}
	if x > w-1 {
		x = w - 1
	}
	if y < 0 {
		y = 0
	}
	if y > h-1 {
		y = h - 1
	}
	return x, y
}

type geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   geometry       `json:"geometry"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

// WriteBurnedArea exports every burned cell as a square polygon collected
// into a single MultiPolygon feature. When nothing burned no file is
// written.
func WriteBurnedArea(path string, cells []wildfire.Cell, w, h int, b Bounds) error {
	var polygons [][][][2]float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] != wildfire.CellBurned {
				continue
			}
			x0, y0 := b.CellCorner(x, y, w, h)
			x1, y1 := b.CellCorner(x+1, y+1, w, h)
			ring := [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
			polygons = append(polygons, [][][2]float64{ring})
		}
	}
	if len(polygons) == 0 {
		log.Warn("no burned cells to export")
		return nil
	}

	fc := featureCollection{
		Type: "FeatureCollection",
		Features: []feature{{
			Type:       "Feature",
			Properties: map[string]any{"cells": len(polygons)},
			Geometry:   geometry{Type: "MultiPolygon", Coordinates: polygons},
		}},
	}
	if err := writeJSON(path, fc); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": path, "cells": len(polygons)}).Info("wrote burned area")
	return nil
}

// WriteIgnitionPoint exports the fire's geographic starting point.
func WriteIgnitionPoint(path string, lat, lon float64) error {
	fc := featureCollection{
		Type: "FeatureCollection",
		Features: []feature{{
			Type:       "Feature",
			Properties: map[string]any{"event": "ignition"},
			Geometry:   geometry{Type: "Point", Coordinates: [2]float64{lon, lat}},
		}},
	}
	if err := writeJSON(path, fc); err != nil {
		return err
	}
	log.WithField("path", path).Info("wrote ignition point")
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	return nil
}
