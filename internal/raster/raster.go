// Package raster turns single-band terrain rasters into the grid-shaped
// inputs the simulation consumes: a normalized slope field and a binary
// fuel mask derived from a vegetation index.
package raster

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"

	"fuego-ca/internal/core"
)

// Load reads a raster image (TIFF or PNG), resamples it to w×h with
// bilinear interpolation, and min-max normalizes the samples to [0,1]. A
// constant raster normalizes to all zeros.
func Load(path string, w, h int) (*core.FloatGrid, error) {
	img, err := decode(path)
	if err != nil {
		return nil, err
	}
	grid := FromImage(img, w, h)
	Normalize(grid)
	return grid, nil
}

// FuelMask reads a vegetation-index raster and thresholds the normalized
// samples into a binary fuel mask: true marks combustible cells.
func FuelMask(path string, w, h int, threshold float64) ([]bool, error) {
	grid, err := Load(path, w, h)
	if err != nil {
		return nil, err
	}
	return MaskFromGrid(grid, threshold), nil
}

// FromImage resamples the image's luminance into a w×h field using
// bilinear interpolation. Samples are raw (unnormalized) values in [0,1]
// relative to the image's channel depth.
func FromImage(img image.Image, w, h int) *core.FloatGrid {
	grid := core.NewFloatGrid(w, h)
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return grid
	}
	for y := 0; y < grid.H; y++ {
		sy := (float64(y)+0.5)*float64(srcH)/float64(grid.H) - 0.5
		y0, y1, fy := span(sy, srcH)
		for x := 0; x < grid.W; x++ {
			sx := (float64(x)+0.5)*float64(srcW)/float64(grid.W) - 0.5
			x0, x1, fx := span(sx, srcW)

			v00 := luminance(img, bounds.Min.X+x0, bounds.Min.Y+y0)
			v10 := luminance(img, bounds.Min.X+x1, bounds.Min.Y+y0)
			v01 := luminance(img, bounds.Min.X+x0, bounds.Min.Y+y1)
			v11 := luminance(img, bounds.Min.X+x1, bounds.Min.Y+y1)

			top := v00 + (v10-v00)*fx
			bottom := v01 + (v11-v01)*fx
			grid.Set(x, y, top+(bottom-top)*fy)
		}
	}
	return grid
}

// Normalize rescales the field to [0,1] with a min-max transform. Constant
// fields become all zeros.
func Normalize(grid *core.FloatGrid) {
	vals := grid.Values()
	if len(vals) == 0 {
		return
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	delta := max - min
	if delta <= 0 {
		grid.Clear()
		return
	}
	for i, v := range vals {
		vals[i] = (v - min) / delta
	}
}

// MaskFromGrid thresholds a normalized field into a binary mask.
func MaskFromGrid(grid *core.FloatGrid, threshold float64) []bool {
	vals := grid.Values()
	mask := make([]bool, len(vals))
	for i, v := range vals {
		mask[i] = v > threshold
	}
	return mask
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode raster %s: %w", path, err)
	}
	return img, nil
}

// span clamps a fractional source coordinate to the image extent and
// returns the two sample indices plus the interpolation weight.
func span(s float64, limit int) (lo, hi int, frac float64) {
	if s < 0 {
		s = 0
	}
	maxIdx := float64(limit - 1)
	if s > maxIdx {
		s = maxIdx
	}
	lo = int(s)
	hi = lo + 1
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi, s - float64(lo)
}

func luminance(img image.Image, x, y int) float64 {
	r, g, b, _ := img.At(x, y).RGBA()
	return float64(r+g+b) / (3 * 0xffff)
}
