// Package export writes simulation results to disk: an animated GIF of the
// hourly grid states and GeoJSON for the burned area and ignition point.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	log "github.com/sirupsen/logrus"
)

// Animation accumulates per-hour grid frames and encodes them as an
// animated GIF, one frame per simulated hour.
type Animation struct {
	w, h    int
	scale   int
	palette color.Palette
	frames  []*image.Paletted

	// Delay between frames in hundredths of a second.
	Delay int
}

// NewAnimation prepares an animation for a w×h grid drawn at the given
// pixel scale with the simulation's cell palette.
func NewAnimation(w, h, scale int, palette []color.RGBA) *Animation {
	if scale <= 0 {
		scale = 1
	}
	pal := make(color.Palette, 0, len(palette))
	for _, c := range palette {
		pal = append(pal, c)
	}
	if len(pal) == 0 {
		pal = color.Palette{color.Black}
	}
	return &Animation{w: w, h: h, scale: scale, palette: pal, Delay: 100}
}

// AddFrame records the current grid state as one animation frame. Cell
// values index into the palette; out-of-range values clamp to its last
// entry.
func (a *Animation) AddFrame(cells []uint8) {
	if len(cells) != a.w*a.h {
		return
	}
	frame := image.NewPaletted(image.Rect(0, 0, a.w*a.scale, a.h*a.scale), a.palette)
	last := uint8(len(a.palette) - 1)
	for y := 0; y < a.h; y++ {
		for x := 0; x < a.w; x++ {
			idx := cells[y*a.w+x]
			if idx > last {
				idx = last
			}
			for sy := 0; sy < a.scale; sy++ {
				row := (y*a.scale + sy) * frame.Stride
				for sx := 0; sx < a.scale; sx++ {
					frame.Pix[row+x*a.scale+sx] = idx
				}
			}
		}
	}
	a.frames = append(a.frames, frame)
}

// FrameCount reports how many frames have been recorded.
func (a *Animation) FrameCount() int { return len(a.frames) }

// WriteFile encodes the recorded frames as an animated GIF.
func (a *Animation) WriteFile(path string) error {
	if len(a.frames) == 0 {
		return fmt.Errorf("write gif: no frames recorded")
	}
	delays := make([]int, len(a.frames))
	for i := range delays {
		delays[i] = a.Delay
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &gif.GIF{Image: a.frames, Delay: delays}); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	log.WithFields(log.Fields{"path": path, "frames": len(a.frames)}).Info("wrote animation")
	return nil
}
