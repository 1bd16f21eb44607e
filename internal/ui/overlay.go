//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"fuego-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type slopeProvider interface {
	Slope() *core.FloatGrid
}

// Overlay draws optional visuals on top of the base simulation: a shaded
// slope field (toggled with V) and the current wind arrow.
type Overlay struct {
	sim       core.Sim
	scale     int
	showSlope bool

	slopeImg *ebiten.Image
	slopeBuf []byte
}

// NewOverlay constructs an overlay bound to the provided simulation.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showSlope = !o.showSlope
	}
}

// Draw renders the enabled overlays onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil {
		return
	}
	if o.showSlope {
		o.drawSlope(screen)
	}
	o.drawWindArrow(screen)
}

func (o *Overlay) drawSlope(screen *ebiten.Image) {
	provider, ok := o.sim.(slopeProvider)
	if !ok {
		return
	}
	field := provider.Slope()
	if field == nil || field.W == 0 || field.H == 0 {
		return
	}
	if o.slopeImg == nil {
		o.slopeImg = ebiten.NewImage(field.W, field.H)
		o.slopeBuf = make([]byte, 4*field.W*field.H)
	}
	for i, v := range field.Values() {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		shade := uint8(v * 255)
		base := i * 4
		o.slopeBuf[base+0] = shade
		o.slopeBuf[base+1] = 0
		o.slopeBuf[base+2] = 255 - shade
		o.slopeBuf[base+3] = 110
	}
	o.slopeImg.WritePixels(o.slopeBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.slopeImg, op)
}

// drawWindArrow marks the hourly wind reading near the top-right corner of
// the simulation view, arrow length proportional to speed. The vertical
// component is flipped so the arrow points the way a compass drawing would,
// matching the original display.
func (o *Overlay) drawWindArrow(screen *ebiten.Image) {
	wp, ok := o.sim.(windReadingProvider)
	if !ok {
		return
	}
	dirDeg, speed := wp.WindReading()
	rad := dirDeg * math.Pi / 180

	size := o.sim.Size()
	originX := float32(size.W*o.scale - 60)
	originY := float32(60)

	length := speed * 3
	if length > 50 {
		length = 50
	}
	tipX := originX + float32(math.Cos(rad)*length)
	tipY := originY - float32(math.Sin(rad)*length)

	blue := color.RGBA{R: 0, G: 191, B: 255, A: 255}
	vector.StrokeLine(screen, originX, originY, tipX, tipY, 3, blue, true)
	vector.DrawFilledCircle(screen, originX, originY, 5, blue, true)
}
