//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"forest-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type heatProvider interface {
	HeatMask() []float32
}

type neighborProvider interface {
	NeighborCells(row, col int) [][2]int
}

// Overlay draws optional diagnostics on top of the grid: fire heat (key 1)
// and the neighbourhood of the cell under the cursor (key 2).
type Overlay struct {
	sim         core.Sim
	scale       int
	showHeat    bool
	showStencil bool
	maskImg     *ebiten.Image
	maskBuf     []byte
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStencil = !o.showStencil
	}
}

// Draw renders the enabled overlays onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showHeat {
		if provider, ok := o.sim.(heatProvider); ok {
			o.drawMask(screen, provider.HeatMask(), color.RGBA{R: 255, G: 200, B: 40})
		}
	}
	if o.showStencil {
		if provider, ok := o.sim.(neighborProvider); ok {
			o.drawStencil(screen, provider)
		}
	}
}

func (o *Overlay) cellScale() int {
	if o.scale <= 0 {
		return 1
	}
	return o.scale
}

func (o *Overlay) drawStencil(screen *ebiten.Image, provider neighborProvider) {
	scale := o.cellScale()
	mx, my := ebiten.CursorPosition()
	col, row := mx/scale, my/scale
	size := o.sim.Size()
	if col < 0 || row < 0 || col >= size.W || row >= size.H {
		return
	}
	o.drawCell(screen, row, col, color.RGBA{R: 40, G: 120, B: 255, A: 200})
	for _, n := range provider.NeighborCells(row, col) {
		o.drawCell(screen, n[0], n[1], color.RGBA{R: 120, G: 200, B: 255, A: 140})
	}
}

func (o *Overlay) drawCell(screen *ebiten.Image, row, col int, col4 color.RGBA) {
	scale := float64(o.cellScale())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(col)*scale, float64(row)*scale)
	op.ColorScale.ScaleWithColor(col4)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	const (
		maxAlpha      = 170.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i := 0; i < total; i++ {
		base := i * 4
		intensity := clamp01(float64(mask[i]))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}

		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		// Premultiplied alpha.
		a := float64(alpha) / 255
		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow*a)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow*a)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow*a)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := float64(o.cellScale())
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
