//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"forest-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders live counters and the sim's parameters in a panel to the right
// of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string

	status   []core.Parameter
	snapshot core.ParameterSnapshot
	footer   string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the counters. footer is shown at the bottom of the panel.
func (h *HUD) Update(footer string) {
	if h == nil {
		return
	}
	h.footer = footer
	if provider, ok := h.sim.(core.StatusProvider); ok {
		h.status = provider.Status()
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height < minPanelHeight {
		height = minPanelHeight
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText(height int) {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += sectionGap

	for _, p := range h.status {
		h.drawRow(p.Label, p.Value, y, valueColor)
		y += lineHeight
	}
	for _, group := range h.snapshot.Groups {
		y += sectionGap - lineHeight
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineHeight
		for _, p := range group.Params {
			h.drawRow(p.Label, p.Value, y, dimColor)
			y += lineHeight
		}
	}
	if h.footer != "" {
		text.Draw(h.panel, h.footer, face, panelPadding, height-panelPadding, dimColor)
	}
}

func (h *HUD) drawRow(label, value string, y int, col color.RGBA) {
	face := basicfont.Face7x13
	text.Draw(h.panel, label, face, panelPadding, y, labelColor)
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, h.width-panelPadding-w, y, col)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Forest"
	}
	size := sim.Size()
	return fmt.Sprintf("%s %dx%d", strings.ToUpper(sim.Name()[:1])+sim.Name()[1:], size.W, size.H)
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor  = color.RGBA{R: 250, G: 210, B: 120, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	sectionGap     = 26
	headerBaseline = 18
	minPanelHeight = 420
)
