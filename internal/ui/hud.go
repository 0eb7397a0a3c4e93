//go:build ebiten

package ui

import (
	"image/color"

	"cgol/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel along the top edge.
type HUD struct {
	width int
}

// NewHUD constructs a HUD for a surface of the given width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Draw paints the panel onto screen over the canvas copy; the canvas itself
// is never touched.
func (h *HUD) Draw(screen *ebiten.Image, s sim.Status) {
	if h == nil || h.width <= 0 {
		return
	}
	height := panelPadding*2 + lineHeight*2
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(screen, StatusLine(s), face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(screen, KeyHelp, face, panelPadding, y+lineHeight, color.RGBA{R: 160, G: 160, B: 170, A: 255})
}

const (
	panelPadding   = 6
	lineHeight     = 16
	headerBaseline = 11
)
