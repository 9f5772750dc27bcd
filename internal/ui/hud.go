//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"gridlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
)

// HUD draws a small status panel over the simulation view: sim name,
// generation and population counters, and the paused flag. Toggled with
// the H key.
type HUD struct {
	sim     core.Sim
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update processes HUD input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the panel onto the screen when visible.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if !h.visible {
		return
	}

	lines := []string{h.sim.Name()}
	if stats, ok := h.sim.(core.StatsProvider); ok {
		lines = append(lines,
			fmt.Sprintf("gen %d", stats.Generation()),
			fmt.Sprintf("pop %d", stats.Population()),
		)
	}
	if paused {
		lines = append(lines, "paused")
	}

	w := 0
	face := basicfont.Face7x13
	for _, line := range lines {
		if adv := text.BoundString(face, line).Dx(); adv > w {
			w = adv
		}
	}
	panelW := w + 2*hudPadding
	panelH := len(lines)*hudLineHeight + 2*hudPadding

	if h.panel == nil || h.panel.Bounds().Dx() != panelW || h.panel.Bounds().Dy() != panelH {
		h.panel = ebiten.NewImage(panelW, panelH)
	}
	h.panel.Fill(color.RGBA{R: 20, G: 20, B: 28, A: 180})

	y := hudPadding + hudLineHeight - 3
	for _, line := range lines {
		text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 210, G: 210, B: 220, A: 255})
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)
}
