//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"cubescape/internal/core"
)

const (
	panelPadding   = 8
	lineHeight     = 16
	headerBaseline = 13
	panelWidth     = 220
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hintMessage = "H hide  Space pause  N step  R reset  S reseed"
)

// HUD renders the parameter snapshot of a simulation in the top-left corner.
type HUD struct {
	sim      core.Sim
	title    string
	visible  bool
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, title: buildTitle(sim), visible: true}
}

// Update toggles visibility and refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel over the scene.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := 2
	for _, group := range h.snapshot.Groups {
		lines += 1 + len(group.Params)
	}
	height := float32(panelPadding*2 + lines*lineHeight)
	vector.DrawFilledRect(screen, 0, 0, panelWidth, height, panelColor, false)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(screen, h.title, face, panelPadding, y, titleColor)
	for _, group := range h.snapshot.Groups {
		y += lineHeight
		text.Draw(screen, group.Name, face, panelPadding, y, groupColor)
		for _, param := range group.Params {
			y += lineHeight
			text.Draw(screen, fmt.Sprintf("  %s: %s", param.Label, param.Value), face, panelPadding, y, valueColor)
		}
	}
	y += lineHeight
	text.Draw(screen, hintMessage, face, panelPadding, y, groupColor)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
