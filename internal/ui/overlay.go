//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cubescape/internal/core"
	"cubescape/internal/render"
)

const (
	minimapScale  = 3
	minimapMargin = 8
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type heightProvider interface {
	Heights() []float64
}

// Overlay draws the optional top-down maps in the bottom-right corner.
type Overlay struct {
	sim         core.Sim
	showPalette bool
	showHeight  bool

	paletteImg *ebiten.Image
	heightImg  *ebiten.Image
	heights    []float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update toggles the maps.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPalette = !o.showPalette
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeight = !o.showHeight
	}
}

// Draw renders the enabled maps onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 || size.W != size.H {
		return
	}
	side := size.W
	x := screen.Bounds().Dx() - side*minimapScale - minimapMargin
	y := screen.Bounds().Dy() - side*minimapScale - minimapMargin

	if provider, ok := o.sim.(paletteProvider); ok && o.showPalette {
		img := render.PaletteImage(o.sim.Cells(), side, provider.Palette())
		o.paletteImg = ensureImage(o.paletteImg, side)
		o.paletteImg.WritePixels(img.Pix)
		drawScaled(screen, o.paletteImg, x, y)
		x -= side*minimapScale + minimapMargin
	}

	if o.showHeight {
		provider, ok := o.sim.(heightProvider)
		if !ok {
			return
		}
		o.heights = provider.Heights()
		peak := 0.0
		for _, h := range o.heights {
			peak = max(peak, h)
		}
		img := render.HeightImage(o.heights, side, peak)
		o.heightImg = ensureImage(o.heightImg, side)
		o.heightImg.WritePixels(img.Pix)
		drawScaled(screen, o.heightImg, x, y)
	}
}

func ensureImage(img *ebiten.Image, side int) *ebiten.Image {
	if img != nil && img.Bounds() == image.Rect(0, 0, side, side) {
		return img
	}
	return ebiten.NewImage(side, side)
}

func drawScaled(screen, img *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(minimapScale, minimapScale)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}
