//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"cubescape/internal/core"
	"cubescape/internal/render"
	"cubescape/internal/ui"
)

// Scene is a simulation the game can draw as cubes and touch with the pointer.
type Scene interface {
	core.Sim
	render.Scene
	Touch(i int) bool
	Seed() int64
}

// Game adapts a landscape scene to the ebiten.Game interface.
type Game struct {
	sim    Scene
	logger *zap.SugaredLogger

	cam     *render.Camera
	shader  *render.Shader
	painter *render.TrianglePainter
	frame   render.Frame
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *core.FixedStep

	background color.Color

	width, height int
	paused        bool
	tickOnce      bool
	seed          int64

	lastCursor image.Point
	touchIDs   []ebiten.TouchID
}

// New constructs a Game for the provided scene.
func New(sim Scene, cfg *Config, logger *zap.SugaredLogger) *Game {
	g := &Game{
		sim:        sim,
		logger:     logger,
		cam:        render.NewCamera(float64(cfg.Width) / float64(cfg.Height)),
		shader:     render.NewShader(render.DefaultLight()),
		painter:    render.NewTrianglePainter(),
		hud:        ui.NewHUD(sim),
		overlay:    ui.NewOverlay(sim),
		ticker:     core.NewFixedStep(cfg.FPS),
		background: color.White,
		width:      cfg.Width,
		height:     cfg.Height,
		seed:       sim.Seed(),
		lastCursor: image.Pt(-1, -1),
	}
	g.frame.Update(sim)
	return g
}

// Reset reinitializes the scene with the provided seed. The seed the scene
// settles on is kept so that R replays the same landscape.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.seed = g.sim.Seed()
	g.tickOnce = false
	g.frame.Update(g.sim)
	g.logger.Infow("reset", "seed", g.seed)
}

// Update handles per-frame logic and advances the animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update()

	due := g.ticker.ShouldStep(time.Now())
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.frame.Update(g.sim)

	g.handlePointer()
	return nil
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != g.lastCursor {
		g.lastCursor = p
		g.touchAt(x, y)
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		g.touchAt(tx, ty)
	}
}

func (g *Game) touchAt(x, y int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	origin, dir := g.cam.Ray(float64(x), float64(y), float64(g.width), float64(g.height))
	if idx, ok := render.Pick(g.frame.Boxes, origin, dir); ok && g.sim.Touch(idx) {
		g.frame.Update(g.sim)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	quads := g.frame.Build(g.cam, g.shader, float64(g.width), float64(g.height))
	g.painter.Draw(screen, quads)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout follows the window size and keeps the camera aspect in sync.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cam.SetAspect(float64(outsideWidth) / float64(outsideHeight))
		g.logger.Debugw("resized", "width", outsideWidth, "height", outsideHeight)
	}
	return g.width, g.height
}
