package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"cubescape/internal/landscape"
)

func TestCameraProjectsTargetToCenter(t *testing.T) {
	cam := NewCamera(2)
	p := cam.Project(mgl64.Vec3{}, 800, 400)
	if math.Abs(p.X()-400) > 1e-9 || math.Abs(p.Y()-200) > 1e-9 {
		t.Fatalf("origin projected to %v, want (400,200)", p)
	}

	up := cam.Project(mgl64.Vec3{0, 5, 0}, 800, 400)
	if up.Y() >= p.Y() {
		t.Fatalf("raised point should move up the screen: %v vs %v", up, p)
	}
}

func TestCameraAspectFallback(t *testing.T) {
	cam := NewCamera(0)
	if cam.Aspect() != 1 {
		t.Fatalf("aspect %g, want 1", cam.Aspect())
	}
	cam.SetAspect(1.5)
	if cam.Aspect() != 1.5 {
		t.Fatalf("aspect %g, want 1.5", cam.Aspect())
	}
}

func TestRayThroughCenterFollowsView(t *testing.T) {
	cam := NewCamera(1)
	origin, dir := cam.Ray(50, 50, 100, 100)
	if dir.Sub(cam.Forward()).Len() > 1e-9 {
		t.Fatalf("ray dir %v, want %v", dir, cam.Forward())
	}
	if d := cam.Depth(origin); math.Abs(d-cam.Near) > 1e-6 {
		t.Fatalf("ray origin depth %g, want near plane %g", d, cam.Near)
	}
}

func TestPickNearest(t *testing.T) {
	cam := NewCamera(1)
	origin, dir := cam.Ray(50, 50, 100, 100)
	boxes := []Box{
		CubeBox(0, 0, 0.5, 1),
		CubeBox(20, -20, 0.5, 1),
		CubeBox(5, 5, 5, 1),
	}
	idx, ok := Pick(boxes, origin, dir)
	if !ok || idx != 2 {
		t.Fatalf("Pick = %d,%v, want 2,true", idx, ok)
	}

	if _, ok := Pick(boxes[1:2], origin, dir); ok {
		t.Fatal("off-axis box should not be hit")
	}
}

func TestBoxIntersectAxisAligned(t *testing.T) {
	b := CubeBox(0, 0, 0, 2)
	tHit, ok := b.Intersect(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -1, 0})
	if !ok || math.Abs(tHit-9) > 1e-12 {
		t.Fatalf("Intersect = %g,%v, want 9,true", tHit, ok)
	}
	if _, ok := b.Intersect(mgl64.Vec3{3, 10, 0}, mgl64.Vec3{0, -1, 0}); ok {
		t.Fatal("parallel ray outside the slab should miss")
	}
	if _, ok := b.Intersect(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 1, 0}); ok {
		t.Fatal("box behind the ray should miss")
	}
}

func TestBuildQuadsVisibleFacesSorted(t *testing.T) {
	cam := NewCamera(1)
	shader := NewShader(DefaultLight())
	boxes := []Box{CubeBox(0, 0, 1, 2), CubeBox(3, 3, 0.5, 1)}
	colors := []color.RGBA{{R: 200, A: 255}, {G: 200, A: 255}}

	quads := BuildQuads(nil, cam, shader, boxes, colors, 200, 200)
	if len(quads) != 6 {
		t.Fatalf("got %d quads, want 3 faces per box", len(quads))
	}
	for i := 1; i < len(quads); i++ {
		if quads[i].Depth > quads[i-1].Depth {
			t.Fatalf("quads not sorted far to near at %d", i)
		}
	}
}

func TestShaderDarkensShadowedFaces(t *testing.T) {
	shader := NewShader(DefaultLight())
	c := color.RGBA{R: 200, G: 180, B: 160, A: 255}
	top := shader.Shade(c, 2)
	back := shader.Shade(c, 4)
	if luminance(back) >= luminance(top) {
		t.Fatalf("face away from the light should be darker: top %v back %v", top, back)
	}
	if again := shader.Shade(c, 2); again != top {
		t.Fatal("cached shade differs")
	}
}

func luminance(c color.RGBA) int { return int(c.R) + int(c.G) + int(c.B) }

func TestPaletteImage(t *testing.T) {
	palette := []color.RGBA{{R: 255, A: 255}, {B: 255, A: 255}}
	img := PaletteImage([]uint8{0, 1, 1, 7}, 2, palette)
	if got := img.RGBAAt(1, 0); got != palette[1] {
		t.Fatalf("pixel (1,0) = %v, want %v", got, palette[1])
	}
	if got := img.RGBAAt(1, 1); got != palette[1] {
		t.Fatalf("out of range index should clamp to last color, got %v", got)
	}
	empty := PaletteImage([]uint8{0}, 2, palette)
	if got := empty.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Fatalf("mismatched buffer should leave image blank, got %v", got)
	}
}

func TestHeightImage(t *testing.T) {
	img := HeightImage([]float64{0, 5, 10, 20}, 2, 10)
	if got := img.RGBAAt(0, 0).R; got != 0 {
		t.Fatalf("zero height = %d", got)
	}
	if got := img.RGBAAt(1, 0).R; got != 128 {
		t.Fatalf("half height = %d, want 128", got)
	}
	if got := img.RGBAAt(1, 1).R; got != 255 {
		t.Fatalf("height above peak = %d, want 255", got)
	}
}

func TestPaintPNG(t *testing.T) {
	cam := NewCamera(1)
	quads := BuildQuads(nil, cam, NewShader(DefaultLight()), []Box{CubeBox(0, 0, 2, 4)}, []color.RGBA{{R: 255, G: 103, B: 77, A: 255}}, 256, 256)

	var buf bytes.Buffer
	if err := PaintPNG(&buf, quads, 256, 256, color.White); err != nil {
		t.Fatalf("PaintPNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("bounds %v", b)
	}
	// The column rises from the screen center.
	r, g, b, _ := img.At(128, 120).RGBA()
	if r == 0xffff && g == 0xffff && b == 0xffff {
		t.Fatal("cube should cover the pixel above the center")
	}
}

func TestFrameFromWorld(t *testing.T) {
	cfg := landscape.DefaultConfig()
	cfg.CubeAmount = 4
	world, err := landscape.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	world.Touch(0)

	var frame Frame
	frame.Update(world)
	if len(frame.Boxes) != 25 || len(frame.Colors) != 25 {
		t.Fatalf("got %d boxes and %d colors, want 25", len(frame.Boxes), len(frame.Colors))
	}
	if frame.Colors[0] != landscape.Touched {
		t.Fatalf("touched cell color %v", frame.Colors[0])
	}
	col := world.Columns()[7]
	b := frame.Boxes[7]
	if math.Abs(b.Max.Y()-b.Min.Y()-col.Scale) > 1e-12 {
		t.Fatalf("box height %g, want scale %g", b.Max.Y()-b.Min.Y(), col.Scale)
	}

	quads := frame.Build(NewCamera(1), NewShader(DefaultLight()), 100, 100)
	if len(quads) != 75 {
		t.Fatalf("got %d quads, want 75", len(quads))
	}
}
