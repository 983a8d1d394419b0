package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is an orthographic camera looking down at the landscape from a
// corner.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3

	// HalfHeight is half the visible world height; the width follows the
	// aspect ratio.
	HalfHeight float64
	Near, Far  float64

	aspect   float64
	viewProj mgl64.Mat4
	inverse  mgl64.Mat4
}

// NewCamera returns the default camera at (50, 50, 50) aimed at the origin.
func NewCamera(aspect float64) *Camera {
	c := &Camera{
		Eye:        mgl64.Vec3{50, 50, 50},
		Up:         mgl64.Vec3{0, 1, 0},
		HalfHeight: 15,
		Near:       1,
		Far:        200,
	}
	c.SetAspect(aspect)
	return c
}

// SetAspect updates the projection for a viewport of the given width/height
// ratio. Non-positive ratios are treated as square.
func (c *Camera) SetAspect(aspect float64) {
	if !(aspect > 0) {
		aspect = 1
	}
	c.aspect = aspect
	c.Update()
}

// Aspect returns the current width/height ratio.
func (c *Camera) Aspect() float64 { return c.aspect }

// Update recomputes the matrices after Eye, Target, Up or the volume changed.
func (c *Camera) Update() {
	view := mgl64.LookAtV(c.Eye, c.Target, c.Up)
	w := c.HalfHeight * c.aspect
	proj := mgl64.Ortho(-w, w, -c.HalfHeight, c.HalfHeight, c.Near, c.Far)
	c.viewProj = proj.Mul4(view)
	c.inverse = c.viewProj.Inv()
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Target.Sub(c.Eye).Normalize()
}

// Depth returns the distance of p from the eye along the view direction.
func (c *Camera) Depth(p mgl64.Vec3) float64 {
	return p.Sub(c.Eye).Dot(c.Forward())
}

// Project maps a world point to pixel coordinates in a w x h viewport with
// the origin at the top-left corner.
func (c *Camera) Project(p mgl64.Vec3, w, h float64) mgl64.Vec2 {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl64.Vec2{(ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h}
}

// Ray returns the picking ray through pixel (px, py) of a w x h viewport. The
// origin lies on the near plane.
func (c *Camera) Ray(px, py, w, h float64) (origin, dir mgl64.Vec3) {
	nx := px/w*2 - 1
	ny := -(py/h)*2 + 1
	near := c.unproject(nx, ny, -1)
	far := c.unproject(nx, ny, 1)
	return near, far.Sub(near).Normalize()
}

func (c *Camera) unproject(x, y, z float64) mgl64.Vec3 {
	v := c.inverse.Mul4x1(mgl64.Vec4{x, y, z, 1})
	return v.Vec3().Mul(1 / v.W())
}
