package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Quad is one projected, shaded box face.
type Quad struct {
	Points [4]mgl64.Vec2
	Color  color.RGBA
	Depth  float64
}

type face struct {
	normal  mgl64.Vec3
	corners [4]int
}

var faces = [6]face{
	{mgl64.Vec3{1, 0, 0}, [4]int{1, 3, 7, 5}},
	{mgl64.Vec3{-1, 0, 0}, [4]int{0, 4, 6, 2}},
	{mgl64.Vec3{0, 1, 0}, [4]int{2, 6, 7, 3}},
	{mgl64.Vec3{0, -1, 0}, [4]int{0, 1, 5, 4}},
	{mgl64.Vec3{0, 0, 1}, [4]int{4, 5, 7, 6}},
	{mgl64.Vec3{0, 0, -1}, [4]int{0, 2, 3, 1}},
}

// Light is an ambient term plus one directional light.
type Light struct {
	Ambient   float64
	Intensity float64
	// Direction points from the surface towards the light.
	Direction mgl64.Vec3
}

// DefaultLight is a soft ambient with a key light from (20, 20, -20).
func DefaultLight() Light {
	return Light{
		Ambient:   0.25,
		Intensity: 0.75,
		Direction: mgl64.Vec3{20, 20, -20}.Normalize(),
	}
}

// Shader lights flat faces and caches the result per color and face.
type Shader struct {
	light Light
	cache map[shadeKey]color.RGBA
}

type shadeKey struct {
	c    color.RGBA
	face int
}

// NewShader returns a Shader for light.
func NewShader(light Light) *Shader {
	return &Shader{light: light, cache: make(map[shadeKey]color.RGBA)}
}

// Shade returns c as lit on the face with the given normal index.
func (s *Shader) Shade(c color.RGBA, faceIdx int) color.RGBA {
	key := shadeKey{c: c, face: faceIdx}
	if out, ok := s.cache[key]; ok {
		return out
	}
	k := s.light.Ambient + s.light.Intensity*max(0, faces[faceIdx].normal.Dot(s.light.Direction))
	k = min(max(k, 0), 1)

	base, _ := colorful.MakeColor(c)
	lit := colorful.Color{}.BlendLab(base, k).Clamped()
	r, g, b := lit.RGB255()
	out := color.RGBA{R: r, G: g, B: b, A: c.A}
	s.cache[key] = out
	return out
}

// BuildQuads appends the camera-facing faces of boxes to dst, shaded with
// the matching entry of colors, sorted far to near for painter's order.
func BuildQuads(dst []Quad, cam *Camera, shader *Shader, boxes []Box, colors []color.RGBA, w, h float64) []Quad {
	dst = dst[:0]
	forward := cam.Forward()
	for i, b := range boxes {
		var projected [8]mgl64.Vec2
		for c := range projected {
			projected[c] = cam.Project(b.Corner(c), w, h)
		}
		for fi, f := range faces {
			if f.normal.Dot(forward) >= 0 {
				continue
			}
			q := Quad{
				Color: shader.Shade(colors[i], fi),
				Depth: cam.Depth(b.Center().Add(f.normal.Mul(0.5))),
			}
			for k, c := range f.corners {
				q.Points[k] = projected[c]
			}
			dst = append(dst, q)
		}
	}
	slices.SortStableFunc(dst, func(a, b Quad) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return dst
}
