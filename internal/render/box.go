package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned box in world space.
type Box struct {
	Min, Max mgl64.Vec3
}

// CubeBox returns the unit cube at (x, z) lifted by offset and stretched
// vertically to scale.
func CubeBox(x, z, offset, scale float64) Box {
	half := scale / 2
	return Box{
		Min: mgl64.Vec3{x - 0.5, offset - half, z - 0.5},
		Max: mgl64.Vec3{x + 0.5, offset + half, z + 0.5},
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corner returns one of the eight corners; bit 0 selects max x, bit 1 max y
// and bit 2 max z.
func (b Box) Corner(i int) mgl64.Vec3 {
	c := b.Min
	if i&1 != 0 {
		c[0] = b.Max[0]
	}
	if i&2 != 0 {
		c[1] = b.Max[1]
	}
	if i&4 != 0 {
		c[2] = b.Max[2]
	}
	return c
}

// Intersect returns the distance along dir at which the ray enters the box.
func (b Box) Intersect(origin, dir mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for a := 0; a < 3; a++ {
		o, d := origin[a], dir[a]
		if math.Abs(d) < 1e-12 {
			if o < b.Min[a] || o > b.Max[a] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[a] - o) / d
		t2 := (b.Max[a] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	return max(tmin, 0), true
}

// Pick returns the index of the nearest box hit by the ray.
func Pick(boxes []Box, origin, dir mgl64.Vec3) (int, bool) {
	best, bestT := -1, math.Inf(1)
	for i, b := range boxes {
		if t, ok := b.Intersect(origin, dir); ok && t < bestT {
			best, bestT = i, t
		}
	}
	return best, best >= 0
}
