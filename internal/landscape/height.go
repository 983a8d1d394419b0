package landscape

import (
	"math"

	"cubescape/internal/noise"
)

const (
	baseScale    = 8
	baseHeight   = 20
	rippleScale  = 20
	rippleSpeed  = 400
	rippleHeight = 30
	heightPower  = 5
)

// Column is the vertical transform of one cube for one frame.
type Column struct {
	// Height is the static extent of the cube.
	Height float64
	// Offset lifts the cube so it rests on the ground plane.
	Offset float64
	// Scale is the drawn vertical extent: Height plus the animated ripple.
	Scale float64
}

// Evaluate computes the column of the cube at (x, z) for frame. It depends
// only on its arguments and the field's lattice, so frames may be skipped.
func Evaluate(field *noise.Field, x, z float64, frame uint64) Column {
	height := baseHeight * math.Pow(field.Sample2(x/baseScale, z/baseScale), heightPower)
	t := float64(frame) / rippleSpeed
	ripple := math.Pow(field.Sample2(x/rippleScale+t, z/rippleScale+t), heightPower) * rippleHeight
	return Column{
		Height: height,
		Offset: height / 2,
		Scale:  height + ripple,
	}
}

// EvaluateAll fills dst with the columns of cells for frame. dst must be at
// least as long as cells.
func EvaluateAll(dst []Column, field *noise.Field, cells []Cell, frame uint64) {
	for i, c := range cells {
		dst[i] = Evaluate(field, c.X, c.Z, frame)
	}
}
