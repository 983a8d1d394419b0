package render

import (
	"image/color"

	"cubescape/internal/landscape"
)

// Scene is the landscape state a Frame is assembled from.
type Scene interface {
	Positions() []landscape.Cell
	Columns() []landscape.Column
	Cells() []uint8
	Palette() []color.RGBA
}

// Frame holds the boxes, colors and quads of one rendered frame. Buffers are
// reused between updates.
type Frame struct {
	Boxes  []Box
	Colors []color.RGBA
	Quads  []Quad
}

// Update rebuilds boxes and colors from the scene's current frame.
func (f *Frame) Update(s Scene) {
	positions := s.Positions()
	columns := s.Columns()
	cells := s.Cells()
	palette := s.Palette()

	f.Boxes = f.Boxes[:0]
	f.Colors = f.Colors[:0]
	for i, p := range positions {
		col := columns[i]
		f.Boxes = append(f.Boxes, CubeBox(p.X, p.Z, col.Offset, col.Scale))
		f.Colors = append(f.Colors, palette[cells[i]])
	}
}

// Build projects the boxes for a w x h viewport and returns the sorted quads.
func (f *Frame) Build(cam *Camera, shader *Shader, w, h float64) []Quad {
	f.Quads = BuildQuads(f.Quads, cam, shader, f.Boxes, f.Colors, w, h)
	return f.Quads
}
