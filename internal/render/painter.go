//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxQuadsPerBatch keeps each DrawTriangles call under the uint16 index limit.
const maxQuadsPerBatch = 16000

// TrianglePainter draws quads as batched triangles.
type TrianglePainter struct {
	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image
}

// NewTrianglePainter allocates the solid fill source image.
func NewTrianglePainter() *TrianglePainter {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &TrianglePainter{white: white}
}

// Draw paints quads onto dst in order.
func (p *TrianglePainter) Draw(dst *ebiten.Image, quads []Quad) {
	for start := 0; start < len(quads); start += maxQuadsPerBatch {
		end := min(start+maxQuadsPerBatch, len(quads))
		p.drawBatch(dst, quads[start:end])
	}
}

func (p *TrianglePainter) drawBatch(dst *ebiten.Image, quads []Quad) {
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
	for _, q := range quads {
		base := uint16(len(p.vertices))
		r := float32(q.Color.R) / 255
		g := float32(q.Color.G) / 255
		b := float32(q.Color.B) / 255
		a := float32(q.Color.A) / 255
		for _, pt := range q.Points {
			p.vertices = append(p.vertices, ebiten.Vertex{
				DstX:   float32(pt.X()),
				DstY:   float32(pt.Y()),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			})
		}
		p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(p.vertices, p.indices, p.white, op)
}
