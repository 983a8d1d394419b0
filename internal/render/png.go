package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// PaintImage rasterizes quads in order onto a width x height canvas.
func PaintImage(quads []Quad, width, height int, background color.Color) image.Image {
	return paint(quads, width, height, background).Image()
}

// PaintPNG rasterizes quads and writes the result as PNG.
func PaintPNG(w io.Writer, quads []Quad, width, height int, background color.Color) error {
	if err := paint(quads, width, height, background).EncodePNG(w); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

func paint(quads []Quad, width, height int, background color.Color) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	for _, q := range quads {
		dc.NewSubPath()
		dc.MoveTo(q.Points[0].X(), q.Points[0].Y())
		for _, p := range q.Points[1:] {
			dc.LineTo(p.X(), p.Y())
		}
		dc.ClosePath()
		dc.SetColor(q.Color)
		dc.Fill()
	}
	return dc
}
