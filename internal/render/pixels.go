package render

import (
	"image"
	"image/color"
)

// PaletteImage draws a display buffer as a side x side image, one pixel per
// cell. Rows follow the outer cell index.
func PaletteImage(cells []uint8, side int, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	if len(cells) != side*side {
		return img
	}
	fillPaletteRGBA(img.Pix, cells, palette)
	return img
}

// HeightImage draws per-cell heights in grayscale, scaled so that peak is
// white.
func HeightImage(heights []float64, side int, peak float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	if len(heights) != side*side {
		return img
	}
	fillHeightRGBA(img.Pix, heights, peak)
	return img
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func fillHeightRGBA(buf []byte, heights []float64, peak float64) {
	for i, h := range heights {
		v := uint8(0)
		if peak > 0 {
			f := h / peak
			if f > 1 {
				f = 1
			}
			if f > 0 {
				v = uint8(f*255 + 0.5)
			}
		}
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 255
	}
}
