package landscape

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ErrEmptyPalette is returned when colors are requested from a palette with
// no entries.
var ErrEmptyPalette = errors.New("empty palette")

// Touched is the color of cells the pointer has passed over.
var Touched = color.RGBA{A: 255}

// Palette is an ordered set of bucket colors, lowest noise first.
type Palette struct {
	Name   string
	Colors []color.RGBA
}

// ParsePalette builds a palette from "#rrggbb" strings.
func ParsePalette(name string, hexes ...string) (Palette, error) {
	p := Palette{Name: name, Colors: make([]color.RGBA, 0, len(hexes))}
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, errors.Wrapf(err, "palette %q", name)
		}
		r, g, b := c.RGB255()
		p.Colors = append(p.Colors, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return p, nil
}

// DefaultPalettes returns the candidate palettes chosen from on reset.
func DefaultPalettes() []Palette {
	return []Palette{
		mustParsePalette("sunset", "#FF674D", "#FFEC51", "#FFFBDB", "#CDC7E5", "#7776BC"),
		mustParsePalette("lagoon", "#0B3954", "#087E8B", "#BFD7EA", "#FF5A5F", "#C81D25"),
		mustParsePalette("moss", "#283D3B", "#197278", "#EDDDD4", "#C44536", "#772E25"),
	}
}

func mustParsePalette(name string, hexes ...string) Palette {
	p, err := ParsePalette(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

func paletteIndex(palettes []Palette, name string) int {
	for i, p := range palettes {
		if p.Name == name {
			return i
		}
	}
	return -1
}
