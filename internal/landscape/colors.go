package landscape

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/pkg/errors"

	"cubescape/internal/noise"
)

// Buckets is the fixed color assignment of a set of cells. Bucket k holds the
// k-th rank range of noise values and is drawn with palette color k.
type Buckets struct {
	palette Palette
	index   []uint8
}

type rankedCell struct {
	cell  int
	value float64
}

// AssignColors samples the field at each cell (scaled by 1/8 and shifted by
// offset), sorts the cells by that value and splits them into len(palette)
// rank ranges. Rank r lands in bucket floor(r / (n/p)); when n is not a
// multiple of p the lower buckets hold one extra cell.
func AssignColors(field *noise.Field, cells []Cell, palette Palette, offset float64) (*Buckets, error) {
	p := len(palette.Colors)
	if p == 0 {
		return nil, errors.Wrapf(ErrEmptyPalette, "assigning %d cells", len(cells))
	}
	if p > maxPaletteSize {
		return nil, errors.Wrapf(ErrInvalidConfig, "palette %q has %d colors, max %d", palette.Name, p, maxPaletteSize)
	}

	ranked := make([]rankedCell, len(cells))
	for i, c := range cells {
		ranked[i] = rankedCell{
			cell:  i,
			value: field.Sample2(c.X/8+offset, c.Z/8+offset),
		}
	}
	slices.SortFunc(ranked, func(a, b rankedCell) int {
		return cmp.Or(cmp.Compare(a.value, b.value), cmp.Compare(a.cell, b.cell))
	})

	n := len(ranked)
	index := make([]uint8, n)
	for rank, rc := range ranked {
		index[rc.cell] = uint8(rank * p / n)
	}
	return &Buckets{palette: palette, index: index}, nil
}

// Len returns the number of assigned cells.
func (b *Buckets) Len() int { return len(b.index) }

// Palette returns the palette the buckets index into.
func (b *Buckets) Palette() Palette { return b.palette }

// Bucket returns the bucket index of cell i.
func (b *Buckets) Bucket(i int) int { return int(b.index[i]) }

// Color returns the palette color of cell i.
func (b *Buckets) Color(i int) color.RGBA { return b.palette.Colors[b.index[i]] }

// Counts returns the number of cells in each bucket.
func (b *Buckets) Counts() []int {
	counts := make([]int, len(b.palette.Colors))
	for _, k := range b.index {
		counts[k]++
	}
	return counts
}
