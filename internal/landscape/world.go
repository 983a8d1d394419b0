package landscape

import (
	"image/color"
	"math/rand/v2"

	"cubescape/internal/core"
	"cubescape/internal/noise"
)

// World holds the landscape state: the noise field, the cells with their
// fixed color buckets and the columns of the current frame.
type World struct {
	cfg Config

	side int

	field   *noise.Field
	palette Palette
	colors  []color.RGBA
	cells   []Cell
	buckets *Buckets
	columns []Column
	touched []bool
	display *core.ByteGrid

	seed  int64
	frame uint64
}

// New returns a landscape with the default configuration.
func New() (*World, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig validates cfg and returns a world reset with cfg.Seed, or
// with a fresh seed when cfg.Seed is 0.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	side := cfg.Side()
	w := &World{
		cfg:     cfg,
		side:    side,
		cells:   BuildCells(cfg.CubeWidth, cfg.CubeAmount),
		columns: make([]Column, side*side),
		touched: make([]bool, side*side),
		display: core.NewByteGrid(side, side),
	}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "landscape" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.side, H: w.side} }

// Cells exposes the display buffer: the palette index of every cell, with
// touched cells pointing at the extra entry appended by Palette.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Palette returns the active palette colors followed by the touched color.
func (w *World) Palette() []color.RGBA { return w.colors }

// ActivePalette returns the palette chosen on the last reset.
func (w *World) ActivePalette() Palette { return w.palette }

// Positions exposes the fixed cell positions.
func (w *World) Positions() []Cell { return w.cells }

// Columns exposes the columns of the current frame.
func (w *World) Columns() []Column { return w.columns }

// Heights returns the drawn vertical extent of every cube in the current frame.
func (w *World) Heights() []float64 {
	out := make([]float64, len(w.columns))
	for i, c := range w.columns {
		out[i] = c.Scale
	}
	return out
}

// Buckets returns the color assignment made on the last reset.
func (w *World) Buckets() *Buckets { return w.buckets }

// Field returns the noise field of the current run.
func (w *World) Field() *noise.Field { return w.field }

// Seed returns the seed the last reset used. Passing it to Reset reproduces
// the same lattice and palette.
func (w *World) Seed() int64 { return w.seed }

// Frame returns the current frame number, starting at 0 after a reset.
func (w *World) Frame() uint64 { return w.frame }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Reset draws a new lattice and palette from seed, reassigns the color
// buckets and rewinds to frame 0. Seed 0 means the configured seed, and when
// that is 0 too a fresh seed is drawn, so the landscape differs across runs.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	for effective == 0 {
		effective = rand.Int64()
	}
	w.seed = effective
	rng := core.NewRNG(effective)
	w.field = noise.NewField(w.cfg.Noise, rng.Child())

	idx := w.cfg.Palette
	if idx < 0 {
		idx = rng.IntN(len(w.cfg.Palettes))
	}
	w.palette = w.cfg.Palettes[idx]
	w.colors = append(append(w.colors[:0], w.palette.Colors...), Touched)

	buckets, err := AssignColors(w.field, w.cells, w.palette, w.cfg.ColorOffset)
	if err != nil {
		// Validate rejects every palette AssignColors can fail on.
		panic(err)
	}
	w.buckets = buckets

	cells := w.display.Cells()
	for i := range w.touched {
		w.touched[i] = false
		cells[i] = uint8(buckets.Bucket(i))
	}

	w.frame = 0
	EvaluateAll(w.columns, w.field, w.cells, w.frame)
}

// Step advances one frame and recomputes every column.
func (w *World) Step() {
	w.frame++
	EvaluateAll(w.columns, w.field, w.cells, w.frame)
}

// Seek jumps to frame and evaluates it directly. The result is the same as
// stepping there one frame at a time.
func (w *World) Seek(frame uint64) {
	w.frame = frame
	EvaluateAll(w.columns, w.field, w.cells, w.frame)
}

// Touch marks cell i as touched so it is drawn with the Touched color until
// the next reset. It reports whether the cell changed.
func (w *World) Touch(i int) bool {
	if i < 0 || i >= len(w.touched) || w.touched[i] {
		return false
	}
	w.touched[i] = true
	w.display.Cells()[i] = uint8(len(w.palette.Colors))
	return true
}

// ColorAt returns the color cell i is drawn with.
func (w *World) ColorAt(i int) color.RGBA {
	return w.colors[w.display.Cells()[i]]
}

func init() {
	core.Register("landscape", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
