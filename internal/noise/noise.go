// Package noise implements a seeded multi-octave value noise over a
// wrapping lattice, interpolated with a scaled cosine ease curve.
package noise

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a Config is outside its valid range.
var ErrInvalidConfig = errors.New("invalid noise config")

// Config controls the fractal layering of a Field.
type Config struct {
	// Octaves is the number of layers summed per sample.
	Octaves int
	// Falloff multiplies the amplitude after each octave.
	Falloff float64
}

// DefaultConfig returns four octaves with halving amplitude.
func DefaultConfig() Config {
	return Config{Octaves: 4, Falloff: 0.5}
}

// Validate reports whether the config can be used to sample noise.
func (c Config) Validate() error {
	if c.Octaves < 1 {
		return errors.Wrapf(ErrInvalidConfig, "octaves must be >= 1, got %d", c.Octaves)
	}
	if !(c.Falloff > 0 && c.Falloff <= 1) {
		return errors.Wrapf(ErrInvalidConfig, "falloff must be in (0,1], got %g", c.Falloff)
	}
	return nil
}

// Field samples coherent noise. The lattice is filled from the source on the
// first sample and is read-only afterwards, so a Field is safe for concurrent
// use.
type Field struct {
	cfg Config

	src     Source
	once    *sync.Once
	lattice **Lattice
}

// NewField returns a Field whose lattice will be drawn from src on first use.
// A nil src draws from the process-wide random generator.
func NewField(cfg Config, src Source) *Field {
	var l *Lattice
	return &Field{cfg: cfg, src: src, once: new(sync.Once), lattice: &l}
}

// NewSeededField returns a Field with a deterministic lattice for seed.
func NewSeededField(cfg Config, seed int64) *Field {
	return NewField(cfg, rand.New(rand.NewPCG(uint64(seed), 0)))
}

// NewFieldFromLattice returns a Field backed by an existing lattice.
func NewFieldFromLattice(cfg Config, l *Lattice) *Field {
	f := NewField(cfg, nil)
	if l != nil {
		*f.lattice = l
		f.once.Do(func() {})
	}
	return f
}

// WithConfig returns a Field with different detail that shares this Field's
// lattice, initializing it if necessary.
func (f *Field) WithConfig(cfg Config) *Field {
	f.init()
	return &Field{cfg: cfg, src: f.src, once: f.once, lattice: f.lattice}
}

// Config returns the detail settings of the Field.
func (f *Field) Config() Config { return f.cfg }

// Lattice returns the backing lattice, filling it if this is the first use.
func (f *Field) Lattice() *Lattice {
	f.init()
	return *f.lattice
}

func (f *Field) init() {
	f.once.Do(func() {
		*f.lattice = NewLattice(f.src)
	})
}

// Sample2 samples the field on the z=0 plane.
func (f *Field) Sample2(x, y float64) float64 {
	return f.Sample(x, y, 0)
}

// Sample returns the noise value at (x, y, z). Negative coordinates are
// mirrored, so Sample(-x, y, z) == Sample(x, y, z). The result is roughly in
// [0, 1) and is not clamped.
func (f *Field) Sample(x, y, z float64) float64 {
	l := f.Lattice()

	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)

	xi, yi, zi := int(math.Floor(x)), int(math.Floor(y)), int(math.Floor(z))
	xf, yf, zf := x-float64(xi), y-float64(yi), z-float64(zi)

	var r float64
	ampl := 0.5

	for o := 0; o < f.cfg.Octaves; o++ {
		of := xi + (yi << yWrapBits) + (zi << zWrapBits)

		rxf := scaledCosine(xf)
		ryf := scaledCosine(yf)

		n1 := l.At(of)
		n1 += rxf * (l.At(of+1) - n1)
		n2 := l.At(of + yWrap)
		n2 += rxf * (l.At(of+yWrap+1) - n2)
		n1 += ryf * (n2 - n1)

		of += zWrap
		n2 = l.At(of)
		n2 += rxf * (l.At(of+1) - n2)
		n3 := l.At(of + yWrap)
		n3 += rxf * (l.At(of+yWrap+1) - n3)
		n2 += ryf * (n3 - n2)

		n1 += scaledCosine(zf) * (n2 - n1)

		r += n1 * ampl
		ampl *= f.cfg.Falloff

		xi <<= 1
		xf *= 2
		yi <<= 1
		yf *= 2
		zi <<= 1
		zf *= 2

		if xf >= 1 {
			xi++
			xf--
		}
		if yf >= 1 {
			yi++
			yf--
		}
		if zf >= 1 {
			zi++
			zf--
		}
	}
	return r
}

// scaledCosine eases t in [0,1] with zero slope at both ends.
func scaledCosine(t float64) float64 {
	return 0.5 * (1 - math.Cos(t*math.Pi))
}
