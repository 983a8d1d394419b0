package noise

import "math/rand/v2"

const (
	yWrapBits = 4
	yWrap     = 1 << yWrapBits
	zWrapBits = 8
	zWrap     = 1 << zWrapBits

	// Mask addresses the lattice; every index wraps modulo Size.
	Mask = 4095
	// Size is the number of values stored in a Lattice.
	Size = Mask + 1
)

// Source produces uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Lattice is the toroidal table of random values the noise is interpolated
// from. x varies fastest, y occupies a 16-wide band and z a 256-wide band.
type Lattice [Size]float64

// NewLattice fills a lattice from src.
func NewLattice(src Source) *Lattice {
	if src == nil {
		src = processSource{}
	}
	l := &Lattice{}
	for i := range l {
		l[i] = src.Float64()
	}
	return l
}

// At returns the value stored at the wrapped index i.
func (l *Lattice) At(i int) float64 { return l[i&Mask] }

// processSource draws from the auto-seeded top-level math/rand/v2 generator,
// so the pattern differs between runs.
type processSource struct{}

func (processSource) Float64() float64 { return rand.Float64() }
