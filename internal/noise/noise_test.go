package noise

import (
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
)

type countingSource struct {
	calls atomic.Int64
	value float64
}

func (c *countingSource) Float64() float64 {
	c.calls.Add(1)
	return c.value
}

type sequenceSource struct {
	values []float64
	i      int
}

func (s *sequenceSource) Float64() float64 {
	if s.i >= len(s.values) {
		return 0
	}
	v := s.values[s.i]
	s.i++
	return v
}

func TestSampleIsEvenPerAxis(t *testing.T) {
	field := NewSeededField(DefaultConfig(), 7)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*20 - 10
		want := field.Sample(x, y, z)
		if got := field.Sample(-x, -y, -z); got != want {
			t.Fatalf("Sample(-%g,-%g,-%g)=%g, want %g", x, y, z, got, want)
		}
		if got := field.Sample(-x, y, z); got != want {
			t.Fatalf("x mirror at (%g,%g,%g): %g != %g", x, y, z, got, want)
		}
		if got := field.Sample(x, -y, z); got != want {
			t.Fatalf("y mirror at (%g,%g,%g): %g != %g", x, y, z, got, want)
		}
		if got := field.Sample(x, y, -z); got != want {
			t.Fatalf("z mirror at (%g,%g,%g): %g != %g", x, y, z, got, want)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	field := NewSeededField(DefaultConfig(), 3)
	first := field.Sample(12.34, 5.67, 0.5)
	for i := 0; i < 10; i++ {
		if got := field.Sample(12.34, 5.67, 0.5); got != first {
			t.Fatalf("call %d returned %g, want %g", i, got, first)
		}
	}

	again := NewSeededField(DefaultConfig(), 3)
	if got := again.Sample(12.34, 5.67, 0.5); got != first {
		t.Fatalf("same seed produced %g, want %g", got, first)
	}

	other := NewSeededField(DefaultConfig(), 4)
	same := true
	for i := 0; i < 20; i++ {
		x := float64(i) * 1.37
		if other.Sample2(x, x/2) != again.Sample2(x, x/2) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should produce different fields")
	}
}

func TestLatticeInitializedOnce(t *testing.T) {
	src := &countingSource{value: 0.25}
	field := NewField(DefaultConfig(), src)
	if got := src.calls.Load(); got != 0 {
		t.Fatalf("lattice filled eagerly: %d draws before first sample", got)
	}

	for i := 0; i < 100; i++ {
		field.Sample(float64(i), float64(i)/3, 0)
	}
	field.WithConfig(Config{Octaves: 2, Falloff: 0.7}).Sample2(1.5, 2.5)

	if got := src.calls.Load(); got != Size {
		t.Fatalf("expected %d draws, got %d", Size, got)
	}
}

func TestLatticeInitializedOnceConcurrently(t *testing.T) {
	src := &countingSource{value: 0.5}
	field := NewField(DefaultConfig(), src)

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				field.Sample2(float64(g), float64(i))
			}
		}(g)
	}
	wg.Wait()

	if got := src.calls.Load(); got != Size {
		t.Fatalf("expected %d draws, got %d", Size, got)
	}
}

func TestZeroLatticeSamplesZero(t *testing.T) {
	field := NewField(DefaultConfig(), &countingSource{})
	for _, p := range [][3]float64{{0, 0, 0}, {1.5, -2.25, 0}, {-40, 17.3, 2}, {1e4, 3, 0}} {
		if got := field.Sample(p[0], p[1], p[2]); got != 0 {
			t.Fatalf("Sample(%v) = %g, want 0", p, got)
		}
	}
}

func TestSingleOctaveMatchesHandInterpolation(t *testing.T) {
	l := &Lattice{}
	l[0] = 0.2
	l[1] = 0.6
	l[yWrap] = 0.4
	l[yWrap+1] = 0.8
	field := NewFieldFromLattice(Config{Octaves: 1, Falloff: 0.5}, l)

	x, y := 0.5, 0.25
	wx := 0.5 * (1 - math.Cos(x*math.Pi))
	wy := 0.5 * (1 - math.Cos(y*math.Pi))
	lower := l[0] + wx*(l[1]-l[0])
	upper := l[yWrap] + wx*(l[yWrap+1]-l[yWrap])
	want := 0.5 * (lower + wy*(upper-lower))

	if got := field.Sample2(x, y); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Sample2(%g,%g) = %g, want %g", x, y, got, want)
	}
}

func TestSingleOctaveAtLatticePoint(t *testing.T) {
	src := &sequenceSource{}
	for i := 0; i < Size; i++ {
		src.values = append(src.values, float64(i)/Size)
	}
	field := NewField(Config{Octaves: 1, Falloff: 0.5}, src)

	idx := 3 + 2<<yWrapBits + 1<<zWrapBits
	want := 0.5 * float64(idx) / Size
	if got := field.Sample(3, 2, 1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Sample(3,2,1) = %g, want %g", got, want)
	}
}

func TestOctavesAccumulateWithFalloff(t *testing.T) {
	l := &Lattice{}
	for i := range l {
		l[i] = 0.5
	}
	cfg := Config{Octaves: 3, Falloff: 0.5}
	field := NewFieldFromLattice(cfg, l)

	// A constant lattice makes every octave return 0.5, scaled by
	// 0.5, 0.25 and 0.125.
	want := 0.5 * (0.5 + 0.25 + 0.125)
	if got := field.Sample(2.3, 7.9, 0.1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Sample = %g, want %g", got, want)
	}

	flat := field.WithConfig(Config{Octaves: 2, Falloff: 1})
	if got := flat.Sample(2.3, 7.9, 0.1); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("falloff 1 sample = %g, want 0.5", got)
	}
}

func TestLatticeAddressWraps(t *testing.T) {
	field := NewSeededField(DefaultConfig(), 11)
	cases := []struct {
		name string
		a, b [3]float64
	}{
		{"x", [3]float64{0.25, 0.5, 0}, [3]float64{Size + 0.25, 0.5, 0}},
		{"y", [3]float64{0.25, 0.5, 0}, [3]float64{0.25, 256.5, 0}},
		{"z", [3]float64{0.25, 0.5, 0.75}, [3]float64{0.25, 0.5, 16.75}},
	}
	for _, tc := range cases {
		a := field.Sample(tc.a[0], tc.a[1], tc.a[2])
		b := field.Sample(tc.b[0], tc.b[1], tc.b[2])
		if a != b {
			t.Fatalf("%s wrap: %g != %g", tc.name, a, b)
		}
	}
}

func TestSampleRange(t *testing.T) {
	field := NewSeededField(DefaultConfig(), 99)
	for i := 0; i < 2000; i++ {
		v := field.Sample2(float64(i)*0.173, float64(i)*0.071)
		if v < 0 || v >= 1 || math.IsNaN(v) {
			t.Fatalf("sample %d out of range: %g", i, v)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	for _, cfg := range []Config{
		{Octaves: 0, Falloff: 0.5},
		{Octaves: 4, Falloff: 0},
		{Octaves: 4, Falloff: 1.5},
		{Octaves: 4, Falloff: math.NaN()},
	} {
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("config %+v accepted", cfg)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("config %+v: unexpected error %v", cfg, err)
		}
	}
}
