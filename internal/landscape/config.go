package landscape

import (
	"strconv"

	"github.com/pkg/errors"

	"cubescape/internal/noise"
)

// ErrInvalidConfig is returned by Config.Validate for unusable grid settings.
var ErrInvalidConfig = errors.New("invalid landscape config")

// maxPaletteSize leaves room for the touched-cell color in a uint8 display
// buffer.
const maxPaletteSize = 255

// Config controls the landscape grid, noise detail and coloring.
type Config struct {
	CubeWidth  float64
	CubeAmount int

	// Seed pins the lattice and palette; 0 draws a fresh seed on every reset.
	Seed int64

	Noise noise.Config

	// Palettes are the candidates a palette is chosen from on reset.
	Palettes []Palette
	// Palette pins the palette index; a negative value picks one at random.
	Palette int
	// ColorOffset shifts the noise sampled for color buckets.
	ColorOffset float64
}

// DefaultConfig returns the standard 101x101 landscape with a fresh seed per
// run.
func DefaultConfig() Config {
	return Config{
		CubeWidth:  1,
		CubeAmount: 100,
		Noise:      noise.DefaultConfig(),
		Palettes:   DefaultPalettes(),
		Palette:    -1,
	}
}

// Side returns the number of cells along each edge of the grid.
func (c Config) Side() int { return c.CubeAmount + 1 }

// Validate reports configuration errors that would otherwise surface as
// broken buckets or NaN heights.
func (c Config) Validate() error {
	if !(c.CubeWidth > 0) {
		return errors.Wrapf(ErrInvalidConfig, "cube width must be positive, got %g", c.CubeWidth)
	}
	if c.CubeAmount < 0 {
		return errors.Wrapf(ErrInvalidConfig, "cube amount must be >= 0, got %d", c.CubeAmount)
	}
	if err := c.Noise.Validate(); err != nil {
		return err
	}
	if len(c.Palettes) == 0 {
		return errors.Wrap(ErrEmptyPalette, "no candidate palettes")
	}
	for i, p := range c.Palettes {
		if len(p.Colors) == 0 {
			return errors.Wrapf(ErrEmptyPalette, "palette %d (%q)", i, p.Name)
		}
		if len(p.Colors) > maxPaletteSize {
			return errors.Wrapf(ErrInvalidConfig, "palette %q has %d colors, max %d", p.Name, len(p.Colors), maxPaletteSize)
		}
	}
	if c.Palette >= len(c.Palettes) {
		return errors.Wrapf(ErrInvalidConfig, "palette index %d out of range [0,%d)", c.Palette, len(c.Palettes))
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cube_width"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CubeWidth = parsed
		}
	}
	if v, ok := cfg["cube_amount"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CubeAmount = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["falloff"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Noise.Falloff = parsed
		}
	}
	if v, ok := cfg["palette"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed < len(c.Palettes) {
			c.Palette = parsed
		} else if idx := paletteIndex(c.Palettes, v); idx >= 0 {
			c.Palette = idx
		}
	}
	if v, ok := cfg["color_offset"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.ColorOffset = parsed
		}
	}
	return c
}
