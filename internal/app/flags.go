package app

import (
	"flag"
	"strconv"

	"cubescape/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	TPS      int
	FPS      int
	Seed     int64
	LogLevel string
	Set      core.KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "landscape", Width: 960, Height: 640, TPS: 60, FPS: 60, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.FPS, "fps", c.FPS, "animation frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the noise lattice and palette (0 draws a fresh one each run)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// SimConfig returns the factory config map. A non-zero -seed overrides any
// seed given with -set.
func (c *Config) SimConfig() map[string]string {
	m := c.Set.Map()
	if c.Seed != 0 {
		m["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return m
}
