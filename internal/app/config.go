package app

import (
	"flag"
	"fmt"
	"image/color"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/image/colornames"
)

// Config represents the runtime parameters for the application. Values
// are layered: defaults, then GRIDLIFE_* environment variables, then
// command-line flags.
type Config struct {
	Sim     string `env:"GRIDLIFE_SIM"`
	Pattern string `env:"GRIDLIFE_PATTERN"`
	Scale   int    `env:"GRIDLIFE_SCALE"`
	TPS     int    `env:"GRIDLIFE_TPS"`
	Seed    int64  `env:"GRIDLIFE_SEED"`
	On      string `env:"GRIDLIFE_ON"`
	Off     string `env:"GRIDLIFE_OFF"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, On: "white", Off: "black"}
}

// FromEnv overlays environment variables onto the config.
func (c *Config) FromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to load instead of a random reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.On, "on", c.On, "color of live cells")
	fs.StringVar(&c.Off, "off", c.Off, "color of dead cells")
}

// Colors resolves the configured cell color names.
func (c *Config) Colors() (on, off color.RGBA, err error) {
	on, err = lookupColor(c.On)
	if err != nil {
		return on, off, err
	}
	off, err = lookupColor(c.Off)
	return on, off, err
}

func lookupColor(name string) (color.RGBA, error) {
	col, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return col, nil
}
