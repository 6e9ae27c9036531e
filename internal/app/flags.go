package app

import (
	"flag"

	"wolfram-ca/internal/sims/elementary"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Rule     int
	Steps    int
	CellSize int
	Random   bool
	Seed     int64

	Width  int
	Height int
	Screen int
}

// NewConfig returns a Config populated with the viewer defaults.
func NewConfig() *Config {
	d := elementary.DefaultConfig()
	return &Config{
		Rule:     d.Rule,
		Steps:    d.Steps,
		CellSize: d.CellSize,
		Seed:     d.Seed,
		Width:    987,
		Height:   545,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule number (0-255)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of generations")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.BoolVar(&c.Random, "random", c.Random, "randomize the first generation instead of one cell in the middle")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random first generations")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.Screen, "screen", c.Screen, "screen width used by random seeding (0 = detect)")
}

// Automaton converts the flags into generator parameters.
func (c *Config) Automaton() elementary.Config {
	cfg := elementary.Config{
		Rule:     c.Rule,
		Steps:    c.Steps,
		CellSize: c.CellSize,
		Seeding:  elementary.FixedCenter,
		Seed:     c.Seed,
	}
	if c.Random {
		cfg.Seeding = elementary.Random
	}
	return cfg
}

// Display returns the display bounds, substituting screen when the flag was
// left at zero.
func (c *Config) Display(screen int) elementary.Display {
	if c.Screen > 0 {
		screen = c.Screen
	}
	if screen <= 0 {
		screen = c.Width
	}
	return elementary.Display{ViewportWidth: c.Width, ScreenWidth: screen}
}
