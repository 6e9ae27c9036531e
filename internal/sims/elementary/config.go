package elementary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrRule reports a rule number outside [0, 255].
	ErrRule = errors.New("the rule number must be between 0 and 255")
	// ErrSteps reports a non-positive number of generations.
	ErrSteps = errors.New("steps must be a positive number")
	// ErrCellSize reports a non-positive cell size.
	ErrCellSize = errors.New("cell size must be a positive number")
	// ErrWidth reports a display too narrow to hold a single cell.
	ErrWidth = errors.New("available width is smaller than one cell")
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule     int
	Steps    int
	CellSize int
	Seeding  SeedPolicy

	// Seed initializes the random stream used by Random seeding.
	Seed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 30, Steps: 48, CellSize: 10, Seeding: FixedCenter, Seed: 42}
}

// Validate reports the first parameter that the generator would reject.
func (c Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps %d: %w", c.Steps, ErrSteps)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d: %w", c.CellSize, ErrCellSize)
	}
	if c.Rule < 0 || c.Rule > 255 {
		return fmt.Errorf("rule %d: %w", c.Rule, ErrRule)
	}
	if c.Seeding != FixedCenter && c.Seeding != Random {
		return fmt.Errorf("unknown seed policy %d", uint8(c.Seeding))
	}
	return nil
}

// FromMap populates a Config from a string map. Unlike flag parsing it
// refuses malformed values instead of keeping the defaults.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	for k, v := range cfg {
		v = strings.TrimSpace(v)
		var err error
		switch k {
		case "rule":
			c.Rule, err = strconv.Atoi(v)
		case "steps":
			c.Steps, err = strconv.Atoi(v)
		case "cell":
			c.CellSize, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "seeding":
			c.Seeding, err = ParseSeedPolicy(v)
		case "random":
			var random bool
			random, err = strconv.ParseBool(v)
			if random {
				c.Seeding = Random
			} else {
				c.Seeding = FixedCenter
			}
		default:
			return c, fmt.Errorf("unknown parameter %q", k)
		}
		if err != nil {
			return c, fmt.Errorf("parameter %q: %w", k, err)
		}
	}
	return c, c.Validate()
}

// ParsePairs splits "k=v,k=v" into a map for FromMap.
func ParsePairs(s string) (map[string]string, error) {
	out := map[string]string{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		out[strings.TrimSpace(k)] = v
	}
	return out, nil
}
