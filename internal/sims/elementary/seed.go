package elementary

import (
	"fmt"
	"strings"

	"wolfram-ca/internal/core"
)

// SeedPolicy selects how generation 0 is initialized.
type SeedPolicy uint8

const (
	// FixedCenter starts with a single live cell near the middle of the row.
	FixedCenter SeedPolicy = iota
	// Random sets every cell of the first row with an unbiased coin flip.
	Random
)

func (p SeedPolicy) String() string {
	switch p {
	case FixedCenter:
		return "center"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("SeedPolicy(%d)", uint8(p))
	}
}

// ParseSeedPolicy accepts the names produced by SeedPolicy.String.
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "middle", "fixed":
		return FixedCenter, nil
	case "random", "randomize":
		return Random, nil
	}
	return 0, fmt.Errorf("unknown seed policy %q", s)
}

// CenterIndex returns the column that FixedCenter seeding brings to life.
// Even widths use cols/2 and odd widths use (cols+1)/2, which sits one cell
// right of the true midpoint. A single-column row wraps back to column 0.
func CenterIndex(cols int) int {
	if cols%2 == 0 {
		return cols / 2
	}
	return ((cols + 1) / 2) % cols
}

// seedRow writes generation 0 into row according to policy.
func seedRow(row []uint8, policy SeedPolicy, rng *core.RNG) {
	for i := range row {
		row[i] = 0
	}
	switch policy {
	case FixedCenter:
		row[CenterIndex(len(row))] = 1
	case Random:
		if rng == nil {
			panic("elementary: random seeding requires a random source")
		}
		rng.FillBinary(row)
	default:
		panic(fmt.Sprintf("elementary: unknown seed policy %d", uint8(policy)))
	}
}
