package elementary

import (
	"fmt"

	"wolfram-ca/internal/core"
)

// Generate builds the full history of an elementary automaton: steps rows of
// cols cells. Row 0 is seeded according to policy and every later row is
// derived from the one above it through table, with the row treated as a
// ring so the first and last columns are neighbors. rng is only consulted
// for Random seeding. Generate panics when steps or cols is below one.
func Generate(table RuleTable, steps, cols int, policy SeedPolicy, rng *core.RNG) *core.Grid {
	if steps < 1 {
		panic(fmt.Sprintf("elementary.Generate: steps %d < 1", steps))
	}
	if cols < 1 {
		panic(fmt.Sprintf("elementary.Generate: cols %d < 1", cols))
	}
	g := core.NewGrid(cols, steps)
	seedRow(g.Row(0), policy, rng)
	for y := 1; y < steps; y++ {
		advance(table, g.Row(y-1), g.Row(y))
	}
	return g
}

// advance fills next from prev. next must not alias prev.
func advance(table RuleTable, prev, next []uint8) {
	w := len(prev)
	for x := 0; x < w; x++ {
		left := prev[(x-1+w)%w]
		center := prev[x]
		right := prev[(x+1)%w]
		next[x] = table.Next(left, center, right)
	}
}

// Density returns the fraction of live cells in each row of g.
func Density(g *core.Grid) []float64 {
	out := make([]float64, g.H)
	for y := range out {
		out[y] = float64(g.Alive(y)) / float64(g.W)
	}
	return out
}
