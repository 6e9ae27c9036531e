package elementary

import (
	"slices"
	"testing"

	"wolfram-ca/internal/core"
)

func TestSingleStepKeepsSeedRow(t *testing.T) {
	for _, rule := range []int{0, 30, 90, 255} {
		g := Generate(Decode(rule), 1, 10, FixedCenter, nil)
		if g.H != 1 {
			t.Fatalf("rule %d: rows = %d, want 1", rule, g.H)
		}
		want := []uint8{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}
		if !slices.Equal(g.Row(0), want) {
			t.Fatalf("rule %d: row 0 = %v, want %v", rule, g.Row(0), want)
		}
	}
}

func TestCenterIndex(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 5: 3, 10: 5, 11: 6, 192: 96}
	for cols, want := range cases {
		if got := CenterIndex(cols); got != want {
			t.Fatalf("CenterIndex(%d) = %d, want %d", cols, got, want)
		}
	}
}

func TestFixedCenterSeedsExactlyOneCell(t *testing.T) {
	for _, cols := range []int{1, 2, 3, 10, 11, 80} {
		g := Generate(Decode(30), 1, cols, FixedCenter, nil)
		if n := g.Alive(0); n != 1 {
			t.Fatalf("cols=%d: %d live cells in row 0, want 1", cols, n)
		}
		if g.At(CenterIndex(cols), 0) != 1 {
			t.Fatalf("cols=%d: center cell not alive", cols)
		}
	}
}

func TestRandomSeedReproducible(t *testing.T) {
	a := Generate(Decode(90), 20, 64, Random, core.NewRNG(7))
	b := Generate(Decode(90), 20, 64, Random, core.NewRNG(7))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}
	c := Generate(Decode(90), 20, 64, Random, core.NewRNG(8))
	if slices.Equal(a.Row(0), c.Row(0)) {
		t.Fatal("different seeds produced identical first rows")
	}
}

func TestRandomSeedingRequiresSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without random source")
		}
	}()
	Generate(Decode(30), 2, 8, Random, nil)
}

func TestRule30FourByFive(t *testing.T) {
	g := Generate(Decode(30), 4, 5, FixedCenter, nil)
	want := [][]uint8{
		{0, 0, 0, 1, 0},
		{0, 0, 1, 1, 1},
		{1, 1, 1, 0, 0},
		{1, 0, 0, 1, 1},
	}
	for y, row := range want {
		if !slices.Equal(g.Row(y), row) {
			t.Fatalf("row %d = %v, want %v", y, g.Row(y), row)
		}
	}
}

func TestNeighborsWrapAround(t *testing.T) {
	// Rule 170 copies the right neighbor, rule 240 the left one, so both
	// shift the row by one column and expose the boundary handling.
	left := Generate(Decode(170), 3, 4, FixedCenter, nil)
	if !slices.Equal(left.Row(1), []uint8{0, 1, 0, 0}) || !slices.Equal(left.Row(2), []uint8{1, 0, 0, 0}) {
		t.Fatalf("rule 170 history %v", left.Cells())
	}
	right := Generate(Decode(240), 3, 4, FixedCenter, nil)
	if !slices.Equal(right.Row(1), []uint8{0, 0, 0, 1}) || !slices.Equal(right.Row(2), []uint8{1, 0, 0, 0}) {
		t.Fatalf("rule 240 history %v", right.Cells())
	}
}

func TestEveryCellFollowsPriorRow(t *testing.T) {
	table := Decode(110)
	g := Generate(table, 30, 17, Random, core.NewRNG(3))
	w := g.W
	for y := 1; y < g.H; y++ {
		for x := 0; x < w; x++ {
			want := table.Next(g.At((x+w-1)%w, y-1), g.At(x, y-1), g.At((x+1)%w, y-1))
			if g.At(x, y) != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, g.At(x, y), want)
			}
		}
	}
}

func TestGeneratePanicsOnInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Generate(steps=%d, cols=%d) did not panic", dims[0], dims[1])
				}
			}()
			Generate(Decode(30), dims[0], dims[1], FixedCenter, nil)
		}()
	}
}

func TestDensity(t *testing.T) {
	g := Generate(Decode(30), 4, 5, FixedCenter, nil)
	want := []float64{0.2, 0.6, 0.6, 0.6}
	got := Density(g)
	for i := range want {
		if d := got[i] - want[i]; d > 1e-9 || d < -1e-9 {
			t.Fatalf("density row %d = %v, want %v", i, got[i], want[i])
		}
	}
}
