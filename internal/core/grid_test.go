package core

import (
	"slices"
	"testing"
)

func TestGridRowsAndWrap(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(3, 1, 1)
	if !slices.Equal(g.Row(1), []uint8{0, 0, 0, 1}) {
		t.Fatalf("row 1 = %v", g.Row(1))
	}
	if g.At(g.WrapX(-1), 1) != 1 {
		t.Fatal("column -1 should wrap to the last column")
	}
	if g.WrapX(4) != 0 {
		t.Fatalf("WrapX(4) = %d", g.WrapX(4))
	}
	if g.Alive(1) != 1 || g.Alive(0) != 0 {
		t.Fatal("alive counts wrong")
	}
	clone := g.Clone()
	clone.Set(0, 0, 1)
	if g.At(0, 0) != 0 {
		t.Fatal("clone shares storage")
	}
}

func TestRowCapacityIsBounded(t *testing.T) {
	g := NewGrid(2, 2)
	row := append(g.Row(0), 1)
	row[0] = 1
	if g.At(0, 1) != 0 {
		t.Fatal("append through Row overwrote the next row")
	}
}

func TestNewGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewGrid(0, 1)
}

func TestRNGDeterministic(t *testing.T) {
	a, b := make([]uint8, 32), make([]uint8, 32)
	NewRNG(5).FillBinary(a)
	NewRNG(5).FillBinary(b)
	if !slices.Equal(a, b) {
		t.Fatal("equal seeds diverged")
	}
	for _, v := range a {
		if v > 1 {
			t.Fatalf("non-binary value %d", v)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, -4) != 0 {
		t.Fatal("Clamp bounds wrong")
	}
}
