package elementary

import "testing"

func TestDecodeKnownRules(t *testing.T) {
	cases := map[int]RuleTable{
		0:   {0, 0, 0, 0, 0, 0, 0, 0},
		255: {1, 1, 1, 1, 1, 1, 1, 1},
		30:  {0, 0, 0, 1, 1, 1, 1, 0},
		110: {0, 1, 1, 0, 1, 1, 1, 0},
		1:   {0, 0, 0, 0, 0, 0, 0, 1},
		128: {1, 0, 0, 0, 0, 0, 0, 0},
	}
	for rule, want := range cases {
		if got := Decode(rule); got != want {
			t.Fatalf("Decode(%d) = %v, want %v", rule, got, want)
		}
	}
}

func TestDecodeRoundTripsEveryRule(t *testing.T) {
	for rule := 0; rule <= 255; rule++ {
		a, b := Decode(rule), Decode(rule)
		if a != b {
			t.Fatalf("Decode(%d) not deterministic", rule)
		}
		if a.Number() != rule {
			t.Fatalf("Decode(%d).Number() = %d", rule, a.Number())
		}
	}
}

func TestNextIndexesDescendingPatterns(t *testing.T) {
	table := Decode(30)
	patterns := [8][3]uint8{
		{1, 1, 1}, {1, 1, 0}, {1, 0, 1}, {1, 0, 0},
		{0, 1, 1}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0},
	}
	for i, p := range patterns {
		if got := table.Next(p[0], p[1], p[2]); got != table[i] {
			t.Fatalf("pattern %v selected %d, want table[%d]=%d", p, got, i, table[i])
		}
	}
}

func TestDecodePanicsOutOfRange(t *testing.T) {
	for _, rule := range []int{-1, 256} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Decode(%d) did not panic", rule)
				}
			}()
			Decode(rule)
		}()
	}
}

func TestRuleTableString(t *testing.T) {
	if got := Decode(30).String(); got != "00011110" {
		t.Fatalf("String() = %q", got)
	}
}
