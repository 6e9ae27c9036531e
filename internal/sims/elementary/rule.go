package elementary

import "fmt"

// RuleTable maps each of the eight (left, center, right) neighborhoods to the
// next state of the center cell. Index 0 is pattern 111 and index 7 is 000.
type RuleTable [8]uint8

// Decode expands a Wolfram rule number into its transition table. The binary
// digits of rule are collected least significant first and then reversed, so
// the most significant bit lands at index 0. Decode panics when rule falls
// outside [0, 255].
func Decode(rule int) RuleTable {
	if rule < 0 || rule > 255 {
		panic(fmt.Sprintf("elementary.Decode: rule %d out of range [0,255]", rule))
	}
	var lsb [8]uint8
	for i := 0; rule > 0 && i < len(lsb); i++ {
		lsb[i] = uint8(rule % 2)
		rule /= 2
	}
	var t RuleTable
	for j := range t {
		t[j] = lsb[len(lsb)-1-j]
	}
	return t
}

// Number re-encodes the table as a rule number.
func (t RuleTable) Number() int {
	n := 0
	for _, bit := range t {
		n = n<<1 | int(bit)
	}
	return n
}

// Next returns the state selected by the neighborhood (left, center, right).
// Each argument must be 0 or 1.
func (t RuleTable) Next(left, center, right uint8) uint8 {
	pattern := left<<2 | center<<1 | right
	return t[7-pattern]
}

// String renders the table as eight binary digits, index 0 first.
func (t RuleTable) String() string {
	b := make([]byte, len(t))
	for i, bit := range t {
		b[i] = '0' + bit
	}
	return string(b)
}
