package core

// Size describes the dimensions of a grid or canvas.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
