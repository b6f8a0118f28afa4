package utils

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise, so a zero delta keeps
// a positive direction.
func Sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
