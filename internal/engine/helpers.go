package engine

// scale multiplies v by num/den and floors the result for non-negative v.
// Integer arithmetic keeps 1.2x and 1.5x multipliers exact.
func scale(v, num, den int) int {
	return v * num / den
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
