package interp

// lerp computes a + t·(b-a). Unlike the midpoint form it is exact at t == 0
// and t == 1 and extends linearly outside [0, 1].
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// linearFactor computes (x-a)/(b-a), the position of x between a and b.
// Coinciding borders return 0 so that merging with the factor stays well
// defined on zero-width intervals.
func linearFactor(a, b, x float64) float64 {
	d := b - a
	if d == 0 {
		return 0
	}
	return (x - a) / d
}

func clampFloat(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// triangleFold performs steps rounds of the de Casteljau style fold
// w[i] = f(w[i], w[i+1]) in place. After round k, the first len(w)-k entries
// are valid.
func triangleFold[T any](w []T, f func(a, b T) T, steps int) {
	for k := 1; k <= steps; k++ {
		for i := range len(w) - k {
			w[i] = f(w[i], w[i+1])
		}
	}
}

// isSorted reports the first index at which the slice decreases, if any.
func isSorted(xs []float64) (int, bool) {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return i, false
		}
	}
	return 0, true
}
