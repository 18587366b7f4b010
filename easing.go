package interp

// Easing remaps the segment-local factor of a linear interpolation. Easing
// functions conventionally map [0, 1] onto [0, 1] with f(0) = 0 and
// f(1) = 1; the library does not enforce this, but an easing violating it
// no longer passes through its elements at the knots. Extrapolated factors
// outside [0, 1] are passed through unchanged to the easing.
type Easing func(t float64) float64

// Identity is the default easing, leaving the factor untouched.
func Identity(t float64) float64 { return t }

// Flip mirrors an easing graph on the x axis: the result starts where f
// ends.
func Flip(f Easing) Easing {
	return func(t float64) float64 { return 1 - f(1-t) }
}

// SmoothStart, also known as ease-in, returns the easing t^n.
func SmoothStart(n int) Easing {
	return func(t float64) float64 {
		mul := t
		for range n - 1 {
			mul *= t
		}
		return mul
	}
}

// SmoothEnd, also known as ease-out, returns the easing 1-(1-t)^n.
func SmoothEnd(n int) Easing {
	return Flip(SmoothStart(n))
}

// Smoothstep is the cubic hermite easing 3t²-2t³.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Smootherstep is the quintic variant of Smoothstep, 6t⁵-15t⁴+10t³, with
// zero second derivatives at the borders.
func Smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Plateau returns an easing with constant plateaus at both ends. A strength
// of 0 behaves like Smoothstep over the whole interval; a strength of 1
// returns only 0 or 1, whichever is nearer.
func Plateau(strength float64) Easing {
	lo := strength / 2
	hi := 1 - strength/2
	return func(t float64) float64 {
		return Smoothstep(overClamp(t, lo, hi))
	}
}

// overClamp clamps like clamp but too eagerly: values inside [lo, hi] are
// stretched to fill [0, 1], everything else saturates.
func overClamp(t, lo, hi float64) float64 {
	switch {
	case t < lo:
		return 0
	case t > hi:
		return 1
	default:
		return (t - lo) / (hi - lo)
	}
}
