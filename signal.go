package interp

// Signal is a pure function from an input to an element. Signals must not
// have interior mutability: evaluating the same input twice yields the same
// output.
type Signal[I, O any] interface {
	Eval(input I) O
}

// Chain is a signal indexed by integers with a known, stable length.
// Eval must be defined for every index in [0, Len()).
type Chain[O any] interface {
	Signal[int, O]
	Len() int
}

// Curve is a signal indexed by a real parameter with a declared domain.
// Evaluation outside the domain is permitted and extrapolates; whether the
// result is meaningful depends on the concrete curve.
type Curve[O any] interface {
	Signal[float64, O]
	Domain() (start, end float64)
}

// Elements adapts a slice to a Chain. The slice is never mutated.
type Elements[O any] []O

var _ Chain[Float] = Elements[Float]{}

func (e Elements[O]) Eval(i int) O { return e[i] }

func (e Elements[O]) Len() int { return len(e) }

// Collect evaluates a chain at every index and returns the results as a
// slice.
func Collect[O any](c Chain[O]) []O {
	out := make([]O, c.Len())
	for i := range out {
		out[i] = c.Eval(i)
	}
	return out
}

// First returns the first element of a chain, if any.
func First[O any](c Chain[O]) (O, bool) {
	if c.Len() == 0 {
		var zero O
		return zero, false
	}
	return c.Eval(0), true
}

// Last returns the last element of a chain, if any.
func Last[O any](c Chain[O]) (O, bool) {
	n := c.Len()
	if n == 0 {
		var zero O
		return zero, false
	}
	return c.Eval(n - 1), true
}
