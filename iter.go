package interp

import "iter"

// Values iterates a chain front to back.
func Values[O any](c Chain[O]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for i := range c.Len() {
			if !yield(c.Eval(i)) {
				return
			}
		}
	}
}

// Backward iterates a chain back to front.
func Backward[O any](c Chain[O]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for i := c.Len() - 1; i >= 0; i-- {
			if !yield(c.Eval(i)) {
				return
			}
		}
	}
}

// Sample maps a signal over a sequence of inputs, lazily producing one
// output per input.
func Sample[I, O any](s Signal[I, O], inputs iter.Seq[I]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for x := range inputs {
			if !yield(s.Eval(x)) {
				return
			}
		}
	}
}

// Take samples a curve at n equidistant parameters spanning its domain,
// borders included. n must be at least 2.
func Take[O any](c Curve[O], n int) iter.Seq[O] {
	start, end := c.Domain()
	return Sample[float64, O](c, NewStepper(n, start, end).Values())
}

// Stepper iterates an equidistant grid of float64 values.
type Stepper struct {
	grid Equidistant
}

// NewStepper returns a stepper yielding steps values evenly spaced over
// [start, end], borders included. steps must be at least 2.
func NewStepper(steps int, start, end float64) Stepper {
	return Stepper{grid: NewEquidistant(steps, start, end)}
}

// NormalizedStepper returns a stepper yielding steps values evenly spaced
// over [0, 1].
func NormalizedStepper(steps int) Stepper {
	return Stepper{grid: NormalizedEquidistant(steps)}
}

// Len returns the number of values the stepper yields.
func (s Stepper) Len() int { return s.grid.Len() }

// Values iterates the grid in ascending order.
func (s Stepper) Values() iter.Seq[float64] {
	return Values[float64](s.grid)
}
