package interp

import "math"

// Knots is a chain of non-decreasing float64 values with ordered search.
//
// StrictUpperBound returns the smallest index i with Eval(i) > x, or Len()
// if no value exceeds x. StrictUpperBoundClamped restricts the result to
// [lower, upper]. UpperBorder returns the pair of indices whose knots
// enclose x, both inside [0, Len()-1], together with the linear factor of x
// between them; inputs outside the knot range report the first or last
// segment with a factor outside [0, 1].
type Knots interface {
	Chain[float64]
	StrictUpperBound(x float64) int
	StrictUpperBoundClamped(x float64, lower, upper int) int
	UpperBorder(x float64) (low, high int, factor float64)
}

// Sorted is a validated, non-decreasing knot sequence backed by a slice.
type Sorted []float64

var _ Knots = Sorted{}

// NewSorted validates that the given knots are non-decreasing. It returns a
// NotSortedError naming the offending index otherwise.
func NewSorted(knots []float64) (Sorted, error) {
	if i, ok := isSorted(knots); !ok {
		return nil, NotSortedError{Index: i}
	}
	return Sorted(knots), nil
}

// NewSortedUnchecked wraps the given knots without validating their order.
// Search results on unsorted knots are unspecified.
func NewSortedUnchecked(knots []float64) Sorted {
	return Sorted(knots)
}

func (s Sorted) Eval(i int) float64 { return s[i] }

func (s Sorted) Len() int { return len(s) }

func (s Sorted) StrictUpperBound(x float64) int {
	return s.StrictUpperBoundClamped(x, 0, len(s))
}

func (s Sorted) StrictUpperBoundClamped(x float64, lower, upper int) int {
	// Bisection over [lower, upper]; the window shrinks to the smallest
	// index whose knot exceeds x.
	pointer := lower
	dist := upper - lower
	for dist > 0 {
		step := dist / 2
		sample := pointer + step
		if x >= s[sample] {
			pointer = sample + 1
			dist -= step + 1
		} else {
			dist = step
		}
	}
	return pointer
}

func (s Sorted) UpperBorder(x float64) (int, int, float64) {
	return upperBorder(s, x)
}

// upperBorder derives the enclosing segment from a strict upper bound
// search. Keeping both indices inside [1, len-1] makes the first and last
// segment extrapolate.
func upperBorder(k Knots, x float64) (int, int, float64) {
	high := k.StrictUpperBoundClamped(x, 1, k.Len()-1)
	low := high - 1
	return low, high, linearFactor(k.Eval(low), k.Eval(high), x)
}

// Equidistant is a uniform knot grid: Eval(i) = offset + i·step. Search runs
// in constant time.
type Equidistant struct {
	length int
	step   float64
	offset float64
}

var _ Knots = Equidistant{}

// NewEquidistant returns length knots evenly spaced over [start, end].
// length must be at least 2.
func NewEquidistant(length int, start, end float64) Equidistant {
	return Equidistant{
		length: length,
		step:   (end - start) / float64(length-1),
		offset: start,
	}
}

// NormalizedEquidistant returns length knots evenly spaced over [0, 1].
func NormalizedEquidistant(length int) Equidistant {
	return NewEquidistant(length, 0, 1)
}

// SteppedEquidistant returns length knots starting at start with the given
// distance between consecutive knots.
func SteppedEquidistant(length int, start, step float64) Equidistant {
	return Equidistant{
		length: length,
		step:   step,
		offset: start,
	}
}

func (e Equidistant) Eval(i int) float64 {
	return e.offset + float64(i)*e.step
}

func (e Equidistant) Len() int { return e.length }

// scaled maps x into grid units, such that knot i sits at i.
func (e Equidistant) scaled(x float64) float64 {
	return (x - e.offset) / e.step
}

func (e Equidistant) StrictUpperBound(x float64) int {
	s := math.Floor(e.scaled(x))
	if s < 0 {
		return 0
	}
	return min(int(s)+1, e.length)
}

func (e Equidistant) StrictUpperBoundClamped(x float64, lower, upper int) int {
	return max(min(e.StrictUpperBound(x), upper), lower)
}

func (e Equidistant) UpperBorder(x float64) (int, int, float64) {
	s := e.scaled(x)
	if s < 0 {
		return 0, 1, s
	}
	low := int(math.Floor(s))
	high := int(math.Ceil(s))
	if high >= e.length {
		low = e.length - 2
		high = e.length - 1
		return low, high, s - float64(low)
	}
	return low, high, s - math.Floor(s)
}
