package interp

// Linear interpolates piecewise-linearly between consecutive elements. Each
// element sits at the knot with the same index; between two knots the
// enclosing elements are merged by the eased local factor. Inputs outside
// the knot range extend the first or last segment linearly.
type Linear[T Merger[T]] struct {
	knots    Knots
	elements Chain[T]
	easing   Easing
}

// NewLinear returns the piecewise-linear curve through the given elements at
// the given knots. It requires at least two elements, exactly one knot per
// element, and non-decreasing knots.
func NewLinear[T Merger[T]](elements []T, knots []float64) (Linear[T], error) {
	if len(elements) < 2 {
		return Linear[T]{}, TooFewElementsError{Found: len(elements)}
	}
	if len(knots) != len(elements) {
		return Linear[T]{}, KnotElementInequalityError{Elements: len(elements), Knots: len(knots)}
	}
	sorted, err := NewSorted(knots)
	if err != nil {
		return Linear[T]{}, err
	}
	return NewLinearUnchecked[T](Elements[T](elements), sorted), nil
}

// NewLinearEquidistant returns the piecewise-linear curve through the given
// elements at evenly spaced knots over [start, end].
func NewLinearEquidistant[T Merger[T]](elements []T, start, end float64) (Linear[T], error) {
	if len(elements) < 2 {
		return Linear[T]{}, TooFewElementsError{Found: len(elements)}
	}
	return NewLinearUnchecked[T](Elements[T](elements), NewEquidistant(len(elements), start, end)), nil
}

// NewLinearUnchecked builds a linear curve from arbitrary chains without
// validating the construction invariants. The caller vouches that both
// chains have equal length of at least two and that the knots are sorted.
func NewLinearUnchecked[T Merger[T]](elements Chain[T], knots Knots) Linear[T] {
	return Linear[T]{
		knots:    knots,
		elements: elements,
		easing:   Identity,
	}
}

// WithEasing returns a copy of the curve applying the given easing to every
// segment-local factor.
func (li Linear[T]) WithEasing(easing Easing) Linear[T] {
	li.easing = easing
	return li
}

func (li Linear[T]) Eval(x float64) T {
	low, high, factor := li.knots.UpperBorder(x)
	return li.elements.Eval(low).Merge(li.elements.Eval(high), li.easing(factor))
}

func (li Linear[T]) Domain() (float64, float64) {
	return li.knots.Eval(0), li.knots.Eval(li.knots.Len() - 1)
}
