package interp

import "errors"

var errElementsFirst = errors.New("interp: builder misuse: set elements before knots")

// LinearBuilder constructs a Linear curve in stages: elements, then knots
// (explicit or equidistant), then options. Every stage validates its input;
// the first error poisons the builder and is reported by Build.
type LinearBuilder[T Merger[T]] struct {
	elements []T
	knots    Knots
	easing   Easing
	err      error
}

// NewLinearBuilder starts building a piecewise-linear curve.
func NewLinearBuilder[T Merger[T]]() *LinearBuilder[T] {
	return &LinearBuilder[T]{easing: Identity}
}

func (b *LinearBuilder[T]) fail(err error) *LinearBuilder[T] {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Elements sets the control elements, one per knot.
func (b *LinearBuilder[T]) Elements(elements []T) *LinearBuilder[T] {
	if len(elements) < 2 {
		return b.fail(TooFewElementsError{Found: len(elements)})
	}
	b.elements = elements
	return b
}

// Knots sets one knot per element. Knots must be non-decreasing.
func (b *LinearBuilder[T]) Knots(knots []float64) *LinearBuilder[T] {
	if b.err != nil {
		return b
	}
	if b.elements == nil {
		return b.fail(errElementsFirst)
	}
	if len(knots) != len(b.elements) {
		return b.fail(KnotElementInequalityError{Elements: len(b.elements), Knots: len(knots)})
	}
	sorted, err := NewSorted(knots)
	if err != nil {
		return b.fail(err)
	}
	b.knots = sorted
	return b
}

// Equidistant distributes the knots evenly; pick the domain with one of the
// returned builder's methods.
func (b *LinearBuilder[T]) Equidistant() *LinearEquidistantBuilder[T] {
	if b.err == nil && b.elements == nil {
		b.fail(errElementsFirst)
	}
	return &LinearEquidistantBuilder[T]{parent: b}
}

// Easing applies an easing function to every segment-local factor.
func (b *LinearBuilder[T]) Easing(easing Easing) *LinearBuilder[T] {
	b.easing = easing
	return b
}

// Build returns the finished curve or the first error any stage produced.
func (b *LinearBuilder[T]) Build() (Linear[T], error) {
	if b.err != nil {
		return Linear[T]{}, b.err
	}
	if b.knots == nil {
		b.knots = NormalizedEquidistant(len(b.elements))
	}
	return NewLinearUnchecked[T](Elements[T](b.elements), b.knots).WithEasing(b.easing), nil
}

// LinearEquidistantBuilder is the knot-domain stage of a LinearBuilder with
// equidistant knots.
type LinearEquidistantBuilder[T Merger[T]] struct {
	parent *LinearBuilder[T]
}

// Normalized spreads the knots over [0, 1].
func (b *LinearEquidistantBuilder[T]) Normalized() *LinearBuilder[T] {
	return b.Domain(0, 1)
}

// Domain spreads the knots over [start, end].
func (b *LinearEquidistantBuilder[T]) Domain(start, end float64) *LinearBuilder[T] {
	if b.parent.err == nil {
		b.parent.knots = NewEquidistant(len(b.parent.elements), start, end)
	}
	return b.parent
}

// Distance places the knots starting at start with the given spacing.
func (b *LinearEquidistantBuilder[T]) Distance(start, step float64) *LinearBuilder[T] {
	if b.parent.err == nil {
		b.parent.knots = SteppedEquidistant(len(b.parent.elements), start, step)
	}
	return b.parent
}

// WeightedLinearBuilder constructs the rational variant of a Linear curve:
// elements carry weights, interpolation happens in homogeneous coordinates,
// and the built curve projects the weight back out.
type WeightedLinearBuilder[E Vector[E]] struct {
	pairs  []WeightedElement[E]
	knots  Knots
	easing Easing
	err    error
}

// NewWeightedLinearBuilder starts building a weighted piecewise-linear
// curve.
func NewWeightedLinearBuilder[E Vector[E]]() *WeightedLinearBuilder[E] {
	return &WeightedLinearBuilder[E]{easing: Identity}
}

func (b *WeightedLinearBuilder[E]) fail(err error) *WeightedLinearBuilder[E] {
	if b.err == nil {
		b.err = err
	}
	return b
}

// ElementsWithWeights sets the control elements and their weights. A weight
// of zero turns the element into a point at infinity; evaluating near it
// produces non-finite values.
func (b *WeightedLinearBuilder[E]) ElementsWithWeights(pairs []WeightedElement[E]) *WeightedLinearBuilder[E] {
	if len(pairs) < 2 {
		return b.fail(TooFewElementsError{Found: len(pairs)})
	}
	b.pairs = pairs
	return b
}

// Knots sets one knot per element. Knots must be non-decreasing.
func (b *WeightedLinearBuilder[E]) Knots(knots []float64) *WeightedLinearBuilder[E] {
	if b.err != nil {
		return b
	}
	if b.pairs == nil {
		return b.fail(errElementsFirst)
	}
	if len(knots) != len(b.pairs) {
		return b.fail(KnotElementInequalityError{Elements: len(b.pairs), Knots: len(knots)})
	}
	sorted, err := NewSorted(knots)
	if err != nil {
		return b.fail(err)
	}
	b.knots = sorted
	return b
}

// Equidistant distributes the knots evenly; pick the domain with one of the
// returned builder's methods.
func (b *WeightedLinearBuilder[E]) Equidistant() *WeightedLinearEquidistantBuilder[E] {
	if b.err == nil && b.pairs == nil {
		b.fail(errElementsFirst)
	}
	return &WeightedLinearEquidistantBuilder[E]{parent: b}
}

// Easing applies an easing function to every segment-local factor.
func (b *WeightedLinearBuilder[E]) Easing(easing Easing) *WeightedLinearBuilder[E] {
	b.easing = easing
	return b
}

// Build returns the finished curve or the first error any stage produced.
func (b *WeightedLinearBuilder[E]) Build() (Weighted[E], error) {
	if b.err != nil {
		return Weighted[E]{}, b.err
	}
	if b.knots == nil {
		b.knots = NormalizedEquidistant(len(b.pairs))
	}
	lifted := NewWeights(Elements[WeightedElement[E]](b.pairs))
	inner := NewLinearUnchecked[Homogeneous[E]](lifted, b.knots).WithEasing(b.easing)
	return NewWeighted[E](inner), nil
}

// WeightedLinearEquidistantBuilder is the knot-domain stage of a
// WeightedLinearBuilder with equidistant knots.
type WeightedLinearEquidistantBuilder[E Vector[E]] struct {
	parent *WeightedLinearBuilder[E]
}

// Normalized spreads the knots over [0, 1].
func (b *WeightedLinearEquidistantBuilder[E]) Normalized() *WeightedLinearBuilder[E] {
	return b.Domain(0, 1)
}

// Domain spreads the knots over [start, end].
func (b *WeightedLinearEquidistantBuilder[E]) Domain(start, end float64) *WeightedLinearBuilder[E] {
	if b.parent.err == nil {
		b.parent.knots = NewEquidistant(len(b.parent.pairs), start, end)
	}
	return b.parent
}

// Distance places the knots starting at start with the given spacing.
func (b *WeightedLinearEquidistantBuilder[E]) Distance(start, step float64) *WeightedLinearBuilder[E] {
	if b.parent.err == nil {
		b.parent.knots = SteppedEquidistant(len(b.parent.pairs), start, step)
	}
	return b.parent
}
