package interp

// BSpline is a piecewise-polynomial curve evaluated with the de Boor
// recursion. For n control elements and a sorted knot chain of length
// n+p-1, the curve has degree p; every point of the curve is influenced by
// exactly p+1 consecutive control elements, selected by the knot span of
// the input.
//
// The knot representation omits the two outermost knots of the textbook
// n+p+1 vector, which never influence the curve. The builders accept the
// textbook vector as well, see NewBSplineBuilder.
type BSpline[T Merger[T]] struct {
	elements Chain[T]
	knots    Knots
	space    Space[T]
	degree   int
}

// NewBSpline returns the B-spline curve with the given control elements and
// knots, allocating a fresh workspace per evaluation. The implied degree
// len(knots)-len(elements)+1 must lie in [1, len(elements)); the knots must
// be non-decreasing.
func NewBSpline[T Merger[T]](elements []T, knots []float64) (BSpline[T], error) {
	if len(elements) < 2 {
		return BSpline[T]{}, TooFewElementsError{Found: len(elements)}
	}
	degree := len(knots) - len(elements) + 1
	if degree < 1 || degree >= len(elements) {
		return BSpline[T]{}, InvalidDegreeError{Degree: degree}
	}
	sorted, err := NewSorted(knots)
	if err != nil {
		return BSpline[T]{}, err
	}
	return NewBSplineUnchecked[T](Elements[T](elements), sorted, NewDynSpace[T](degree+2)), nil
}

// NewBSplineWithSpace is NewBSpline evaluating in the given workspace, which
// must hold at least degree+2 values.
func NewBSplineWithSpace[T Merger[T]](elements []T, knots []float64, space Space[T]) (BSpline[T], error) {
	bs, err := NewBSpline[T](elements, knots)
	if err != nil {
		return BSpline[T]{}, err
	}
	if space.Len() < bs.degree+2 {
		return BSpline[T]{}, TooSmallWorkspaceError{Found: space.Len(), Required: bs.degree + 2}
	}
	bs.space = space
	return bs, nil
}

// NewBSplineUnchecked builds a B-spline from arbitrary chains without
// validating the construction invariants. The caller vouches for sorted
// knots, a degree in [1, elements.Len()), and a workspace of at least
// degree+2 values.
func NewBSplineUnchecked[T Merger[T]](elements Chain[T], knots Knots, space Space[T]) BSpline[T] {
	return BSpline[T]{
		elements: elements,
		knots:    knots,
		space:    space,
		degree:   knots.Len() - elements.Len() + 1,
	}
}

// Degree returns the polynomial degree of each curve piece.
func (bs BSpline[T]) Degree() int { return bs.degree }

func (bs BSpline[T]) Domain() (float64, float64) {
	return bs.knots.Eval(bs.degree - 1), bs.knots.Eval(bs.knots.Len() - bs.degree)
}

func (bs BSpline[T]) Eval(x float64) T {
	p := bs.degree
	// The clamp keeps the span inside the domain, which both guards the
	// factor denominators at repeated border knots and extends the outer
	// pieces polynomially for inputs outside the domain.
	span := bs.knots.StrictUpperBoundClamped(x, p, bs.knots.Len()-p)
	w := bs.space.Workspace()
	for i := 0; i <= p; i++ {
		w[i] = bs.elements.Eval(span - p + i)
	}
	for r := 1; r <= p; r++ {
		for j := 0; j <= p-r; j++ {
			i := j + r + span - p
			factor := linearFactor(bs.knots.Eval(i-1), bs.knots.Eval(i+p-r), x)
			w[j] = w[j].Merge(w[j+1], factor)
		}
	}
	res := w[0]
	bs.space.Release(w)
	return res
}
