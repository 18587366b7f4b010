package interp

// openKnots validates a knot vector in the open representation (length
// n+p-1) for n elements.
func openKnots(n int, knots []float64) (Knots, error) {
	degree := len(knots) - n + 1
	if degree < 1 || degree >= n {
		return nil, InvalidDegreeError{Degree: degree}
	}
	return NewSorted(knots)
}

// clampedKnots pads n-p+1 inner knots with p-1 repetitions of the border
// knots on each side, clamping the curve to its first and last element.
func clampedKnots(n int, inner []float64) (Knots, error) {
	degree := n + 1 - len(inner)
	if degree < 1 || degree >= n {
		return nil, InvalidDegreeError{Degree: degree}
	}
	sorted, err := NewSorted(inner)
	if err != nil {
		return nil, err
	}
	return NewBorderBuffer(sorted, degree-1), nil
}

// legacyKnots accepts the textbook knot vector of length n+p+1 and trims
// the two outermost knots, which never influence the curve.
func legacyKnots(n int, knots []float64) (Knots, error) {
	if len(knots) < 4 {
		return nil, TooFewKnotsError{Found: len(knots)}
	}
	degree := len(knots) - n - 1
	if degree < 1 || degree >= n {
		return nil, InvalidDegreeError{Degree: degree}
	}
	sorted, err := NewSorted(knots)
	if err != nil {
		return nil, err
	}
	return NewBorderDeletion(sorted)
}

// BSplineBuilder constructs a BSpline curve in stages: elements, then knots
// (one of three explicit representations, or equidistant), then options.
// Every stage validates its input; the first error poisons the builder and
// is reported by Build.
type BSplineBuilder[T Merger[T]] struct {
	elements []T
	knots    Knots
	space    Space[T]
	pooled   bool
	clamped  bool
	err      error
}

// NewBSplineBuilder starts building a B-spline curve.
func NewBSplineBuilder[T Merger[T]]() *BSplineBuilder[T] {
	return &BSplineBuilder[T]{}
}

func (b *BSplineBuilder[T]) fail(err error) *BSplineBuilder[T] {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Elements sets the control elements.
func (b *BSplineBuilder[T]) Elements(elements []T) *BSplineBuilder[T] {
	if len(elements) < 2 {
		return b.fail(TooFewElementsError{Found: len(elements)})
	}
	b.elements = elements
	return b
}

// Clamped makes the equidistant knot stage synthesize a clamped curve, one
// interpolating its first and last element. It has no effect on the
// explicit knot methods, which encode the representation in their name.
func (b *BSplineBuilder[T]) Clamped() *BSplineBuilder[T] {
	b.clamped = true
	return b
}

func (b *BSplineBuilder[T]) setKnots(knots Knots, err error) *BSplineBuilder[T] {
	if b.err != nil {
		return b
	}
	if b.elements == nil {
		return b.fail(errElementsFirst)
	}
	if err != nil {
		return b.fail(err)
	}
	b.knots = knots
	return b
}

// Knots sets the knot vector in the open representation: n+p-1
// non-decreasing knots for n elements and degree p.
func (b *BSplineBuilder[T]) Knots(knots []float64) *BSplineBuilder[T] {
	if b.err != nil || b.elements == nil {
		return b.setKnots(nil, nil)
	}
	return b.setKnots(openKnots(len(b.elements), knots))
}

// ClampedKnots sets the inner knots of a clamped curve: n-p+1 knots whose
// borders the builder repeats p-1 times each. The curve interpolates its
// first and last element.
func (b *BSplineBuilder[T]) ClampedKnots(inner []float64) *BSplineBuilder[T] {
	if b.err != nil || b.elements == nil {
		return b.setKnots(nil, nil)
	}
	return b.setKnots(clampedKnots(len(b.elements), inner))
}

// LegacyKnots sets the textbook knot vector of length n+p+1; the builder
// trims the two outermost knots.
func (b *BSplineBuilder[T]) LegacyKnots(knots []float64) *BSplineBuilder[T] {
	if b.err != nil || b.elements == nil {
		return b.setKnots(nil, nil)
	}
	return b.setKnots(legacyKnots(len(b.elements), knots))
}

// Equidistant synthesizes evenly spaced knots; pick the degree or knot
// count and then the domain with the returned builders.
func (b *BSplineBuilder[T]) Equidistant() *BSplineEquidistantBuilder[T] {
	if b.err == nil && b.elements == nil {
		b.fail(errElementsFirst)
	}
	return &BSplineEquidistantBuilder[T]{parent: b}
}

// Dynamic allocates a fresh workspace per evaluation. This is the default.
func (b *BSplineBuilder[T]) Dynamic() *BSplineBuilder[T] {
	b.pooled = false
	b.space = nil
	return b
}

// Pooled recycles workspaces through a sync.Pool, keeping steady-state
// evaluation allocation-free.
func (b *BSplineBuilder[T]) Pooled() *BSplineBuilder[T] {
	b.pooled = true
	b.space = nil
	return b
}

// Workspace evaluates in the given space, which must hold degree+2 values.
func (b *BSplineBuilder[T]) Workspace(space Space[T]) *BSplineBuilder[T] {
	b.space = space
	return b
}

// Build returns the finished curve or the first error any stage produced.
func (b *BSplineBuilder[T]) Build() (BSpline[T], error) {
	if b.err != nil {
		return BSpline[T]{}, b.err
	}
	if b.knots == nil {
		return BSpline[T]{}, TooFewKnotsError{Found: 0}
	}
	degree := b.knots.Len() - len(b.elements) + 1
	required := degree + 2
	space := b.space
	switch {
	case space == nil && b.pooled:
		space = NewPooledSpace[T](required)
	case space == nil:
		space = NewDynSpace[T](required)
	case space.Len() < required:
		return BSpline[T]{}, TooSmallWorkspaceError{Found: space.Len(), Required: required}
	}
	return NewBSplineUnchecked[T](Elements[T](b.elements), b.knots, space), nil
}

// BSplineEquidistantBuilder is the degree stage of a BSplineBuilder with
// equidistant knots.
type BSplineEquidistantBuilder[T Merger[T]] struct {
	parent *BSplineBuilder[T]
}

// Degree picks the polynomial degree of the curve; the knot count follows.
func (b *BSplineEquidistantBuilder[T]) Degree(degree int) *BSplineEquidistantDomainBuilder[T] {
	p := b.parent
	if p.err == nil {
		n := len(p.elements)
		if degree < 1 || degree >= n {
			p.fail(InvalidDegreeError{Degree: degree})
		}
	}
	return &BSplineEquidistantDomainBuilder[T]{parent: p, degree: degree}
}

// Quantity picks the number of knots of the open representation; the degree
// follows as quantity-n+1.
func (b *BSplineEquidistantBuilder[T]) Quantity(quantity int) *BSplineEquidistantDomainBuilder[T] {
	p := b.parent
	degree := 0
	if p.err == nil {
		n := len(p.elements)
		degree = quantity - n + 1
		if degree < 1 || degree >= n {
			p.fail(InvalidDegreeError{Degree: degree})
		}
	}
	return &BSplineEquidistantDomainBuilder[T]{parent: p, degree: degree}
}

// BSplineEquidistantDomainBuilder is the knot-domain stage of a
// BSplineBuilder with equidistant knots.
type BSplineEquidistantDomainBuilder[T Merger[T]] struct {
	parent *BSplineBuilder[T]
	degree int
}

func (b *BSplineEquidistantDomainBuilder[T]) install(grid func(length int) Equidistant) *BSplineBuilder[T] {
	p := b.parent
	if p.err != nil {
		return p
	}
	n := len(p.elements)
	if p.clamped {
		// Inner knots only; the borders are repeated degree-1 times each.
		p.knots = NewBorderBuffer(grid(n-b.degree+1), b.degree-1)
	} else {
		p.knots = grid(n + b.degree - 1)
	}
	return p
}

// Normalized spreads the knots over [0, 1].
func (b *BSplineEquidistantDomainBuilder[T]) Normalized() *BSplineBuilder[T] {
	return b.Domain(0, 1)
}

// Domain spreads the knots over [start, end]. For a clamped curve this is
// the curve's domain; an open uniform curve's domain shrinks to the inner
// spans valid for its degree.
func (b *BSplineEquidistantDomainBuilder[T]) Domain(start, end float64) *BSplineBuilder[T] {
	return b.install(func(length int) Equidistant {
		return NewEquidistant(length, start, end)
	})
}

// Distance places the knots starting at start with the given spacing.
func (b *BSplineEquidistantDomainBuilder[T]) Distance(start, step float64) *BSplineBuilder[T] {
	return b.install(func(length int) Equidistant {
		return SteppedEquidistant(length, start, step)
	})
}

// WeightedBSplineBuilder constructs the rational variant of a B-spline -
// a NURBS: elements carry weights, the de Boor recursion blends homogeneous
// coordinates, and the built curve projects the weight back out.
type WeightedBSplineBuilder[E Vector[E]] struct {
	inner BSplineBuilder[Homogeneous[E]]
}

// NewWeightedBSplineBuilder starts building a NURBS curve.
func NewWeightedBSplineBuilder[E Vector[E]]() *WeightedBSplineBuilder[E] {
	return &WeightedBSplineBuilder[E]{}
}

// ElementsWithWeights sets the control elements and their weights. A weight
// of zero turns the element into a point at infinity.
func (b *WeightedBSplineBuilder[E]) ElementsWithWeights(pairs []WeightedElement[E]) *WeightedBSplineBuilder[E] {
	if len(pairs) < 2 {
		b.inner.fail(TooFewElementsError{Found: len(pairs)})
		return b
	}
	lifted := make([]Homogeneous[E], len(pairs))
	for i, p := range pairs {
		lifted[i] = LiftWeightedUnchecked(p.Element, p.Weight)
	}
	b.inner.Elements(lifted)
	return b
}

// Clamped makes the equidistant knot stage synthesize a clamped curve.
func (b *WeightedBSplineBuilder[E]) Clamped() *WeightedBSplineBuilder[E] {
	b.inner.Clamped()
	return b
}

// Knots sets the knot vector in the open representation.
func (b *WeightedBSplineBuilder[E]) Knots(knots []float64) *WeightedBSplineBuilder[E] {
	b.inner.Knots(knots)
	return b
}

// ClampedKnots sets the inner knots of a clamped curve.
func (b *WeightedBSplineBuilder[E]) ClampedKnots(inner []float64) *WeightedBSplineBuilder[E] {
	b.inner.ClampedKnots(inner)
	return b
}

// LegacyKnots sets the textbook knot vector of length n+p+1.
func (b *WeightedBSplineBuilder[E]) LegacyKnots(knots []float64) *WeightedBSplineBuilder[E] {
	b.inner.LegacyKnots(knots)
	return b
}

// Equidistant synthesizes evenly spaced knots.
func (b *WeightedBSplineBuilder[E]) Equidistant() *WeightedBSplineEquidistantBuilder[E] {
	return &WeightedBSplineEquidistantBuilder[E]{inner: b.inner.Equidistant(), outer: b}
}

// Dynamic allocates a fresh workspace per evaluation. This is the default.
func (b *WeightedBSplineBuilder[E]) Dynamic() *WeightedBSplineBuilder[E] {
	b.inner.Dynamic()
	return b
}

// Pooled recycles workspaces through a sync.Pool.
func (b *WeightedBSplineBuilder[E]) Pooled() *WeightedBSplineBuilder[E] {
	b.inner.Pooled()
	return b
}

// Workspace evaluates in the given space of homogeneous elements.
func (b *WeightedBSplineBuilder[E]) Workspace(space Space[Homogeneous[E]]) *WeightedBSplineBuilder[E] {
	b.inner.Workspace(space)
	return b
}

// Build returns the finished curve or the first error any stage produced.
func (b *WeightedBSplineBuilder[E]) Build() (Weighted[E], error) {
	bs, err := b.inner.Build()
	if err != nil {
		return Weighted[E]{}, err
	}
	return NewWeighted[E](bs), nil
}

// WeightedBSplineEquidistantBuilder is the degree stage of a
// WeightedBSplineBuilder with equidistant knots.
type WeightedBSplineEquidistantBuilder[E Vector[E]] struct {
	inner *BSplineEquidistantBuilder[Homogeneous[E]]
	outer *WeightedBSplineBuilder[E]
}

// Degree picks the polynomial degree of the curve.
func (b *WeightedBSplineEquidistantBuilder[E]) Degree(degree int) *WeightedBSplineEquidistantDomainBuilder[E] {
	return &WeightedBSplineEquidistantDomainBuilder[E]{inner: b.inner.Degree(degree), outer: b.outer}
}

// Quantity picks the number of knots of the open representation.
func (b *WeightedBSplineEquidistantBuilder[E]) Quantity(quantity int) *WeightedBSplineEquidistantDomainBuilder[E] {
	return &WeightedBSplineEquidistantDomainBuilder[E]{inner: b.inner.Quantity(quantity), outer: b.outer}
}

// WeightedBSplineEquidistantDomainBuilder is the knot-domain stage of a
// WeightedBSplineBuilder with equidistant knots.
type WeightedBSplineEquidistantDomainBuilder[E Vector[E]] struct {
	inner *BSplineEquidistantDomainBuilder[Homogeneous[E]]
	outer *WeightedBSplineBuilder[E]
}

// Normalized spreads the knots over [0, 1].
func (b *WeightedBSplineEquidistantDomainBuilder[E]) Normalized() *WeightedBSplineBuilder[E] {
	b.inner.Normalized()
	return b.outer
}

// Domain spreads the knots over [start, end].
func (b *WeightedBSplineEquidistantDomainBuilder[E]) Domain(start, end float64) *WeightedBSplineBuilder[E] {
	b.inner.Domain(start, end)
	return b.outer
}

// Distance places the knots starting at start with the given spacing.
func (b *WeightedBSplineEquidistantDomainBuilder[E]) Distance(start, step float64) *WeightedBSplineBuilder[E] {
	b.inner.Distance(start, step)
	return b.outer
}
