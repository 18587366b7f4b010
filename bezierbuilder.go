package interp

// BezierBuilder constructs a Bezier curve in stages: elements, then an
// optional workspace choice. Every stage validates its input; the first
// error poisons the builder and is reported by Build.
type BezierBuilder[T Merger[T]] struct {
	elements []T
	space    Space[T]
	err      error
}

// NewBezierBuilder starts building a Bézier curve.
func NewBezierBuilder[T Merger[T]]() *BezierBuilder[T] {
	return &BezierBuilder[T]{}
}

func (b *BezierBuilder[T]) fail(err error) *BezierBuilder[T] {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Elements sets the control elements. The degree of the curve is one less
// than their number.
func (b *BezierBuilder[T]) Elements(elements []T) *BezierBuilder[T] {
	if len(elements) == 0 {
		return b.fail(ErrEmpty)
	}
	b.elements = elements
	return b
}

// Dynamic allocates a fresh workspace per evaluation. This is the default.
func (b *BezierBuilder[T]) Dynamic() *BezierBuilder[T] {
	if b.err != nil {
		return b
	}
	if b.elements == nil {
		return b.fail(errElementsFirst)
	}
	b.space = NewDynSpace[T](len(b.elements))
	return b
}

// Pooled recycles workspaces through a sync.Pool, keeping steady-state
// evaluation allocation-free.
func (b *BezierBuilder[T]) Pooled() *BezierBuilder[T] {
	if b.err != nil {
		return b
	}
	if b.elements == nil {
		return b.fail(errElementsFirst)
	}
	b.space = NewPooledSpace[T](len(b.elements))
	return b
}

// Workspace evaluates in the given space, which must hold all control
// elements.
func (b *BezierBuilder[T]) Workspace(space Space[T]) *BezierBuilder[T] {
	if b.err != nil {
		return b
	}
	if b.elements == nil {
		return b.fail(errElementsFirst)
	}
	if space.Len() < len(b.elements) {
		return b.fail(TooSmallWorkspaceError{Found: space.Len(), Required: len(b.elements)})
	}
	b.space = space
	return b
}

// Build returns the finished curve over [0, 1] or the first error any stage
// produced.
func (b *BezierBuilder[T]) Build() (Bezier[T], error) {
	if b.err != nil {
		return Bezier[T]{}, b.err
	}
	if b.space == nil {
		b.space = NewDynSpace[T](len(b.elements))
	}
	return NewBezierUnchecked[T](Elements[T](b.elements), b.space), nil
}

// BuildWithDomain is Build with the curve's unit domain remapped to
// [start, end].
func (b *BezierBuilder[T]) BuildWithDomain(start, end float64) (TransformInput[T], error) {
	bz, err := b.Build()
	if err != nil {
		return TransformInput[T]{}, err
	}
	return normalizedToDomain[T](bz, start, end), nil
}

// WeightedBezierBuilder constructs the rational variant of a Bézier curve:
// elements carry weights, the de Casteljau triangle folds homogeneous
// coordinates, and the built curve projects the weight back out.
type WeightedBezierBuilder[E Vector[E]] struct {
	inner BezierBuilder[Homogeneous[E]]
}

// NewWeightedBezierBuilder starts building a rational Bézier curve.
func NewWeightedBezierBuilder[E Vector[E]]() *WeightedBezierBuilder[E] {
	return &WeightedBezierBuilder[E]{}
}

// ElementsWithWeights sets the control elements and their weights. A weight
// of zero turns the element into a point at infinity.
func (b *WeightedBezierBuilder[E]) ElementsWithWeights(pairs []WeightedElement[E]) *WeightedBezierBuilder[E] {
	if len(pairs) == 0 {
		b.inner.fail(ErrEmpty)
		return b
	}
	lifted := make([]Homogeneous[E], len(pairs))
	for i, p := range pairs {
		lifted[i] = LiftWeightedUnchecked(p.Element, p.Weight)
	}
	b.inner.Elements(lifted)
	return b
}

// Dynamic allocates a fresh workspace per evaluation. This is the default.
func (b *WeightedBezierBuilder[E]) Dynamic() *WeightedBezierBuilder[E] {
	b.inner.Dynamic()
	return b
}

// Pooled recycles workspaces through a sync.Pool.
func (b *WeightedBezierBuilder[E]) Pooled() *WeightedBezierBuilder[E] {
	b.inner.Pooled()
	return b
}

// Workspace evaluates in the given space of homogeneous elements.
func (b *WeightedBezierBuilder[E]) Workspace(space Space[Homogeneous[E]]) *WeightedBezierBuilder[E] {
	b.inner.Workspace(space)
	return b
}

// Build returns the finished curve over [0, 1] or the first error any stage
// produced.
func (b *WeightedBezierBuilder[E]) Build() (Weighted[E], error) {
	bz, err := b.inner.Build()
	if err != nil {
		return Weighted[E]{}, err
	}
	return NewWeighted[E](bz), nil
}

// BuildWithDomain is Build with the curve's unit domain remapped to
// [start, end].
func (b *WeightedBezierBuilder[E]) BuildWithDomain(start, end float64) (TransformInput[E], error) {
	w, err := b.Build()
	if err != nil {
		return TransformInput[E]{}, err
	}
	return normalizedToDomain[E](w, start, end), nil
}
