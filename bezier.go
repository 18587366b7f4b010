package interp

// Bezier is a Bézier curve of degree Len(elements)-1 over the domain [0, 1].
// Evaluation folds the de Casteljau triangle in a workspace rented from its
// Space, so a single Bezier value is safe to evaluate concurrently.
type Bezier[T Merger[T]] struct {
	elements Chain[T]
	space    Space[T]
}

// NewBezier returns the Bézier curve with the given control elements,
// allocating a fresh workspace per evaluation. It returns ErrEmpty if no
// elements are given.
func NewBezier[T Merger[T]](elements []T) (Bezier[T], error) {
	if len(elements) == 0 {
		return Bezier[T]{}, ErrEmpty
	}
	return NewBezierUnchecked[T](Elements[T](elements), NewDynSpace[T](len(elements))), nil
}

// NewBezierWithSpace returns the Bézier curve with the given control
// elements evaluating in the given workspace. The workspace must hold all
// control elements.
func NewBezierWithSpace[T Merger[T]](elements []T, space Space[T]) (Bezier[T], error) {
	if len(elements) == 0 {
		return Bezier[T]{}, ErrEmpty
	}
	if space.Len() < len(elements) {
		return Bezier[T]{}, TooSmallWorkspaceError{Found: space.Len(), Required: len(elements)}
	}
	return NewBezierUnchecked[T](Elements[T](elements), space), nil
}

// NewBezierUnchecked builds a Bézier curve from an arbitrary chain without
// validating the construction invariants. The caller vouches that the chain
// is non-empty and the space holds at least Len(elements) values.
func NewBezierUnchecked[T Merger[T]](elements Chain[T], space Space[T]) Bezier[T] {
	return Bezier[T]{elements: elements, space: space}
}

func (bz Bezier[T]) Eval(t float64) T {
	w := bz.space.Workspace()
	m := bz.elements.Len()
	for i := range m {
		w[i] = bz.elements.Eval(i)
	}
	for k := 1; k < m; k++ {
		for i := range m - k {
			w[i] = w[i].Merge(w[i+1], t)
		}
	}
	res := w[0]
	bz.space.Release(w)
	return res
}

func (bz Bezier[T]) Domain() (float64, float64) { return 0, 1 }

// Degree returns the polynomial degree of the curve, one less than its
// number of control elements.
func (bz Bezier[T]) Degree() int { return bz.elements.Len() - 1 }

// Elevate returns an equivalent Bézier curve of one degree higher. The new
// control polygon hugs the curve more closely, which is useful before
// editing single control elements.
func (bz Bezier[T]) Elevate() Bezier[T] {
	m := bz.elements.Len()
	elements := make([]T, m+1)
	elements[0] = bz.elements.Eval(0)
	elements[m] = bz.elements.Eval(m - 1)
	for i := 1; i < m; i++ {
		factor := float64(i) / float64(m)
		elements[i] = bz.elements.Eval(i).Merge(bz.elements.Eval(i-1), factor)
	}
	return NewBezierUnchecked[T](Elements[T](elements), NewDynSpace[T](m+1))
}

// BezierWithTangent evaluates the curve and its first derivative at t. The
// derivative of a single-element curve is the zero element.
func BezierWithTangent[T Vector[T]](bz Bezier[T], t float64) (value, tangent T) {
	w := bz.space.Workspace()
	m := bz.elements.Len()
	for i := range m {
		w[i] = bz.elements.Eval(i)
	}
	if m == 1 {
		value = w[0]
		tangent = w[0].Sub(w[0])
		bz.space.Release(w)
		return value, tangent
	}
	// Stop the triangle one row early; the two remaining entries give both
	// the value and the hodograph.
	triangleFold(w[:m], func(a, b T) T { return a.Merge(b, t) }, m-2)
	tangent = w[1].Sub(w[0]).Scale(float64(m - 1))
	value = w[0].Merge(w[1], t)
	bz.space.Release(w)
	return value, tangent
}

// BezierDerivatives evaluates the curve and its first n-1 derivatives at t,
// returned in ascending order starting with the value itself. Derivatives
// beyond the curve's degree are the zero element.
func BezierDerivatives[T Vector[T]](bz Bezier[T], t float64, n int) []T {
	if n <= 0 {
		return nil
	}
	grad := make([]T, n)
	w := bz.space.Workspace()
	m := bz.elements.Len()
	for i := range m {
		w[i] = bz.elements.Eval(i)
	}
	d := min(n-1, m-1)
	// Collapse the triangle until d+1 entries remain; their kth finite
	// difference scaled by the falling factorial of the degree is the kth
	// derivative.
	triangleFold(w[:m], func(a, b T) T { return a.Merge(b, t) }, m-d-1)
	for k := d; k >= 1; k-- {
		diff := make([]T, k+1)
		copy(diff, w[:k+1])
		for step := 1; step <= k; step++ {
			for i := k; i >= step; i-- {
				diff[i] = diff[i].Sub(diff[i-1])
			}
		}
		factor := 1.0
		for j := m - k; j < m; j++ {
			factor *= float64(j)
		}
		grad[k] = diff[k].Scale(factor)
		for i := range k {
			w[i] = w[i].Merge(w[i+1], t)
		}
	}
	grad[0] = w[0]
	bz.space.Release(w)
	return grad
}
