package interp

// Homogeneous is a projective point (element·weight, weight). Rational
// curves (NURBS, rational Béziers) are plain curves over homogeneous
// elements: the kernels blend them affinely like any other element, and
// Project divides the accumulated weight back out.
//
// A weight of zero represents a point at infinity in the direction of the
// element; projecting it yields non-finite values, which is delegated to
// the element type rather than reported as an error.
type Homogeneous[E Vector[E]] struct {
	element E
	weight  float64
}

var _ Vector[Homogeneous[Float]] = Homogeneous[Float]{}

// Lift embeds an element with weight one.
func Lift[E Vector[E]](element E) Homogeneous[E] {
	return Homogeneous[E]{element: element, weight: 1}
}

// LiftWeighted embeds an element with the given weight, premultiplying the
// element. It returns a WeightOfZeroError for a zero weight; points at
// infinity must be created explicitly with LiftInfinite.
func LiftWeighted[E Vector[E]](element E, weight float64) (Homogeneous[E], error) {
	if weight == 0 {
		return Homogeneous[E]{}, WeightOfZeroError{}
	}
	return LiftWeightedUnchecked(element, weight), nil
}

// LiftWeightedUnchecked embeds an element with the given weight without
// rejecting zero.
func LiftWeightedUnchecked[E Vector[E]](element E, weight float64) Homogeneous[E] {
	return Homogeneous[E]{element: element.Scale(weight), weight: weight}
}

// LiftInfinite returns the point at infinity in the given direction.
func LiftInfinite[E Vector[E]](direction E) Homogeneous[E] {
	return Homogeneous[E]{element: direction}
}

// Project divides the weight back out of the element.
func (h Homogeneous[E]) Project() E {
	return h.element.Scale(1 / h.weight)
}

// Weight returns the weight of the point.
func (h Homogeneous[E]) Weight() float64 { return h.weight }

func (h Homogeneous[E]) Merge(other Homogeneous[E], t float64) Homogeneous[E] {
	return Homogeneous[E]{
		element: h.element.Merge(other.element, t),
		weight:  lerp(h.weight, other.weight, t),
	}
}

func (h Homogeneous[E]) Sub(other Homogeneous[E]) Homogeneous[E] {
	return Homogeneous[E]{
		element: h.element.Sub(other.element),
		weight:  h.weight - other.weight,
	}
}

func (h Homogeneous[E]) Scale(r float64) Homogeneous[E] {
	return Homogeneous[E]{
		element: h.element.Scale(r),
		weight:  h.weight * r,
	}
}

// WeightedElement pairs an element with its rational weight for builder
// input and for the Weights chain.
type WeightedElement[E any] struct {
	Element E
	Weight  float64
}

// Weights lifts a chain of weighted elements into homogeneous coordinates,
// ready to flow through any kernel.
type Weights[E Vector[E]] struct {
	inner Chain[WeightedElement[E]]
}

var _ Chain[Homogeneous[Float]] = Weights[Float]{}

// NewWeights lifts the given chain of weighted elements.
func NewWeights[E Vector[E]](inner Chain[WeightedElement[E]]) Weights[E] {
	return Weights[E]{inner: inner}
}

func (w Weights[E]) Eval(i int) Homogeneous[E] {
	p := w.inner.Eval(i)
	return LiftWeightedUnchecked(p.Element, p.Weight)
}

func (w Weights[E]) Len() int { return w.inner.Len() }

// Weighted projects a homogeneous curve back to its element type. Wrapping
// any curve over Weights(...) in Weighted is how rational curves are
// expressed without duplicating kernels.
type Weighted[E Vector[E]] struct {
	inner Curve[Homogeneous[E]]
}

var _ Curve[Float] = Weighted[Float]{}

// NewWeighted projects the given homogeneous curve.
func NewWeighted[E Vector[E]](inner Curve[Homogeneous[E]]) Weighted[E] {
	return Weighted[E]{inner: inner}
}

func (w Weighted[E]) Eval(x float64) E {
	return w.inner.Eval(x).Project()
}

func (w Weighted[E]) Domain() (float64, float64) { return w.inner.Domain() }
