package interp

import "math"

// Pair is the pointwise output of Stack and Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Clamp saturates inputs to the domain of the inner curve, so the curve
// never extrapolates.
type Clamp[O any] struct {
	inner Curve[O]
}

// NewClamp wraps a curve such that inputs outside its domain evaluate at the
// nearest domain border.
func NewClamp[O any](inner Curve[O]) Clamp[O] {
	return Clamp[O]{inner: inner}
}

func (c Clamp[O]) Eval(x float64) O {
	start, end := c.inner.Domain()
	return c.inner.Eval(clampFloat(x, start, end))
}

func (c Clamp[O]) Domain() (float64, float64) { return c.inner.Domain() }

// Slice restricts a curve to a sub-interval of its domain. Evaluation is
// unchanged; only the declared domain shrinks, which is what bounded
// consumers like Take and Clamp act on.
type Slice[O any] struct {
	inner      Curve[O]
	start, end float64
}

// NewSlice restricts the curve's domain to [start, end]. A NaN or infinite
// bound keeps the corresponding endpoint of the curve's own domain.
func NewSlice[O any](inner Curve[O], start, end float64) Slice[O] {
	dmin, dmax := inner.Domain()
	if math.IsNaN(start) || math.IsInf(start, 0) {
		start = dmin
	}
	if math.IsNaN(end) || math.IsInf(end, 0) {
		end = dmax
	}
	return Slice[O]{inner: inner, start: start, end: end}
}

func (s Slice[O]) Eval(x float64) O { return s.inner.Eval(x) }

func (s Slice[O]) Domain() (float64, float64) { return s.start, s.end }

// TransformInput remaps curve inputs affinely: Eval(x) evaluates the inner
// curve at x·mul + add.
type TransformInput[O any] struct {
	inner Curve[O]
	add   float64
	mul   float64
}

// NewTransformInput wraps the curve with the affine input map
// x ↦ x·mul + add.
func NewTransformInput[O any](inner Curve[O], add, mul float64) TransformInput[O] {
	return TransformInput[O]{inner: inner, add: add, mul: mul}
}

// normalizedToDomain exposes a curve with domain [0,1] as one with domain
// [start, end].
func normalizedToDomain[O any](inner Curve[O], start, end float64) TransformInput[O] {
	width := end - start
	return NewTransformInput(inner, -start/width, 1/width)
}

func (t TransformInput[O]) Eval(x float64) O {
	return t.inner.Eval(x*t.mul + t.add)
}

func (t TransformInput[O]) Domain() (float64, float64) {
	start, end := t.inner.Domain()
	return (start - t.add) / t.mul, (end - t.add) / t.mul
}

// Composite pipelines two signals: the first produces the parameter for the
// second. Its domain is the first curve's domain.
type Composite[M, O any] struct {
	first  Curve[M]
	second Signal[M, O]
}

// Compose returns the composite second ∘ first. A linear curve composed with
// an easing curve, say, distorts time; a scalar curve composed with a color
// gradient picks colors.
func Compose[M, O any](first Curve[M], second Signal[M, O]) Composite[M, O] {
	return Composite[M, O]{first: first, second: second}
}

func (c Composite[M, O]) Eval(x float64) O {
	return c.second.Eval(c.first.Eval(x))
}

func (c Composite[M, O]) Domain() (float64, float64) { return c.first.Domain() }

// Stack evaluates two curves at the same parameter and pairs the results.
// Its domain is the intersection of both domains.
type Stack[A, B any] struct {
	a Curve[A]
	b Curve[B]
}

// NewStack pairs two curves pointwise.
func NewStack[A, B any](a Curve[A], b Curve[B]) Stack[A, B] {
	return Stack[A, B]{a: a, b: b}
}

func (s Stack[A, B]) Eval(x float64) Pair[A, B] {
	return Pair[A, B]{First: s.a.Eval(x), Second: s.b.Eval(x)}
}

func (s Stack[A, B]) Domain() (float64, float64) {
	aStart, aEnd := s.a.Domain()
	bStart, bEnd := s.b.Domain()
	return max(aStart, bStart), min(aEnd, bEnd)
}

// Zip evaluates two chains at the same index and pairs the results. Its
// length is the smaller of both lengths.
type Zip[A, B any] struct {
	a Chain[A]
	b Chain[B]
}

// NewZip pairs two chains pointwise.
func NewZip[A, B any](a Chain[A], b Chain[B]) Zip[A, B] {
	return Zip[A, B]{a: a, b: b}
}

func (z Zip[A, B]) Eval(i int) Pair[A, B] {
	return Pair[A, B]{First: z.a.Eval(i), Second: z.b.Eval(i)}
}

func (z Zip[A, B]) Len() int { return min(z.a.Len(), z.b.Len()) }

// Repeat cycles a chain forever. Its reported length is math.MaxInt;
// consume it through Wrap or bounded iteration, never to completion.
type Repeat[O any] struct {
	inner Chain[O]
}

// NewRepeat cycles the given chain.
func NewRepeat[O any](inner Chain[O]) Repeat[O] {
	return Repeat[O]{inner: inner}
}

func (r Repeat[O]) Eval(i int) O { return r.inner.Eval(i % r.inner.Len()) }

func (r Repeat[O]) Len() int { return math.MaxInt }

// Wrap extends a chain by n elements taken from its start, which closes a
// control polygon for periodic curves.
type Wrap[O any] struct {
	inner Chain[O]
	n     int
}

// NewWrap extends the chain by its first n elements.
func NewWrap[O any](inner Chain[O], n int) Wrap[O] {
	return Wrap[O]{inner: inner, n: n}
}

func (w Wrap[O]) Eval(i int) O { return w.inner.Eval(i % w.inner.Len()) }

func (w Wrap[O]) Len() int { return w.inner.Len() + w.n }
