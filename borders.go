package interp

// BorderBuffer repeats the first and last knot of the inner sequence n more
// times on each side. B-spline builders use it to clamp a curve to its first
// and last control element without the caller having to write out the
// repeated knots.
type BorderBuffer struct {
	inner Knots
	n     int
}

var _ Knots = BorderBuffer{}

// NewBorderBuffer pads the given knots with n repetitions of the first and
// last knot on each side.
func NewBorderBuffer(inner Knots, n int) BorderBuffer {
	return BorderBuffer{inner: inner, n: n}
}

func (b BorderBuffer) Eval(i int) float64 {
	inner := b.inner.Len()
	switch {
	case i < b.n:
		return b.inner.Eval(0)
	case i >= b.n+inner:
		return b.inner.Eval(inner - 1)
	default:
		return b.inner.Eval(i - b.n)
	}
}

func (b BorderBuffer) Len() int { return b.inner.Len() + 2*b.n }

// mapFrom translates a strict upper bound of the inner sequence to one of
// the padded sequence. Inner index 0 means every padded copy of the first
// knot exceeds x as well; inner index len means none does.
func (b BorderBuffer) mapFrom(inner int) int {
	switch {
	case inner == 0:
		return 0
	case inner == b.inner.Len():
		return b.Len()
	default:
		return inner + b.n
	}
}

func (b BorderBuffer) StrictUpperBound(x float64) int {
	return b.mapFrom(b.inner.StrictUpperBound(x))
}

func (b BorderBuffer) StrictUpperBoundClamped(x float64, lower, upper int) int {
	return max(min(b.StrictUpperBound(x), upper), lower)
}

func (b BorderBuffer) UpperBorder(x float64) (int, int, float64) {
	return upperBorder(b, x)
}

// BorderDeletion drops the first and last knot of the inner sequence.
// B-spline builders use it to accept the conventional knot vector of length
// n+p+1, whose outermost knots never influence the curve.
type BorderDeletion struct {
	inner Knots
}

var _ Knots = BorderDeletion{}

// NewBorderDeletion hides the first and last knot of the given sequence. It
// returns a TooFewKnotsError if fewer than two knots remain to be dropped
// from.
func NewBorderDeletion(inner Knots) (BorderDeletion, error) {
	if inner.Len() < 2 {
		return BorderDeletion{}, TooFewKnotsError{Found: inner.Len()}
	}
	return BorderDeletion{inner: inner}, nil
}

func (b BorderDeletion) Eval(i int) float64 { return b.inner.Eval(i + 1) }

func (b BorderDeletion) Len() int { return b.inner.Len() - 2 }

func (b BorderDeletion) StrictUpperBound(x float64) int {
	return max(min(b.inner.StrictUpperBound(x)-1, b.Len()), 0)
}

func (b BorderDeletion) StrictUpperBoundClamped(x float64, lower, upper int) int {
	return max(min(b.StrictUpperBound(x), upper), lower)
}

func (b BorderDeletion) UpperBorder(x float64) (int, int, float64) {
	return upperBorder(b, x)
}
