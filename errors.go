package interp

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a curve is built without any elements.
var ErrEmpty = errors.New("interp: no elements given")

// NotSortedError is returned when a knot sequence decreases.
type NotSortedError struct {
	// Index of the first knot smaller than its predecessor.
	Index int
}

func (e NotSortedError) Error() string {
	return fmt.Sprintf("interp: knots are not sorted: knot at index %d is smaller than its predecessor", e.Index)
}

// TooFewElementsError is returned when a curve family needs more elements
// than were given.
type TooFewElementsError struct {
	Found int
}

func (e TooFewElementsError) Error() string {
	return fmt.Sprintf("interp: too few elements: found %d, need at least 2", e.Found)
}

// TooFewKnotsError is returned when a knot sequence is shorter than the
// construction mode requires.
type TooFewKnotsError struct {
	Found int
}

func (e TooFewKnotsError) Error() string {
	return fmt.Sprintf("interp: too few knots: found %d", e.Found)
}

// KnotElementInequalityError is returned when the number of knots does not
// match the number of elements where it must.
type KnotElementInequalityError struct {
	Elements int
	Knots    int
}

func (e KnotElementInequalityError) Error() string {
	return fmt.Sprintf("interp: number of knots (%d) does not match number of elements (%d)", e.Knots, e.Elements)
}

// InvalidDegreeError is returned when the counts of knots and elements of a
// B-spline imply a degree outside [1, len(elements)).
type InvalidDegreeError struct {
	Degree int
}

func (e InvalidDegreeError) Error() string {
	return fmt.Sprintf("interp: invalid B-spline degree %d; only strictly positive degrees less than the number of elements are allowed", e.Degree)
}

// TooSmallWorkspaceError is returned when a supplied workspace cannot hold
// the evaluation triangle.
type TooSmallWorkspaceError struct {
	Found    int
	Required int
}

func (e TooSmallWorkspaceError) Error() string {
	return fmt.Sprintf("interp: workspace of length %d is too small, need at least %d", e.Found, e.Required)
}

// WeightOfZeroError is returned by the checked homogeneous lift when the
// weight is zero. Zero weights describe points at infinity and have to be
// created explicitly with LiftInfinite.
type WeightOfZeroError struct{}

func (e WeightOfZeroError) Error() string {
	return "interp: weight of zero; use LiftInfinite for points at infinity"
}
