package interp

import (
	"fmt"
	"math"
)

// Merger is the constraint curve elements must satisfy: an affine blend
// Merge(a, b, t) = (1-t)·a + t·b. The factor is usually in [0, 1] but may
// lie outside it when a curve extrapolates.
type Merger[T any] interface {
	Merge(other T, t float64) T
}

// Vector extends Merger with the two operations needed by derivative
// evaluation and the rational lift: subtraction and scaling by a scalar.
type Vector[T any] interface {
	Merger[T]
	Sub(other T) T
	Scale(r float64) T
}

// Float is a scalar curve element.
type Float float64

var _ Vector[Float] = Float(0)

func (f Float) Merge(other Float, t float64) Float {
	return Float(lerp(float64(f), float64(other), t))
}

func (f Float) Sub(other Float) Float { return f - other }

func (f Float) Scale(r float64) Float { return Float(float64(f) * r) }

// Point is a 2D curve element.
type Point struct {
	X float64
	Y float64
}

var _ Vector[Point] = Point{}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Merge(other Point, t float64) Point {
	return Point{
		X: lerp(pt.X, other.X, t),
		Y: lerp(pt.Y, other.Y, t),
	}
}

// Lerp linearly interpolates between two points. It is Merge under its
// conventional name.
func (pt Point) Lerp(other Point, t float64) Point {
	return pt.Merge(other, t)
}

func (pt Point) Sub(other Point) Point {
	return Point{
		X: pt.X - other.X,
		Y: pt.Y - other.Y,
	}
}

func (pt Point) Scale(r float64) Point {
	return Point{
		X: pt.X * r,
		Y: pt.Y * r,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(other Point) Point {
	return Point{
		X: 0.5 * (pt.X + other.X),
		Y: 0.5 * (pt.Y + other.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(other Point) float64 {
	return math.Hypot(pt.X-other.X, pt.Y-other.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(other Point) float64 {
	x := pt.X - other.X
	y := pt.Y - other.Y
	return x*x + y*y
}

// Hypot returns the distance of the point to the origin.
func (pt Point) Hypot() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
