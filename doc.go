// Package interp provides evaluators for piecewise-linear, Bézier, and
// B-spline curves over a generic element type, plus a rational extension of
// all three families via homogeneous coordinates (NURBS).
//
// # Enterpolation
//
// This package is a manual, idiomatic Go port of the [enterpolation] Rust
// crate. Enterpolation's central idea is to express every curve family with
// one affine blend operation and to keep the evaluation kernels free of any
// knowledge about the element type or about rational weights.
//
// # Elements
//
// Curves interpolate values of any type that can blend two of its values by a
// factor, expressed by the [Merger] constraint. Derivative evaluation and the
// rational lift additionally need subtraction and scaling, expressed by
// [Vector]. The package ships two ready-made element types, [Float] and
// [Point], but the kernels are equally happy with colors, transforms, or any
// other affine-ish data you bring along.
//
// # Signals, chains, and curves
//
// The shared abstraction is the [Signal]: a pure function from an input to an
// element. A [Chain] is a signal indexed by integers with a known length; a
// [Curve] is a signal indexed by a float64 with a declared domain. Everything
// in this package - knot vectors, control polygons, finished curves, easing
// functions - is one of the three, which is what makes the adaptors compose:
// [NewClamp] saturates inputs to the domain, [NewSlice] restricts it,
// [Compose] pipelines two signals, [Stack] pairs two curves pointwise, and
// [NewRepeat]/[NewWrap] cycle a chain for closed curves.
//
// # Curve families
//
//   - [Linear] interpolates piecewise-linearly between consecutive elements,
//     with an optional [Easing] applied to the segment-local factor.
//   - [Bezier] evaluates the de Casteljau triangle over its control elements;
//     [BezierWithTangent] and [BezierDerivatives] walk the derivative ladder.
//   - [BSpline] evaluates the de Boor recursion over the knot span's window
//     of control elements.
//
// Rational variants of all three are obtained by lifting elements into
// [Homogeneous] coordinates with [Weights] and projecting the result back
// with [Weighted]; the kernels themselves never branch on rationality.
//
// # Builders
//
// Each family has a staged builder ([NewLinearBuilder], [NewBezierBuilder],
// [NewBSplineBuilder], and weighted counterparts) that validates on every
// transition, remembers the first error, and reports it once from Build. The
// B-spline builder supports the three conventional ways of supplying a knot
// vector: open (verbatim), clamped (inner knots, endpoints repeated), and
// legacy (the textbook n+p+1 vector).
//
// # Iterators
//
// Functions that can produce values one at a time return iterators to avoid
// allocating slices: [Values] and [Backward] iterate a chain, [Sample] maps a
// signal over inputs, [Take] samples a curve at equidistant parameters, and
// [Stepper] iterates an equidistant grid itself. Use [Collect] or
// [slices.Collect] when you need a slice.
//
// [enterpolation]: https://github.com/NicolasKlenert/enterpolation
package interp
