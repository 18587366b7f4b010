package interp

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBezierEval(t *testing.T) {
	bz, err := NewBezier([]Float{20, 100, 0, 200})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{20, 53.75, 65, 98.75, 200}
	diff(t, want, floats(Take[Float](bz, 5)), cmpopts.EquateApprox(0, 1e-9))
}

func TestBezierExtrapolation(t *testing.T) {
	bz, err := NewBezier([]Float{20, 0, 200})
	if err != nil {
		t.Fatal(err)
	}
	assertNearF(t, 820, float64(bz.Eval(2)), 1e-9)
	assertNearF(t, 280, float64(bz.Eval(-1)), 1e-9)
}

func TestBezierDerivativeLadder(t *testing.T) {
	bz, err := NewBezier([]Float{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	assertNearF(t, 2, float64(bz.Eval(0.5)), 1e-9)

	value, tangent := BezierWithTangent(bz, 0.5)
	assertNearF(t, 2, float64(value), 1e-9)
	assertNearF(t, 2, float64(tangent), 1e-9)

	grad := BezierDerivatives(bz, 0.5, 3)
	assertNearF(t, 2, float64(grad[0]), 1e-9)
	assertNearF(t, 2, float64(grad[1]), 1e-9)
	assertNearF(t, 0, float64(grad[2]), 1e-9)
}

func TestBezierTangentAgainstFiniteDifference(t *testing.T) {
	bz, err := NewBezier([]Float{20, 100, 0, 200})
	if err != nil {
		t.Fatal(err)
	}
	const delta = 1e-6
	for x := range NormalizedStepper(11).Values() {
		value, tangent := BezierWithTangent(bz, x)
		assertNearF(t, float64(bz.Eval(x)), float64(value), 1e-12)
		approx := (float64(bz.Eval(x+delta)) - float64(bz.Eval(x-delta))) / (2 * delta)
		assertNearF(t, approx, float64(tangent), 1e-3)
	}
}

func TestBezierConstantTangent(t *testing.T) {
	bz, err := NewBezier([]Float{5, 5})
	if err != nil {
		t.Fatal(err)
	}
	value, tangent := BezierWithTangent(bz, 0.35)
	assertNearF(t, 5, float64(value), 1e-12)
	assertNearF(t, 0, float64(tangent), 1e-12)
}

func TestBezierSingleElement(t *testing.T) {
	bz, err := NewBezier([]Float{7})
	if err != nil {
		t.Fatal(err)
	}
	if got := bz.Eval(0.8); got != 7 {
		t.Errorf("Eval(0.8) = %v, want 7", got)
	}
	value, tangent := BezierWithTangent(bz, 0.8)
	if value != 7 || tangent != 0 {
		t.Errorf("BezierWithTangent = (%v, %v), want (7, 0)", value, tangent)
	}
}

func TestBezierPartitionOfUnity(t *testing.T) {
	bz, err := NewBezier([]Float{1, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	for x := range NormalizedStepper(11).Values() {
		assertNearF(t, 1, float64(bz.Eval(x)), 1e-12)
	}
}

func TestBezierElevate(t *testing.T) {
	bz, err := NewBezier([]Float{20, 0, 200})
	if err != nil {
		t.Fatal(err)
	}
	el := bz.Elevate()
	if el.Degree() != bz.Degree()+1 {
		t.Errorf("got degree %d, want %d", el.Degree(), bz.Degree()+1)
	}
	for x := range NormalizedStepper(21).Values() {
		assertNearF(t, float64(bz.Eval(x)), float64(el.Eval(x)), 1e-9)
		_, wantTangent := BezierWithTangent(bz, x)
		_, gotTangent := BezierWithTangent(el, x)
		assertNearF(t, float64(wantTangent), float64(gotTangent), 1e-9)
	}
}

func TestBezierPoints(t *testing.T) {
	bz, err := NewBezier([]Point{Pt(0, 0), Pt(0, 0.5), Pt(1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, Pt(0, 0), bz.Eval(0), 1e-12)
	assertNear(t, Pt(1, 1), bz.Eval(1), 1e-12)
	assertNear(t, Pt(0.25, 0.5), bz.Eval(0.5), 1e-12)
}

func TestBezierBuildWithDomain(t *testing.T) {
	tr, err := NewBezierBuilder[Float]().
		Elements([]Float{1, 2, 3}).
		BuildWithDomain(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	start, end := tr.Domain()
	assertNearF(t, 2, start, 1e-12)
	assertNearF(t, 4, end, 1e-12)
	assertNearF(t, 1, float64(tr.Eval(2)), 1e-12)
	assertNearF(t, 2, float64(tr.Eval(3)), 1e-12)
	assertNearF(t, 3, float64(tr.Eval(4)), 1e-12)
}

func TestWeightedBezier(t *testing.T) {
	// A quadratic rational Bézier with weights (1, 1/√2, 1) traces a quarter
	// circle.
	w := 0.5 * 1.4142135623730951
	arc, err := NewWeightedBezierBuilder[Point]().
		ElementsWithWeights([]WeightedElement[Point]{
			{Element: Pt(1, 0), Weight: 1},
			{Element: Pt(1, 1), Weight: w},
			{Element: Pt(0, 1), Weight: 1},
		}).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	for x := range NormalizedStepper(17).Values() {
		assertNearF(t, 1, arc.Eval(x).Hypot(), 1e-12)
	}
}
