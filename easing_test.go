package interp

import "testing"

func TestEasingBorders(t *testing.T) {
	easings := map[string]Easing{
		"identity":     Identity,
		"smoothstart2": SmoothStart(2),
		"smoothstart3": SmoothStart(3),
		"smoothend2":   SmoothEnd(2),
		"smoothstep":   Smoothstep,
		"smootherstep": Smootherstep,
		"plateau":      Plateau(0.5),
	}
	for name, f := range easings {
		if got := f(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestSmoothStart(t *testing.T) {
	assertNearF(t, 0.25, SmoothStart(2)(0.5), 1e-12)
	assertNearF(t, 0.125, SmoothStart(3)(0.5), 1e-12)
	assertNearF(t, 0.75, SmoothEnd(2)(0.5), 1e-12)
}

func TestSmoothstep(t *testing.T) {
	assertNearF(t, 0.5, Smoothstep(0.5), 1e-12)
	assertNearF(t, 0.15625, Smoothstep(0.25), 1e-12)
	assertNearF(t, 0.5, Smootherstep(0.5), 1e-12)
	assertNearF(t, 0.103515625, Smootherstep(0.25), 1e-12)
}

func TestFlip(t *testing.T) {
	f := Flip(SmoothStart(2))
	assertNearF(t, SmoothEnd(2)(0.3), f(0.3), 1e-12)
}

func TestPlateau(t *testing.T) {
	f := Plateau(0.5)
	// Everything within a quarter of the borders saturates.
	for _, x := range []float64{0, 0.1, 0.25} {
		if got := f(x); got != 0 {
			t.Errorf("Plateau(0.5)(%v) = %v, want 0", x, got)
		}
	}
	for _, x := range []float64{0.75, 0.9, 1} {
		if got := f(x); got != 1 {
			t.Errorf("Plateau(0.5)(%v) = %v, want 1", x, got)
		}
	}
	assertNearF(t, 0.5, f(0.5), 1e-12)
}
