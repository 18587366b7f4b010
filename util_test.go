package interp

import (
	"iter"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func assertNear(t *testing.T, want, got Point, epsilon float64) {
	t.Helper()
	if want.Distance(got) > epsilon {
		t.Errorf("got %v, want %v (within %g)", got, want, epsilon)
	}
}

func assertNearF(t *testing.T, want, got float64, epsilon float64) {
	t.Helper()
	if math.Abs(want-got) > epsilon {
		t.Errorf("got %v, want %v (within %g)", got, want, epsilon)
	}
}

// floats collects a Float sequence into a plain float64 slice for diffing.
func floats(seq iter.Seq[Float]) []float64 {
	var out []float64
	for v := range seq {
		out = append(out, float64(v))
	}
	return out
}
