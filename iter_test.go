package interp

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStepperNormalized(t *testing.T) {
	st := NormalizedStepper(11)
	if st.Len() != 11 {
		t.Errorf("got length %d, want 11", st.Len())
	}
	want := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}
	diff(t, want, slices.Collect(st.Values()), cmpopts.EquateApprox(0, 1e-12))
}

func TestStepper(t *testing.T) {
	st := NewStepper(5, 3, 5)
	want := []float64{3, 3.5, 4, 4.5, 5}
	diff(t, want, slices.Collect(st.Values()), cmpopts.EquateApprox(0, 1e-12))
}

func TestValuesBackward(t *testing.T) {
	c := Elements[Float]{1, 2, 3, 4}

	var manual []Float
	for i := range c.Len() {
		manual = append(manual, c.Eval(i))
	}
	diff(t, manual, slices.Collect(Values[Float](c)))
	diff(t, manual, Collect[Float](c))

	backward := slices.Collect(Backward[Float](c))
	slices.Reverse(backward)
	diff(t, manual, backward)
}

func TestValuesEarlyStop(t *testing.T) {
	c := Elements[Float]{1, 2, 3, 4}
	var got []Float
	for v := range Values[Float](c) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	diff(t, []Float{1, 2}, got)
}

func TestFirstLast(t *testing.T) {
	c := Elements[Float]{1, 2, 3}
	if v, ok := First[Float](c); !ok || v != 1 {
		t.Errorf("First = (%v, %v), want (1, true)", v, ok)
	}
	if v, ok := Last[Float](c); !ok || v != 3 {
		t.Errorf("Last = (%v, %v), want (3, true)", v, ok)
	}
	if _, ok := First[Float](Elements[Float]{}); ok {
		t.Error("First of empty chain reported ok")
	}
	if _, ok := Last[Float](Elements[Float]{}); ok {
		t.Error("Last of empty chain reported ok")
	}
}

func TestSample(t *testing.T) {
	lin, err := NewLinear([]Float{0, 10}, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	inputs := slices.Values([]float64{0, 0.25, 1})
	got := floats(Sample[float64, Float](lin, inputs))
	diff(t, []float64{0, 2.5, 10}, got, cmpopts.EquateApprox(0, 1e-12))
}
