package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearBuilderErrors(t *testing.T) {
	t.Run("too few elements", func(t *testing.T) {
		_, err := NewLinearBuilder[Float]().
			Elements([]Float{1}).
			Build()
		var tooFew TooFewElementsError
		require.ErrorAs(t, err, &tooFew)
		assert.Equal(t, 1, tooFew.Found)
	})
	t.Run("knot element inequality", func(t *testing.T) {
		_, err := NewLinearBuilder[Float]().
			Elements([]Float{1, 2, 3}).
			Knots([]float64{0, 1}).
			Build()
		var mismatch KnotElementInequalityError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 3, mismatch.Elements)
		assert.Equal(t, 2, mismatch.Knots)
	})
	t.Run("unsorted knots", func(t *testing.T) {
		_, err := NewLinearBuilder[Float]().
			Elements([]Float{1, 2, 3}).
			Knots([]float64{0, 2, 1}).
			Build()
		var notSorted NotSortedError
		require.ErrorAs(t, err, &notSorted)
		assert.Equal(t, 2, notSorted.Index)
	})
	t.Run("knots before elements", func(t *testing.T) {
		_, err := NewLinearBuilder[Float]().
			Knots([]float64{0, 1}).
			Build()
		require.ErrorIs(t, err, errElementsFirst)
	})
	t.Run("first error wins", func(t *testing.T) {
		_, err := NewLinearBuilder[Float]().
			Elements([]Float{1}).
			Knots([]float64{0, 2, 1}).
			Build()
		var tooFew TooFewElementsError
		require.ErrorAs(t, err, &tooFew)
	})
	t.Run("knots default to normalized", func(t *testing.T) {
		lin, err := NewLinearBuilder[Float]().
			Elements([]Float{0, 10}).
			Build()
		require.NoError(t, err)
		start, end := lin.Domain()
		assert.Equal(t, 0.0, start)
		assert.Equal(t, 1.0, end)
	})
}

func TestBezierBuilderErrors(t *testing.T) {
	t.Run("no elements", func(t *testing.T) {
		_, err := NewBezierBuilder[Float]().
			Elements(nil).
			Build()
		require.ErrorIs(t, err, ErrEmpty)
	})
	t.Run("workspace before elements", func(t *testing.T) {
		_, err := NewBezierBuilder[Float]().
			Workspace(NewDynSpace[Float](4)).
			Build()
		require.ErrorIs(t, err, errElementsFirst)
	})
	t.Run("workspace too small", func(t *testing.T) {
		_, err := NewBezierBuilder[Float]().
			Elements([]Float{1, 2, 3, 4}).
			Workspace(NewDynSpace[Float](3)).
			Build()
		var tooSmall TooSmallWorkspaceError
		require.ErrorAs(t, err, &tooSmall)
		assert.Equal(t, 3, tooSmall.Found)
		assert.Equal(t, 4, tooSmall.Required)
	})
	t.Run("constructor workspace too small", func(t *testing.T) {
		_, err := NewBezierWithSpace([]Float{1, 2, 3}, NewDynSpace[Float](2))
		var tooSmall TooSmallWorkspaceError
		require.ErrorAs(t, err, &tooSmall)
	})
}

func TestBSplineBuilderErrors(t *testing.T) {
	t.Run("open degree too small", func(t *testing.T) {
		// 3 knots for 4 elements imply degree 0.
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3, 4}).
			Knots([]float64{0, 1, 2}).
			Build()
		var invalid InvalidDegreeError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 0, invalid.Degree)
	})
	t.Run("open degree too large", func(t *testing.T) {
		// 5 knots for 3 elements imply degree 3 >= n.
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3}).
			Knots([]float64{0, 1, 2, 3, 4}).
			Build()
		var invalid InvalidDegreeError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 3, invalid.Degree)
	})
	t.Run("legacy too few knots", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2}).
			LegacyKnots([]float64{0, 1, 2}).
			Build()
		var tooFew TooFewKnotsError
		require.ErrorAs(t, err, &tooFew)
		assert.Equal(t, 3, tooFew.Found)
	})
	t.Run("legacy invalid degree", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3, 4, 5}).
			LegacyKnots([]float64{0, 1, 2, 3, 4, 5}).
			Build()
		var invalid InvalidDegreeError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 0, invalid.Degree)
	})
	t.Run("equidistant degree out of range", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3}).
			Equidistant().Degree(3).Normalized().
			Build()
		var invalid InvalidDegreeError
		require.ErrorAs(t, err, &invalid)
	})
	t.Run("equidistant quantity out of range", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3}).
			Equidistant().Quantity(2).Normalized().
			Build()
		var invalid InvalidDegreeError
		require.ErrorAs(t, err, &invalid)
	})
	t.Run("no knot stage", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3}).
			Build()
		var tooFew TooFewKnotsError
		require.ErrorAs(t, err, &tooFew)
		assert.Equal(t, 0, tooFew.Found)
	})
	t.Run("knots before elements", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Knots([]float64{0, 1, 2}).
			Build()
		require.ErrorIs(t, err, errElementsFirst)
	})
	t.Run("unsorted knots", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3}).
			Knots([]float64{0, 2, 1, 3}).
			Build()
		var notSorted NotSortedError
		require.ErrorAs(t, err, &notSorted)
	})
	t.Run("workspace too small", func(t *testing.T) {
		_, err := NewBSplineBuilder[Float]().
			Elements([]Float{1, 2, 3, 4}).
			Equidistant().Degree(2).Normalized().
			Workspace(NewDynSpace[Float](3)).
			Build()
		var tooSmall TooSmallWorkspaceError
		require.ErrorAs(t, err, &tooSmall)
		assert.Equal(t, 4, tooSmall.Required)
	})
}

func TestWeightedBuilderErrors(t *testing.T) {
	t.Run("weighted linear too few", func(t *testing.T) {
		_, err := NewWeightedLinearBuilder[Float]().
			ElementsWithWeights([]WeightedElement[Float]{{Element: 1, Weight: 1}}).
			Build()
		var tooFew TooFewElementsError
		require.ErrorAs(t, err, &tooFew)
	})
	t.Run("weighted bezier empty", func(t *testing.T) {
		_, err := NewWeightedBezierBuilder[Float]().
			ElementsWithWeights(nil).
			Build()
		require.ErrorIs(t, err, ErrEmpty)
	})
	t.Run("weighted bspline unsorted knots", func(t *testing.T) {
		pairs := []WeightedElement[Float]{
			{Element: 1, Weight: 1},
			{Element: 2, Weight: 1},
			{Element: 3, Weight: 1},
		}
		_, err := NewWeightedBSplineBuilder[Float]().
			ElementsWithWeights(pairs).
			Knots([]float64{0, 2, 1, 3}).
			Build()
		var notSorted NotSortedError
		require.ErrorAs(t, err, &notSorted)
	})
}

func TestBuilderPooledMatchesDynamic(t *testing.T) {
	elements := []Float{20, 100, 0, 200}

	dynamic, err := NewBezierBuilder[Float]().Elements(elements).Dynamic().Build()
	require.NoError(t, err)
	pooled, err := NewBezierBuilder[Float]().Elements(elements).Pooled().Build()
	require.NoError(t, err)
	for x := range NormalizedStepper(11).Values() {
		assert.InDelta(t, float64(dynamic.Eval(x)), float64(pooled.Eval(x)), 1e-12)
	}

	dynSpline, err := NewBSplineBuilder[Float]().
		Elements(elements).
		Equidistant().Degree(2).Normalized().
		Dynamic().
		Build()
	require.NoError(t, err)
	pooledSpline, err := NewBSplineBuilder[Float]().
		Elements(elements).
		Equidistant().Degree(2).Normalized().
		Pooled().
		Build()
	require.NoError(t, err)
	start, end := dynSpline.Domain()
	for x := range NewStepper(11, start, end).Values() {
		assert.InDelta(t, float64(dynSpline.Eval(x)), float64(pooledSpline.Eval(x)), 1e-12)
	}
}
