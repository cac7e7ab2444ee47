package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/BjoernLudwigPTB/bezier-kollokation/field"
	"github.com/BjoernLudwigPTB/bezier-kollokation/linalg"
)

// TestSolveBandedAgreesWithGonumDenseSolve is the solver-equivalence
// property: SolveBanded's scaled-pivoting elimination over the compact
// BandRow storage must agree with a textbook dense LU solve of the same
// system expanded to a full matrix.
func TestSolveBandedAgreesWithGonumDenseSolve(t *testing.T) {
	f := newField(t)

	n := 6
	rows := []linalg.BandRow{
		{Start: 0, Values: []field.Value{f.FromFloat64(4), f.FromFloat64(-1), f.FromFloat64(0)}},
		{Start: 0, Values: []field.Value{f.FromFloat64(-1), f.FromFloat64(4), f.FromFloat64(-1)}},
		{Start: 1, Values: []field.Value{f.FromFloat64(-1), f.FromFloat64(4), f.FromFloat64(-1)}},
		{Start: 2, Values: []field.Value{f.FromFloat64(-1), f.FromFloat64(4), f.FromFloat64(-1)}},
		{Start: 3, Values: []field.Value{f.FromFloat64(-1), f.FromFloat64(4), f.FromFloat64(-1)}},
		{Start: 3, Values: []field.Value{f.FromFloat64(0), f.FromFloat64(-1), f.FromFloat64(4)}},
	}
	bVals := []float64{1, 2, 3, 4, 5, 6}
	b := make([]field.Value, n)
	for i, v := range bVals {
		b[i] = f.FromFloat64(v)
	}

	got, err := linalg.SolveBanded(f, n, rows, b)
	require.NoError(t, err)

	dense := mat.NewDense(n, n, nil)
	for i, r := range rows {
		for j, v := range r.Values {
			dense.Set(i, r.Start+j, v.Float64())
		}
	}
	rhs := mat.NewVecDense(n, bVals)

	var want mat.VecDense
	err2 := want.SolveVec(dense, rhs)
	require.NoError(t, err2)

	for i := 0; i < n; i++ {
		require.InDelta(t, want.AtVec(i), got[i].Float64(), 1e-9, "row %d", i)
	}
}
