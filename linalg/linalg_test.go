package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BjoernLudwigPTB/bezier-kollokation/field"
	"github.com/BjoernLudwigPTB/bezier-kollokation/linalg"
)

func newField(t *testing.T) field.Field {
	t.Helper()
	f, err := field.New(40)
	require.NoError(t, err)
	return f
}

func TestBinomialSymmetry(t *testing.T) {
	f := newField(t)
	for n := 0; n <= 10; n++ {
		b := linalg.NewBinomials(f, n)
		require.True(t, b.Get(0).Equals(f.One()))
		require.True(t, b.Get(n).Equals(f.One()))
		for k := 0; k <= n; k++ {
			require.True(t, b.Get(k).Equals(b.Get(n-k)), "C(%d,%d) != C(%d,%d)", n, k, n, n-k)
		}
	}
}

func TestBinomialGetPanicsOutOfRange(t *testing.T) {
	f := newField(t)
	b := linalg.NewBinomials(f, 5)
	require.Panics(t, func() { b.Get(-1) })
	require.Panics(t, func() { b.Get(6) })
}

func TestGaussLegendreNodesRejectsNonPositiveK(t *testing.T) {
	f := newField(t)
	_, err := linalg.GaussLegendreNodes(f, 0)
	require.Error(t, err)
}

func TestGaussLegendreNodesSymmetricAscendingInsideUnitInterval(t *testing.T) {
	f := newField(t)
	for k := 1; k <= 8; k++ {
		nodes, err := linalg.GaussLegendreNodes(f, k)
		require.NoError(t, err)
		require.Len(t, nodes, k)

		for i := 1; i < k; i++ {
			require.True(t, nodes[i].GreaterThan(nodes[i-1]), "k=%d nodes not ascending at %d", k, i)
		}
		for _, n := range nodes {
			require.True(t, n.Abs().LessThan(f.One()), "k=%d node %v not inside (-1,1)", k, n.String())
		}
		// symmetry about 0: sorted nodes pair up as n[i] == -n[k-1-i]
		for i := 0; i < k; i++ {
			require.True(t, nodes[i].Add(nodes[k-1-i]).Abs().LessThan(f.FromFloat64(1e-30)),
				"k=%d nodes not symmetric about 0 at %d", k, i)
		}
	}
}

func TestGaussLegendreNodesMatchKnownValuesForK2(t *testing.T) {
	f := newField(t)
	nodes, err := linalg.GaussLegendreNodes(f, 2)
	require.NoError(t, err)
	want := 1.0 / math.Sqrt(3)
	require.InDelta(t, -want, nodes[0].Float64(), 1e-9)
	require.InDelta(t, want, nodes[1].Float64(), 1e-9)
}

func TestTridiagonalEigenvaluesSortedAscending(t *testing.T) {
	f := newField(t)
	sub := []field.Value{f.FromFloat64(1), f.FromFloat64(2), f.FromFloat64(0)}
	eig, err := linalg.TridiagonalEigenvalues(f, sub)
	require.NoError(t, err)
	for i := 1; i < len(eig); i++ {
		require.True(t, eig[i].GreaterThan(eig[i-1]) || eig[i].Equals(eig[i-1]))
	}
}

func solveDense3x3(t *testing.T, f field.Field) {
	t.Helper()
	// A = [[2,3,1],[1,2,3],[3,1,2]], b = [9,6,8]
	// expected x = [35/18, 29/18, 5/18]
	rows := []linalg.BandRow{
		{Start: 0, Values: []field.Value{f.FromFloat64(2), f.FromFloat64(3), f.FromFloat64(1)}},
		{Start: 0, Values: []field.Value{f.FromFloat64(1), f.FromFloat64(2), f.FromFloat64(3)}},
		{Start: 0, Values: []field.Value{f.FromFloat64(3), f.FromFloat64(1), f.FromFloat64(2)}},
	}
	b := []field.Value{f.FromFloat64(9), f.FromFloat64(6), f.FromFloat64(8)}
	x, err := linalg.SolveBanded(f, 3, rows, b)
	require.NoError(t, err)

	want := []float64{35.0 / 18.0, 29.0 / 18.0, 5.0 / 18.0}
	for i, w := range want {
		require.InDelta(t, w, x[i].Float64(), 1e-9)
	}
}

func TestSolveBandedDense3x3(t *testing.T) {
	solveDense3x3(t, newField(t))
}

func TestSolveBandedSingularRowFails(t *testing.T) {
	f := newField(t)
	rows := []linalg.BandRow{
		{Start: 0, Values: []field.Value{f.Zero(), f.Zero()}},
		{Start: 0, Values: []field.Value{f.One(), f.One()}},
	}
	b := []field.Value{f.Zero(), f.One()}
	_, err := linalg.SolveBanded(f, 2, rows, b)
	require.Error(t, err)
	var singular *linalg.SingularMatrixError
	require.ErrorAs(t, err, &singular)
}

func TestSolveBandedDimensionMismatch(t *testing.T) {
	f := newField(t)
	rows := []linalg.BandRow{{Start: 0, Values: []field.Value{f.One()}}}
	_, err := linalg.SolveBanded(f, 2, rows, []field.Value{f.One()})
	require.Error(t, err)
}

func TestStructureRowsSumToTotal(t *testing.T) {
	for _, k := range []int{1, 2, 3, 4} {
		for _, l := range []int{1, 2, 3, 8} {
			blocks := linalg.Structure(l, k)
			total := 0
			for _, b := range blocks {
				total += b.Rows
			}
			require.Equal(t, l*(k+2), total, "k=%d l=%d", k, l)
		}
	}
}
