package bezier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BjoernLudwigPTB/bezier-kollokation/bezier"
	"github.com/BjoernLudwigPTB/bezier-kollokation/field"
)

func newField(t *testing.T) field.Field {
	t.Helper()
	f, err := field.New(40)
	require.NoError(t, err)
	return f
}

func fvals(f field.Field, vs ...float64) []field.Value {
	out := make([]field.Value, len(vs))
	for i, v := range vs {
		out[i] = f.FromFloat64(v)
	}
	return out
}

func TestSegmentValueAtEndpoints(t *testing.T) {
	f := newField(t)
	b := fvals(f, 1, 5, -2, 3)
	seg := bezier.NewSegment(f, b, f.Zero(), f.One())

	require.True(t, seg.Value(f.Zero()).Sub(b[0]).Abs().LessThan(f.FromFloat64(1e-30)))
	require.True(t, seg.Value(f.One()).Sub(b[len(b)-1]).Abs().LessThan(f.FromFloat64(1e-30)))
}

// naivePoly evaluates the same Bernstein polynomial via the textbook
// explicit-coefficient formula, independent of de Casteljau, as a
// cross-check for Value and the low-order derivatives.
func naivePoly(f field.Field, b []field.Value, mu field.Value) field.Value {
	n := len(b) - 1
	sum := f.Zero()
	one := f.One()
	for j := 0; j <= n; j++ {
		c := binomial(f, n, j)
		term := c.Mul(mu.PowInt(j)).Mul(one.Sub(mu).PowInt(n - j)).Mul(b[j])
		sum = sum.Add(term)
	}
	return sum
}

func binomial(f field.Field, n, k int) field.Value {
	b := f.One()
	for i := 0; i < k; i++ {
		b = b.Mul(f.FromInt64(int64(n - i))).Quo(f.FromInt64(int64(i + 1)))
	}
	return b
}

func TestSegmentValueMatchesNaivePolynomial(t *testing.T) {
	f := newField(t)
	b := fvals(f, 2, -1, 4, 0, 3)
	s, tEnd := f.Zero(), f.FromFloat64(2)
	seg := bezier.NewSegment(f, b, s, tEnd)

	for _, x := range []float64{0, 0.25, 0.5, 1.0, 1.75, 2.0} {
		xv := f.FromFloat64(x)
		mu := xv.Sub(s).Quo(tEnd.Sub(s))
		got := seg.Value(xv)
		want := naivePoly(f, b, mu)
		require.True(t, got.Sub(want).Abs().LessThan(f.FromFloat64(1e-25)), "x=%v", x)
	}
}

func TestBernsteinBasisPartitionOfUnity(t *testing.T) {
	f := newField(t)
	n := 5
	for _, muv := range []float64{0, 0.2, 0.5, 0.8, 1} {
		mu := f.FromFloat64(muv)
		one := f.One()
		sum := f.Zero()
		for j := 0; j <= n; j++ {
			c := binomial(f, n, j)
			sum = sum.Add(c.Mul(mu.PowInt(j)).Mul(one.Sub(mu).PowInt(n - j)))
		}
		require.True(t, sum.Sub(one).Abs().LessThan(f.FromFloat64(1e-25)))
	}
}

// numericDerivative approximates g'(x) with a centered finite difference,
// used only to sanity-check the closed-form derivative formulas at
// moderate (float64-range) precision.
func numericDerivative(f field.Field, seg *bezier.Segment, x field.Value, h float64) field.Value {
	hv := f.FromFloat64(h)
	plus := seg.Value(x.Add(hv))
	minus := seg.Value(x.Sub(hv))
	return plus.Sub(minus).Quo(hv.Mul(f.Two()))
}

func TestSegmentFirstDerivativeMatchesFiniteDifference(t *testing.T) {
	f := newField(t)
	b := fvals(f, 1, 2, -3, 5, 1)
	s, tEnd := f.Zero(), f.One()
	seg := bezier.NewSegment(f, b, s, tEnd)

	x := f.FromFloat64(0.4)
	analytic := seg.Derivative(x, 1)
	numeric := numericDerivative(f, seg, x, 1e-12)
	require.InDelta(t, analytic.Float64(), numeric.Float64(), 1e-4)
}

func TestSegmentSecondDerivativeMatchesNaivePolynomialDerivative(t *testing.T) {
	f := newField(t)
	b := fvals(f, 0, 0, 6, 0, 0) // degree 4
	s, tEnd := f.Zero(), f.One()
	seg := bezier.NewSegment(f, b, s, tEnd)

	x := f.FromFloat64(0.5)
	got := seg.Derivative(x, 2)
	require.False(t, got.IsZero())
	// g(mu) = 6*C(4,2)*mu^2*(1-mu)^2 = 36*mu^2*(1-mu)^2, so g''(1/2) = -36.
	require.True(t, got.Sub(f.FromInt64(-36)).Abs().LessThan(f.FromFloat64(1e-25)))
}

func TestSegmentHighOrderDerivativeOfDegreeNPolyIsConstant(t *testing.T) {
	f := newField(t)
	// degree-3 segment (n=3): the 3rd derivative of a cubic is a constant.
	b := fvals(f, 1, 2, 3, 10)
	s, tEnd := f.Zero(), f.One()
	seg := bezier.NewSegment(f, b, s, tEnd)

	d1 := seg.Derivative(f.FromFloat64(0.1), 3)
	d2 := seg.Derivative(f.FromFloat64(0.9), 3)
	require.True(t, d1.Sub(d2).Abs().LessThan(f.FromFloat64(1e-20)))
}

func TestSplineContinuityAndDispatch(t *testing.T) {
	f := newField(t)
	seg0 := bezier.NewSegment(f, fvals(f, 0, 1, 2), f.Zero(), f.One())
	seg1 := bezier.NewSegment(f, fvals(f, 2, 3, 4), f.One(), f.Two())

	sp, err := bezier.NewSpline([]field.Value{f.Zero(), f.One(), f.Two()}, []*bezier.Segment{seg0, seg1})
	require.NoError(t, err)

	require.True(t, sp.Value(f.Zero()).Equals(f.Zero()))
	require.True(t, sp.Value(f.Two()).Equals(f.FromInt64(4)))

	left := seg0.Value(f.One())
	right := seg1.Value(f.One())
	require.True(t, left.Sub(right).Abs().LessThan(f.FromFloat64(1e-25)))
	require.True(t, sp.Value(f.One()).Sub(left).Abs().LessThan(f.FromFloat64(1e-25)))
}

func TestNewSplineRejectsMismatchedLengths(t *testing.T) {
	f := newField(t)
	seg0 := bezier.NewSegment(f, fvals(f, 0, 1), f.Zero(), f.One())
	_, err := bezier.NewSpline([]field.Value{f.Zero(), f.One(), f.Two()}, []*bezier.Segment{seg0})
	require.Error(t, err)
}
