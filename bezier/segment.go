// Package bezier implements Bernstein–Bézier polynomial segments and the
// globally C1 spline assembled from them: evaluation and differentiation by
// the de Casteljau algorithm, and segment dispatch by knot search.
package bezier

import (
	"github.com/BjoernLudwigPTB/bezier-kollokation/field"
	"github.com/BjoernLudwigPTB/bezier-kollokation/linalg"
)

// Segment is a single polynomial in Bernstein-Bézier form over [s, t]:
// sum_i b[i] * B_i^n(mu(x)), where mu(x) = (x-s)/(t-s) and n = len(B)-1.
type Segment struct {
	f           field.Field
	b           []field.Value
	s, t        field.Value
	tMinusS     field.Value
	tMinusSSqr  field.Value
	sDivTMinusS field.Value
}

// NewSegment constructs a degree-(len(b)-1) Bézier segment over [s, t] from
// its Bézier points b[0..n], ordered by ascending degree (b[0] is the
// coefficient of B_0^n, b[n] of B_n^n). b is copied.
func NewSegment(f field.Field, b []field.Value, s, t field.Value) *Segment {
	cp := make([]field.Value, len(b))
	copy(cp, b)
	tMinusS := t.Sub(s)
	return &Segment{
		f:           f,
		b:           cp,
		s:           s,
		t:           t,
		tMinusS:     tMinusS,
		tMinusSSqr:  tMinusS.Mul(tMinusS),
		sDivTMinusS: s.Quo(tMinusS),
	}
}

// mu computes (x-s)/(t-s).
func (seg *Segment) mu(x field.Value) field.Value {
	return x.Quo(seg.tMinusS).Sub(seg.sDivTMinusS)
}

// deCasteljauEval reduces pts (the Bézier points of some sub-segment) to a
// single value at parameter mu via the iterative de Casteljau recurrence:
// each pass linearly interpolates every adjacent pair until one point
// remains. The recursive relation b_i^r(mu) = mu b_{i+1}^{r-1}(mu) +
// (1-mu) b_i^{r-1}(mu) is exactly the bottom-up reduction performed here;
// the recursion itself is never used at runtime.
func (seg *Segment) deCasteljauEval(mu field.Value, pts []field.Value) field.Value {
	n := len(pts) - 1
	cur := make([]field.Value, len(pts))
	copy(cur, pts)
	one := seg.f.One()
	oneMinusMu := one.Sub(mu)
	for r := n; r > 0; r-- {
		for i := 0; i < r; i++ {
			cur[i] = mu.Mul(cur[i+1]).Add(oneMinusMu.Mul(cur[i]))
		}
	}
	return cur[0]
}

// deCasteljau evaluates b_i^r(mu) for the sub-segment starting at i with r
// further interpolation levels, i.e. over the control points b[i..i+r].
func (seg *Segment) deCasteljau(mu field.Value, r, i int) field.Value {
	return seg.deCasteljauEval(mu, seg.b[i:i+r+1])
}

// Value evaluates the segment at x.
func (seg *Segment) Value(x field.Value) field.Value {
	n := len(seg.b) - 1
	return seg.deCasteljau(seg.mu(x), n, 0)
}

// Derivative evaluates the nu-th derivative of the segment at x. nu == 0
// and nu == 1 and nu == 2 are hand coded for speed; nu >= 3 falls back to
// the general Bernstein-basis derivative formula using falling-factorial
// coefficients and a binomial expansion across the reduced control points.
func (seg *Segment) Derivative(x field.Value, nu int) field.Value {
	if nu == 0 {
		return seg.Value(x)
	}
	mu := seg.mu(x)
	n := len(seg.b) - 1
	two := seg.f.Two()

	switch nu {
	case 1:
		return seg.tMinusS.Reciprocal().
			Mul(seg.f.FromInt64(int64(n))).
			Mul(seg.deCasteljau(mu, n-1, 1).Sub(seg.deCasteljau(mu, n-1, 0)))
	case 2:
		return seg.tMinusSSqr.Reciprocal().
			Mul(seg.f.FromInt64(int64(n))).
			Mul(seg.f.FromInt64(int64(n - 1))).
			Mul(seg.deCasteljau(mu, n-2, 0).
				Sub(two.Mul(seg.deCasteljau(mu, n-2, 1))).
				Add(seg.deCasteljau(mu, n-2, 2)))
	default:
		binom := linalg.NewBinomials(seg.f, nu)
		sum := seg.f.Zero()
		fallingFactorial := 1
		for i := 0; i <= nu; i++ {
			term := seg.deCasteljau(mu, n-nu, i).Mul(binom.Get(i))
			if (nu-i)%2 == 0 {
				sum = sum.Add(term)
			} else {
				sum = sum.Sub(term)
			}
			if i < nu {
				fallingFactorial *= n - i
			}
		}
		return sum.Mul(seg.f.FromInt64(int64(fallingFactorial))).Quo(seg.tMinusS.PowInt(nu))
	}
}
