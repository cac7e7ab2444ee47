package mesh

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// Shishkin returns the piecewise-uniform Shishkin mesh for a convection-
// dominated problem -ε y'' - b y' + c y = f with b >= beta > 0: qL = floor(q*l)
// uniform subintervals cover [s, s+tau(t-s)] and the remaining l-qL cover
// [s+tau(t-s), t], where tau = min(q, sigma*eps/beta * ln(l)) places the
// transition point at the layer width predicted by the asymptotic
// boundary-layer analysis, clipped to the caller's requested layer
// fraction q.
func Shishkin(f field.Field, l int, s, t, q, sigma, beta, eps field.Value) (*Mesh, error) {
	if l <= 0 {
		return nil, &InvalidArgumentError{Msg: "l must be positive"}
	}
	qL := int(q.Mul(f.FromInt64(int64(l))).Floor().Float64())
	if qL < 1 || qL >= l {
		return nil, &InvalidArgumentError{Msg: "q*l must resolve to a subinterval count strictly between 0 and l"}
	}

	tau := sigma.Mul(eps).Quo(beta).Mul(f.FromInt64(int64(l)).Log())
	if q.LessThan(tau) {
		tau = q
	}

	tMinusS := t.Sub(s)
	xi := make([]field.Value, l+1)
	xi[0] = s

	step1 := tau.Mul(tMinusS).Quo(f.FromInt64(int64(qL)))
	for i := 1; i <= qL; i++ {
		xi[i] = xi[i-1].Add(step1)
	}

	step2 := f.One().Sub(tau).Mul(tMinusS).Quo(f.FromInt64(int64(l - qL)))
	for i := qL + 1; i <= l; i++ {
		xi[i] = xi[i-1].Add(step2)
	}
	xi[l] = t

	return &Mesh{f: f, xi: xi}, nil
}

// ShishkinReaction returns the piecewise-uniform Shishkin mesh for a
// reaction-dominated problem -ε y'' + c y = f with c >= gamma^2, gamma > 0,
// carrying independent boundary layers at both s and t: q0L = floor(q0*l)
// subintervals cover the layer at s, q1L = floor(q1*l) cover the layer at
// t, and the remaining subintervals cover the uniform interior, with
// transition widths tau_i = min(q_i, sigma_i * eps/gamma * ln(l)).
func ShishkinReaction(f field.Field, l int, s, t, q0, q1, sigma0, sigma1, gamma, eps field.Value) (*Mesh, error) {
	if l <= 0 {
		return nil, &InvalidArgumentError{Msg: "l must be positive"}
	}
	q0L := int(q0.Mul(f.FromInt64(int64(l))).Floor().Float64())
	q1L := int(q1.Mul(f.FromInt64(int64(l))).Floor().Float64())
	if q0L < 1 || q1L < 1 || q0L+q1L >= l {
		return nil, &InvalidArgumentError{Msg: "q0*l and q1*l must resolve to disjoint subinterval counts leaving an interior"}
	}

	lnL := f.FromInt64(int64(l)).Log()
	temp := eps.Quo(gamma).Mul(lnL)
	tau0 := sigma0.Mul(temp)
	tau1 := sigma1.Mul(temp)
	if q0.LessThan(tau0) {
		tau0 = q0
	}
	if q1.LessThan(tau1) {
		tau1 = q1
	}

	tMinusS := t.Sub(s)
	xi := make([]field.Value, l+1)
	xi[0] = s

	step0 := tau0.Mul(tMinusS).Quo(f.FromInt64(int64(q0L)))
	for i := 1; i <= q0L; i++ {
		xi[i] = xi[i-1].Add(step0)
	}

	stepMid := f.One().Sub(tau0).Sub(tau1).Mul(tMinusS).Quo(f.FromInt64(int64(l - q0L - q1L)))
	for i := q0L + 1; i <= l-q1L; i++ {
		xi[i] = xi[i-1].Add(stepMid)
	}

	step1 := tau1.Mul(tMinusS).Quo(f.FromInt64(int64(q1L)))
	for i := l - q1L + 1; i <= l; i++ {
		xi[i] = xi[i-1].Add(step1)
	}
	xi[l] = t

	return &Mesh{f: f, xi: xi}, nil
}
