package mesh

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// chi evaluates the Bakhvalov grid-generating function
// chi(r) = -(sigma*eps/beta) * ln((q-r)/q), the inverse layer map used to
// place knots logarithmically inside the boundary layer.
func chi(q, c, r field.Value) field.Value {
	ratio := q.Sub(r).Quo(q)
	return c.Mul(ratio.Log()).Neg()
}

// Bakhvalov returns the Bakhvalov mesh for a convection-dominated problem
// -ε y'' - b y' + c y = f with b >= beta > 0: knots inside the boundary
// layer [s, s+tau(t-s)] follow the exponential map chi, and the remaining
// knots are uniform. tau is the fixed point of
// tau_{i+1} = q - (sigma*eps/beta)*(1-tau_i)/(1-chi(tau_i)), which exists
// exactly when sigma*eps < beta*q; otherwise the mesh is globally uniform.
func Bakhvalov(f field.Field, l int, s, t, q, sigma, beta, eps field.Value) (*Mesh, error) {
	if l <= 0 {
		return nil, &InvalidArgumentError{Msg: "l must be positive"}
	}
	if !sigma.Mul(eps).LessThan(beta.Mul(q)) {
		return Uniform(f, l, s, t)
	}

	c := sigma.Mul(eps).Quo(beta)
	one := f.One()

	tau := f.Zero()
	for {
		tauI := tau
		num := c.Mul(one.Sub(tauI))
		den := one.Sub(chi(q, c, tauI))
		tau = q.Sub(num.Quo(den))
		if tau.Sub(tauI).IsZero() {
			break
		}
	}

	tMinusS := t.Sub(s)
	chiTau := chi(q, c, tau)
	xi := make([]field.Value, l+1)
	xi[0] = s

	for i := 1; i <= l; i++ {
		ri := f.FromInt64(int64(i)).Quo(f.FromInt64(int64(l)))
		if ri.LessThan(tau) {
			xi[i] = s.Add(chi(q, c, ri).Mul(tMinusS))
			continue
		}
		tail := c.Quo(q.Sub(tau)).Mul(ri.Sub(tau))
		xi[i] = s.Add(chiTau.Add(tail).Mul(tMinusS))
		step := t.Sub(xi[i]).Quo(f.FromInt64(int64(l - i)))
		for j := i + 1; j <= l; j++ {
			xi[j] = xi[j-1].Add(step)
		}
		break
	}
	xi[l] = t

	return &Mesh{f: f, xi: xi}, nil
}
