package linalg

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// maxEigenSweeps bounds the number of QL sweeps allowed per eigenvalue
// before giving up and reporting ConvergenceFailedError.
const maxEigenSweeps = 30

// ConvergenceFailedError reports that the implicit QL sweep for one
// eigenvalue exceeded maxEigenSweeps.
type ConvergenceFailedError struct {
	MaxSweeps int
}

func (e *ConvergenceFailedError) Error() string {
	return "linalg: tridiagonal eigensolver did not converge"
}

// TridiagonalEigenvalues computes the eigenvalues of the real symmetric
// tridiagonal matrix with zero main diagonal and off-diagonal sub given by
// sub[0..n-2] (sub has n entries; sub[n-1] is never read, matching the
// Jacobi matrix construction used by Gauss–Legendre node generation, where
// the caller always passes one more sub-diagonal slot than is meaningful).
// It implements the implicit QL algorithm with Wilkinson shift, and returns
// the n eigenvalues sorted ascending.
func TridiagonalEigenvalues(f field.Field, sub []field.Value) ([]field.Value, error) {
	n := len(sub)
	zero := f.Zero()
	one := f.One()
	two := f.Two()

	eigen := make([]field.Value, n)
	neben := make([]field.Value, n)
	for i := range eigen {
		eigen[i] = zero
		neben[i] = sub[i]
	}

	for j := 0; j < n; j++ {
		iter := 0
		for {
			m := j
			for ; m < n-1; m++ {
				delta := eigen[m].Abs().Add(eigen[m+1].Abs())
				if neben[m].Abs().Add(delta).Equals(delta) {
					break
				}
			}
			if m == j {
				break
			}
			iter++
			if iter > maxEigenSweeps {
				return nil, &ConvergenceFailedError{MaxSweeps: maxEigenSweeps}
			}

			q := eigen[j+1].Sub(eigen[j]).Quo(two.Mul(neben[j]))
			t := one.Add(q.Mul(q)).Sqrt()
			if q.LessThan(zero) {
				q = eigen[m].Sub(eigen[j]).Add(neben[j].Quo(q.Sub(t)))
			} else {
				q = eigen[m].Sub(eigen[j]).Add(neben[j].Quo(q.Add(t)))
			}

			s := one
			c := one
			u := zero
			for i := m - 1; i >= j; i-- {
				p := s.Mul(neben[i])
				h := c.Mul(neben[i])
				if p.Abs().GreaterThan(q.Abs()) || p.Abs().Equals(q.Abs()) {
					c = q.Quo(p)
					t = one.Add(c.Mul(c)).Sqrt()
					neben[i+1] = p.Mul(t)
					s = one.Quo(t)
					c = c.Mul(s)
				} else {
					s = p.Quo(q)
					t = one.Add(s.Mul(s)).Sqrt()
					neben[i+1] = q.Mul(t)
					c = one.Quo(t)
					s = s.Mul(c)
				}
				q = eigen[i+1].Sub(u)
				t = eigen[i].Sub(q).Mul(s).Add(two.Mul(c).Mul(h))
				u = s.Mul(t)
				eigen[i+1] = q.Add(u)
				q = c.Mul(t).Sub(h)
				if neben[i+1].IsZero() {
					break
				}
			}
			eigen[j] = eigen[j].Sub(u)
			neben[j] = q
			neben[m] = zero
		}
	}

	// Stable ascending insertion sort, matching the manual selection used
	// by the routine this is grounded on rather than a library sort.
	for i := 1; i < n; i++ {
		key := eigen[i]
		k := i - 1
		for k >= 0 && eigen[k].GreaterThan(key) {
			eigen[k+1] = eigen[k]
			k--
		}
		eigen[k+1] = key
	}

	return eigen, nil
}
