package collocate

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// MuCache precomputes mu_j^r := mu(tau_j)^r for every collocation point
// tau_j and every exponent r = 1, ..., k+1 needed by the assembler's row
// formulas, where mu(x) = (x - xi_i) / (xi_{i+1} - xi_i) for the
// subinterval i that tau_j belongs to.
//
// Get exposes both mu_j^exponent and (1-mu_j)^exponent from the same
// underlying storage: Gauss-Legendre nodes are symmetric about 0, so the
// (j+1)-th collocation point's complement 1-mu_j equals mu at the mirrored
// collocation index within the same subinterval, sparing the cache from
// storing two full copies.
type MuCache struct {
	k      int
	values [][]field.Value // values[idx][r] = mu_idx^(r+1), r = 0..k
}

// IndexOutOfRangeError is a programmer-error panic payload for Get, mirroring
// the teacher-style bounds-checked accessor convention used throughout this
// module.
type IndexOutOfRangeError struct {
	Exponent int
}

func (e *IndexOutOfRangeError) Error() string { return "collocate: mu exponent out of range" }

// NewMuCache builds the cache for l subintervals worth of collocation
// points (tau, l*k entries) against the mesh knots that produced them.
func NewMuCache(f field.Field, tau []field.Value, xi []field.Value, k int) *MuCache {
	l := len(xi) - 1
	values := make([][]field.Value, l*k)
	for i := 0; i < l; i++ {
		lo, width := xi[i], xi[i+1].Sub(xi[i])
		for j := 0; j < k; j++ {
			idx := i*k + j
			mu1 := tau[idx].Sub(lo).Quo(width)
			row := make([]field.Value, k+1)
			row[0] = mu1
			for r := 1; r <= k; r++ {
				row[r] = row[r-1].Mul(mu1)
			}
			values[idx] = row
		}
	}
	return &MuCache{k: k, values: values}
}

// Get returns mu_j^exponent (invers = false) or (1-mu_j)^exponent (invers =
// true) for the j-th (1-indexed, 1..k) collocation point of subinterval i
// (0-indexed). exponent must be in [-1, k+1]; exponent == -1 returns the
// reciprocal of the first power, exponent == 0 returns the field's one.
func (c *MuCache) Get(f field.Field, i, j, exponent int, invers bool) field.Value {
	if exponent < -1 || exponent > c.k+1 {
		panic(&IndexOutOfRangeError{Exponent: exponent})
	}
	if exponent == 0 {
		return f.One()
	}
	var idx int
	if invers {
		idx = (i+1)*c.k - j
	} else {
		idx = i*c.k + j - 1
	}
	if exponent == -1 {
		return c.values[idx][0].Reciprocal()
	}
	return c.values[idx][exponent-1]
}
