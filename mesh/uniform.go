package mesh

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// Uniform returns the l+1 equally spaced knots s, s+h, ..., s+l*h = t with
// h = (t-s)/l, accumulated additively rather than by repeated
// multiplication so rounding stays consistent between adjacent knots.
func Uniform(f field.Field, l int, s, t field.Value) (*Mesh, error) {
	if l <= 0 {
		return nil, &InvalidArgumentError{Msg: "l must be positive"}
	}
	h := t.Sub(s).Quo(f.FromInt64(int64(l)))
	xi := make([]field.Value, l+1)
	xi[0] = s
	for i := 1; i <= l; i++ {
		xi[i] = xi[i-1].Add(h)
	}
	xi[l] = t
	return &Mesh{f: f, xi: xi}, nil
}
