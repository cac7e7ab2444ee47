package mesh

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// Refine returns a mesh r times finer than base: every subinterval of base
// is split into r equal parts, so the result has r*base.L()+1 knots and
// reproduces every knot of base at index r*i.
func Refine(base *Mesh, r int) (*Mesh, error) {
	if r <= 0 {
		return nil, &InvalidArgumentError{Msg: "r must be positive"}
	}
	f := base.f
	oldXi := base.xi
	newLen := r*(len(oldXi)-1) + 1
	xi := make([]field.Value, newLen)
	xi[0] = oldXi[0]
	for i := 1; i < len(oldXi); i++ {
		xi[r*i] = oldXi[i]
		step := oldXi[i].Sub(oldXi[i-1]).Quo(f.FromInt64(int64(r)))
		for j := 1; j < r; j++ {
			xi[r*(i-1)+j] = xi[r*(i-1)+(j-1)].Add(step)
		}
	}
	return &Mesh{f: f, xi: xi}, nil
}
