// Package collocate assembles the Bézier collocation linear system: the
// Gauss–Legendre collocation points for each mesh subinterval, the μ-power
// cache the assembler's closed-form row formulas are built from, and the
// assembler itself, which produces the banded rows linalg.SolveBanded
// consumes.
package collocate

import (
	"github.com/BjoernLudwigPTB/bezier-kollokation/field"
	"github.com/BjoernLudwigPTB/bezier-kollokation/mesh"
)

// CollocationPoints maps the k Gauss–Legendre nodes (ascending, in (-1,1))
// onto every subinterval of m, producing the l*k strictly increasing
// collocation points tau_1, ..., tau_{l*k} used by the assembler. tau[i*k+j]
// (0-indexed) is the (j+1)-th collocation point of subinterval i.
func CollocationPoints(f field.Field, m *mesh.Mesh, nodes []field.Value) []field.Value {
	l := m.L()
	k := len(nodes)
	two := f.Two()
	tau := make([]field.Value, l*k)
	for i := 0; i < l; i++ {
		lo, hi := m.Knot(i), m.Knot(i+1)
		plus := lo.Add(hi)
		minus := hi.Sub(lo)
		for j := 0; j < k; j++ {
			tau[i*k+j] = plus.Add(minus.Mul(nodes[j])).Quo(two)
		}
	}
	return tau
}
