// Package mesh builds the layer-adapted knot sequences the collocation
// assembler is solved on: uniform, Shishkin (convection and reaction
// variants), Bakhvalov, and uniform r-fold refinement of an existing mesh.
package mesh

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// Mesh is an ordered sequence of l+1 knots s = xi[0] < xi[1] < ... <
// xi[l] = t partitioning [s, t] into l subintervals.
type Mesh struct {
	f  field.Field
	xi []field.Value
}

// L returns the number of subintervals.
func (m *Mesh) L() int { return len(m.xi) - 1 }

// Knots returns the l+1 knots, ordered ascending. The returned slice is a
// copy; mutating it does not affect the Mesh.
func (m *Mesh) Knots() []field.Value {
	cp := make([]field.Value, len(m.xi))
	copy(cp, m.xi)
	return cp
}

// Knot returns the i-th knot, 0 <= i <= L().
func (m *Mesh) Knot(i int) field.Value { return m.xi[i] }

// Field returns the field this mesh's knots were constructed in.
func (m *Mesh) Field() field.Field { return m.f }

// InvalidArgumentError reports an illegal mesh constructor argument.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return "mesh: invalid argument: " + e.Msg }
