// Package bvp computes high-accuracy approximations of singularly
// perturbed two-point boundary value problems
//
//	-eps*y''(x) - p(x)*y'(x) + q(x)*y(x) = f(x),  x in [s,t],  y(s)=eta1, y(t)=eta2
//
// by Bézier collocation on a layer-adapted mesh (see the mesh package),
// returning a globally C1 piecewise Bernstein-Bézier spline (see the
// bezier package). Solve is the single entry point; mesh, field and
// bezier are usable independently of it.
package bvp

import (
	"github.com/BjoernLudwigPTB/bezier-kollokation/bezier"
	"github.com/BjoernLudwigPTB/bezier-kollokation/collocate"
	"github.com/BjoernLudwigPTB/bezier-kollokation/field"
	"github.com/BjoernLudwigPTB/bezier-kollokation/linalg"
	"github.com/BjoernLudwigPTB/bezier-kollokation/mesh"
)

// Solve assembles and solves the collocation system for m with k
// Gauss-Legendre collocation points per subinterval, returning the
// resulting spline approximation. eps = -1 recovers the classical
// convenience form y'' - p*y' + q*y = f.
//
// Mixing field.Values constructed from two different precisions (m's
// field versus eps/eta1/eta2, or versus whatever p/q/f return) panics
// inside field.Value's arithmetic, since Value has no error return of its
// own (see field/value.go's PrecisionMismatchError doc). Solve recovers
// that specific panic and reports it as a *PrecisionMismatchError instead,
// so a caller of Solve never needs to catch a panic to detect it.
func Solve(k int, m *mesh.Mesh, eps, eta1, eta2 field.Value, p, q, f func(field.Value) field.Value) (result *bezier.Spline, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*field.PrecisionMismatchError)
			if !ok {
				panic(r)
			}
			result, err = nil, NewPrecisionMismatch(pe.Got, pe.Want)
		}
	}()
	return solve(k, m, eps, eta1, eta2, p, q, f)
}

func solve(k int, m *mesh.Mesh, eps, eta1, eta2 field.Value, p, q, f func(field.Value) field.Value) (*bezier.Spline, error) {
	if k < 1 {
		return nil, NewInvalidArgument("k must be >= 1, got %d", k)
	}

	fld := m.Field()
	nodes, err := linalg.GaussLegendreNodes(fld, k)
	if err != nil {
		return nil, wrapLinalgError(err)
	}

	xi := m.Knots()
	tau := collocate.CollocationPoints(fld, m, nodes)
	mu := collocate.NewMuCache(fld, tau, xi, k)

	sys, err := collocate.Assemble(fld, m, k, eps, eta1, eta2, tau, mu, p, q, f)
	if err != nil {
		if de, ok := err.(*collocate.DimensionMismatchError); ok {
			return nil, NewDimensionMismatch(de.Got, de.Want)
		}
		return nil, err
	}

	n := m.L() * (k + 2)
	x, err := linalg.SolveBanded(fld, n, sys.Rows, sys.B)
	if err != nil {
		return nil, wrapLinalgError(err)
	}

	l := m.L()
	segments := make([]*bezier.Segment, l)
	for i := 0; i < l; i++ {
		b := x[i*(k+2) : (i+1)*(k+2)]
		segments[i] = bezier.NewSegment(fld, b, xi[i], xi[i+1])
	}

	spline, err := bezier.NewSpline(xi, segments)
	if err != nil {
		return nil, err
	}
	return spline, nil
}

// wrapLinalgError translates the linalg package's local error types into
// bvp's public error kinds, so callers never need to import linalg just to
// type-switch on a Solve error.
func wrapLinalgError(err error) error {
	switch e := err.(type) {
	case *linalg.SingularMatrixError:
		return NewSingularMatrix(e.Row)
	case *linalg.DimensionMismatchError:
		return NewDimensionMismatch(e.Got, e.Want)
	case *linalg.ConvergenceFailedError:
		return NewConvergenceFailed(e.MaxSweeps)
	case *linalg.InvalidArgumentError:
		return NewInvalidArgument("%s", e.Msg)
	default:
		return err
	}
}
