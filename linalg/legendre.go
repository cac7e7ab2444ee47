package linalg

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// GaussLegendreNodes returns the k roots of the degree-k Legendre
// polynomial, i.e. the nodes of k-point Gauss–Legendre quadrature on
// [-1, 1], sorted ascending. They are computed as the eigenvalues of the
// symmetric tridiagonal Jacobi matrix for the Legendre recurrence, whose
// zero main diagonal follows from the recurrence's symmetry about 0 and
// whose sub-diagonal entries are beta_j = j / sqrt(4j^2 - 1).
func GaussLegendreNodes(f field.Field, k int) ([]field.Value, error) {
	if k <= 0 {
		return nil, &InvalidArgumentError{Msg: "k must be positive"}
	}
	sub := make([]field.Value, k)
	for j := 1; j <= k; j++ {
		num := f.FromInt64(int64(j))
		four := f.FromInt64(4)
		jj := f.FromInt64(int64(j)).Mul(f.FromInt64(int64(j)))
		den := four.Mul(jj).Sub(f.One()).Sqrt()
		sub[j-1] = num.Quo(den)
	}
	nodes, err := TridiagonalEigenvalues(f, sub)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// InvalidArgumentError reports an illegal constructor argument to one of
// this package's routines.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return "linalg: invalid argument: " + e.Msg }
