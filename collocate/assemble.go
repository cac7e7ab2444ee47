package collocate

import (
	"github.com/BjoernLudwigPTB/bezier-kollokation/field"
	"github.com/BjoernLudwigPTB/bezier-kollokation/linalg"
	"github.com/BjoernLudwigPTB/bezier-kollokation/mesh"
)

// System is the assembled collocation linear system: l*(k+2) banded rows
// (two boundary rows, two continuity rows per interior knot, k collocation
// rows per subinterval) together with its right-hand side.
type System struct {
	Rows []linalg.BandRow
	B    []field.Value
}

// DimensionMismatchError reports that the block Structure computed for
// l, k does not cover l*(k+2) rows — a programmer error in Structure
// itself, never triggered by caller input.
type DimensionMismatchError struct {
	Got, Want int
}

func (e *DimensionMismatchError) Error() string { return "collocate: dimension mismatch" }

// Assemble builds the collocation system for
// -eps*y'' - p*y' + q*y = f on m, y(s) = eta1, y(t) = eta2, using the k
// Gauss-Legendre collocation points per subinterval recorded in tau/mu.
// The unknowns are the l*(k+2) Bézier ordinates b_{i,0}, ..., b_{i,k+1},
// i = 0, ..., l-1, of the piecewise segments, ordered subinterval by
// subinterval.
//
// eps = -1 recovers the classical convenience form y'' - p*y' + q*y = f
// of the source's older assembler; it is not otherwise special-cased.
func Assemble(f field.Field, m *mesh.Mesh, k int, eps, eta1, eta2 field.Value, tau []field.Value, mu *MuCache, p, q, rhs func(field.Value) field.Value) (*System, error) {
	l := m.L()
	n := l * (k + 2)
	rowTotal := 0
	for _, blk := range linalg.Structure(l, k) {
		rowTotal += blk.Rows
	}
	if rowTotal != n {
		return nil, &DimensionMismatchError{Got: rowTotal, Want: n}
	}

	rows := make([]linalg.BandRow, n)
	b := make([]field.Value, n)
	one := f.One()
	zero := f.Zero()
	two := f.Two()
	negOne := one.Neg()

	rows[0] = linalg.BandRow{Start: 0, Values: []field.Value{one}}
	b[0] = eta1
	rows[n-1] = linalg.BandRow{Start: n - 1, Values: []field.Value{one}}
	b[n-1] = eta2

	binomM := linalg.NewBinomials(f, k-1)
	binomK := linalg.NewBinomials(f, k)
	binomP := linalg.NewBinomials(f, k+1)

	logger := linalg.Logger()

	var prevDeltaXi field.Value
	for i := 0; i < l; i++ {
		base := i * (k + 2)
		deltaXi := m.Knot(i + 1).Sub(m.Knot(i))
		logger.Debug("collocate: assembling subinterval", "index", i, "base", base, "deltaXi", deltaXi.Float64())

		if i > 0 {
			rows[base-1] = linalg.BandRow{
				Start: base - 2,
				Values: []field.Value{
					deltaXi,
					prevDeltaXi.Add(deltaXi).Neg(),
					zero,
					prevDeltaXi,
				},
			}
			b[base-1] = zero

			rows[base] = linalg.BandRow{
				Start:  base - 2,
				Values: []field.Value{zero, one, negOne, zero},
			}
			b[base] = zero
		}
		prevDeltaXi = deltaXi

		deltaXiSqr := deltaXi.Mul(deltaXi)
		kPrime := deltaXi.Reciprocal().Mul(f.FromInt64(int64(k + 1)))
		epsKDivDeltaSqr := eps.Mul(f.FromInt64(int64(k))).Quo(deltaXiSqr)
		kTwo := epsKDivDeltaSqr.Mul(f.FromInt64(int64(k + 1)))

		for j := 1; j <= k; j++ {
			tauij := tau[i*k+(j-1)]
			pJ := p(tauij)
			qJ := q(tauij)

			muMinus1 := mu.Get(f, i, j, 1, true)
			muMinus2 := mu.Get(f, i, j, 2, true)
			muPlus1 := mu.Get(f, i, j, 1, false)
			muPlus2 := mu.Get(f, i, j, 2, false)

			col0 := mu.Get(f, i, j, k-1, true).Mul(
				pJ.Mul(kPrime).Mul(muMinus1).
					Add(qJ.Mul(muMinus2)).
					Sub(kTwo))

			colLast := mu.Get(f, i, j, k-1, false).Mul(
				qJ.Mul(muPlus2).
					Sub(pJ.Mul(kPrime).Mul(muPlus1)).
					Sub(kTwo))

			vals := make([]field.Value, k+2)
			vals[0] = col0
			vals[k+1] = colLast

			col1 := mu.Get(f, i, j, k-2, true).Mul(f.FromInt64(int64(k + 1))).Mul(
				epsKDivDeltaSqr.
					Mul(two.Sub(f.FromInt64(int64(k + 1)).Mul(muPlus1))).
					Sub(pJ.Quo(deltaXi).
						Mul(one.Sub(f.FromInt64(int64(k + 1)).Mul(muPlus1))).
						Mul(muMinus1)).
					Add(qJ.Mul(muMinus2).Mul(muPlus1)))

			colK := mu.Get(f, i, j, k-2, false).Mul(f.FromInt64(int64(k + 1))).Mul(
				epsKDivDeltaSqr.
					Mul(two.Sub(f.FromInt64(int64(k + 1)).Mul(muMinus1))).
					Add(pJ.Quo(deltaXi).
						Mul(one.Sub(f.FromInt64(int64(k + 1)).Mul(muMinus1))).
						Mul(muPlus1)).
					Add(qJ.Mul(muPlus2).Mul(muMinus1)))

			if k == 1 {
				vals[1] = col1.Add(colK)
			} else {
				vals[1] = col1
				vals[k] = colK

				for kappa := 2; kappa < k; kappa++ {
					kappaTerm := kTwo.Mul(
						two.Mul(binomM.Get(kappa - 1)).Mul(muMinus1).Mul(muPlus1).
							Sub(binomM.Get(kappa - 2).Mul(muMinus2)).
							Sub(binomM.Get(kappa).Mul(muPlus2))).
						Mul(mu.Get(f, i, j, k-1-kappa, true)).
						Mul(mu.Get(f, i, j, kappa-2, false))

					pTerm := pJ.Mul(kPrime).Mul(
						binomP.Get(kappa).Mul(muPlus1).Neg().Add(binomK.Get(kappa - 1))).
						Mul(mu.Get(f, i, j, k-kappa, true)).
						Mul(mu.Get(f, i, j, kappa-1, false)).Neg()

					qTerm := qJ.Mul(binomP.Get(kappa)).
						Mul(mu.Get(f, i, j, k+1-kappa, true)).
						Mul(mu.Get(f, i, j, kappa, false))

					vals[kappa] = kappaTerm.Add(pTerm).Add(qTerm)
				}
			}

			rows[base+j] = linalg.BandRow{Start: base, Values: vals}
			b[base+j] = rhs(tauij)
		}
	}

	return &System{Rows: rows, B: b}, nil
}
