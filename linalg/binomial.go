// Package linalg provides the scalar-field numerical building blocks the
// collocation assembler is built from: binomial coefficients, Gauss–Legendre
// quadrature nodes, a symmetric tridiagonal eigensolver, and the block
// banded linear solver that the assembled collocation system is solved
// with.
package linalg

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// Binomials caches C(n, 0..n) for a fixed n, computed once and reused by
// every derivative-order evaluation of a degree-n Bernstein segment.
type Binomials struct {
	n      int
	fld    field.Field
	values []field.Value
}

// NewBinomials computes C(n, k) for k = 0..n, exploiting the symmetry
// C(n, k) = C(n, n-k) so that only the smaller half is computed directly.
func NewBinomials(f field.Field, n int) *Binomials {
	values := make([]field.Value, n+1)
	for k := 0; k <= n; k++ {
		mirror := k
		if mirror > n-mirror {
			mirror = n - mirror
		}
		if mirror < k {
			values[k] = values[n-k]
			continue
		}
		values[k] = computeBinomial(f, n, mirror)
	}
	return &Binomials{n: n, fld: f, values: values}
}

// computeBinomial evaluates C(n, k) via the running-product recurrence
// b *= (n-j+1); b /= j for j = 1..k, which never needs an intermediate
// value larger than the final result.
func computeBinomial(f field.Field, n, k int) field.Value {
	b := f.One()
	m := f.FromInt64(int64(n))
	one := f.One()
	for j := 1; j <= k; j++ {
		b = b.Mul(m)
		b = b.Quo(f.FromInt64(int64(j)))
		m = m.Sub(one)
	}
	return b
}

// Get returns C(n, k). Panics if k is outside [0, n].
func (b *Binomials) Get(k int) field.Value {
	if k < 0 || k > b.n {
		panic(&IndexOutOfRangeError{Index: k, Len: b.n + 1, What: "binomial coefficient"})
	}
	return b.values[k]
}

// N returns the fixed degree this cache was built for.
func (b *Binomials) N() int { return b.n }

// IndexOutOfRangeError is a programmer-error panic payload, mirroring the
// accessor contract used throughout this package's caches.
type IndexOutOfRangeError struct {
	Index, Len int
	What       string
}

func (e *IndexOutOfRangeError) Error() string {
	return "linalg: index out of range"
}
