package linalg

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// SingularMatrixError reports a zero row-sum (a structurally empty row) or
// a column with no nonzero candidate pivot.
type SingularMatrixError struct {
	Row int
}

func (e *SingularMatrixError) Error() string { return "linalg: singular matrix" }

// DimensionMismatchError reports a right-hand side whose length disagrees
// with the number of rows supplied to SolveBanded.
type DimensionMismatchError struct {
	Got, Want int
}

func (e *DimensionMismatchError) Error() string { return "linalg: dimension mismatch" }

// BandRow is one equation of an almost block diagonal system, stored
// compactly: Values[j] is the coefficient of the unknown at column
// Start+j. Rows from the same collocation block overlap in their column
// ranges; rows from distant blocks do not, which is what keeps elimination
// local instead of touching the full dense matrix.
type BandRow struct {
	Start  int
	Values []field.Value
}

// activeRow tracks a row's compact storage as elimination proceeds: its
// leading column advances and its value slice is trimmed each time its
// leading column is eliminated, and the slice is widened on the right when
// a pivot row used against it extends past its last stored column.
type activeRow struct {
	start  int
	vals   []field.Value
	rhs    field.Value
	rowSum field.Value
}

// SolveBanded solves the n x n almost block diagonal system described by
// rows/b using scaled column pivoting: at each step the candidate row
// maximizing |pivot entry| / row-sum is chosen, where each row's scale
// factor (row-sum) is computed once, from its original coefficients,
// before any elimination touches it — matching the Martin-Wilkinson/de Boor
// banded solver's column-scaled partial pivoting, specialized to the
// compact per-row storage an almost block diagonal matrix allows.
func SolveBanded(f field.Field, n int, rows []BandRow, b []field.Value) ([]field.Value, error) {
	if len(rows) != n {
		return nil, &DimensionMismatchError{Got: len(rows), Want: n}
	}
	if len(b) != n {
		return nil, &DimensionMismatchError{Got: len(b), Want: n}
	}

	logger := Logger()
	trace := ActiveTrace()

	active := make([]*activeRow, n)
	rowSums := make([]float64, n)
	for i, r := range rows {
		sum := f.Zero()
		for _, v := range r.Values {
			sum = sum.Add(v.Abs())
		}
		if sum.IsZero() {
			return nil, &SingularMatrixError{Row: i}
		}
		vals := make([]field.Value, len(r.Values))
		copy(vals, r.Values)
		active[i] = &activeRow{start: r.Start, vals: vals, rhs: b[i], rowSum: sum}
		rowSums[i] = sum.Float64()
	}
	logger.Debug("linalg: row-sums computed", "n", n, "rowSums", rowSums)
	if trace != nil {
		trace.Block(0, rowSums)
	}

	used := make([]bool, n)
	pivotOf := make([]*activeRow, n)

	for c := 0; c < n; c++ {
		bestIdx := -1
		var bestScore field.Value
		for i, r := range active {
			if used[i] || c < r.start || c >= r.start+len(r.vals) {
				continue
			}
			val := r.vals[c-r.start]
			if val.IsZero() {
				continue
			}
			score := val.Abs().Quo(r.rowSum)
			if bestIdx == -1 || score.GreaterThan(bestScore) {
				bestIdx, bestScore = i, score
			}
		}
		if bestIdx == -1 {
			return nil, &SingularMatrixError{Row: c}
		}

		pivot := active[bestIdx]
		used[bestIdx] = true
		pivotVal := pivot.vals[c-pivot.start]
		logger.Debug("linalg: pivot chosen", "col", c, "row", bestIdx, "score", bestScore.Float64())
		if trace != nil {
			trace.Pivot(bestIdx)
		}

		for i, r := range active {
			if used[i] || c < r.start || c >= r.start+len(r.vals) {
				continue
			}
			rv := r.vals[c-r.start]
			if rv.IsZero() {
				continue
			}
			ratio := rv.Quo(pivotVal)
			// Widen r so it can hold the pivot row's fill-in.
			if end := pivot.start + len(pivot.vals); end > r.start+len(r.vals) {
				wider := make([]field.Value, end-r.start)
				copy(wider, r.vals)
				for j := len(r.vals); j < len(wider); j++ {
					wider[j] = f.Zero()
				}
				r.vals = wider
			}
			for j, pv := range pivot.vals {
				col := pivot.start + j
				if col < r.start || col >= r.start+len(r.vals) {
					continue
				}
				idx := col - r.start
				r.vals[idx] = r.vals[idx].Sub(ratio.Mul(pv))
			}
			r.rhs = r.rhs.Sub(ratio.Mul(pivot.rhs))
			if r.start == c {
				r.start++
				r.vals = r.vals[1:]
			}
		}
		pivotOf[c] = pivot
	}

	x := make([]field.Value, n)
	for c := n - 1; c >= 0; c-- {
		r := pivotOf[c]
		sum := r.rhs
		pivotVal := r.vals[c-r.start]
		for idx := c - r.start + 1; idx < len(r.vals); idx++ {
			col := r.start + idx
			sum = sum.Sub(r.vals[idx].Mul(x[col]))
		}
		x[c] = sum.Quo(pivotVal)
	}
	return x, nil
}

// Block describes one stage of the almost block diagonal matrix produced
// by the collocation assembler: Rows consecutive equations and Cols, the
// number of pivot steps (unknowns eliminated) taken in that stage. Over a
// whole Structure both Rows and Cols sum to l*(k+2).
type Block struct {
	Rows, Cols int
}

// Structure returns the block layout for an l-subinterval, degree-(k+1)
// collocation system: l*(k+2) equations in total, grouped into a leading
// block, alternating continuity/collocation blocks, and a trailing block
// whose width accounts for the right boundary condition (with a narrower
// k=1 trailing pair, since a single continuity row has no interior
// collocation row to pair with).
func Structure(l, k int) []Block {
	if l == 1 {
		return []Block{{k + 2, k + 2}}
	}
	blocks := make([]Block, 2*l-1)
	blocks[0] = Block{k + 1, k}
	for i := 1; i < l; i++ {
		blocks[2*i-1] = Block{2, 2}
		blocks[2*i] = Block{k, k}
	}
	last := len(blocks) - 1
	if k == 1 {
		blocks[last-1] = Block{k, k}
		blocks[last] = Block{3, 4}
	} else {
		blocks[last] = Block{k + 1, k + 2}
	}
	return blocks
}
