package bezier

import "github.com/BjoernLudwigPTB/bezier-kollokation/field"

// Spline is a globally continuous (and, when built from a collocation
// solution, C1) piecewise Bézier function: l segments delimited by l+1
// ascending knots. Evaluating outside [knots[0], knots[l]] extends the
// first or last segment rather than erroring.
type Spline struct {
	knots    []field.Value
	segments []*Segment
	l        int
}

// DimensionMismatchError reports a Segments/Knots length disagreement when
// constructing a Spline.
type DimensionMismatchError struct {
	Got, Want int
}

func (e *DimensionMismatchError) Error() string { return "bezier: dimension mismatch" }

// NewSpline builds a spline from l+1 ascending knots and l segments, one
// per subinterval. Both slices are copied.
func NewSpline(knots []field.Value, segments []*Segment) (*Spline, error) {
	if len(knots) < 2 {
		return nil, &DimensionMismatchError{Got: len(knots), Want: 2}
	}
	if len(segments) != len(knots)-1 {
		return nil, &DimensionMismatchError{Got: len(segments), Want: len(knots) - 1}
	}
	k := make([]field.Value, len(knots))
	copy(k, knots)
	s := make([]*Segment, len(segments))
	copy(s, segments)
	return &Spline{knots: k, segments: s, l: len(s)}, nil
}

// interval returns the index of the segment responsible for x: values
// below knots[1] (or a single-segment spline) use segment 0; otherwise the
// segment whose right knot is the first one exceeding x.
func (sp *Spline) interval(x field.Value) int {
	if x.LessThan(sp.knots[1]) || len(sp.knots) == 2 {
		return 0
	}
	i := 1
	for ; i < sp.l-1; i++ {
		if x.LessThan(sp.knots[i+1]) {
			break
		}
	}
	return i
}

// Value evaluates the spline at x.
func (sp *Spline) Value(x field.Value) field.Value {
	return sp.segments[sp.interval(x)].Value(x)
}

// Derivative evaluates the nu-th derivative of the spline at x.
func (sp *Spline) Derivative(x field.Value, nu int) field.Value {
	return sp.segments[sp.interval(x)].Derivative(x, nu)
}

// Knots returns a copy of the l+1 segment delimiters.
func (sp *Spline) Knots() []field.Value {
	cp := make([]field.Value, len(sp.knots))
	copy(cp, sp.knots)
	return cp
}

// Segments returns a copy of the l constituent segments.
func (sp *Spline) Segments() []*Segment {
	cp := make([]*Segment, len(sp.segments))
	copy(cp, sp.segments)
	return cp
}
