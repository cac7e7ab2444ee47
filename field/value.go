package field

import "math/big"

// Value is an element of a Field. Values are immutable: every operation
// returns a new Value rather than mutating the receiver.
type Value interface {
	Field() Field

	Add(Value) Value
	Sub(Value) Value
	Mul(Value) Value
	Quo(Value) Value
	Reciprocal() Value
	Neg() Value
	Abs() Value
	Sqrt() Value
	PowInt(n int) Value
	Exp() Value
	Log() Value
	Sin() Value
	Cos() Value
	Sinh() Value
	Cosh() Value
	Floor() Value
	NextAfter(to Value) Value

	Cmp(Value) int
	LessThan(Value) bool
	GreaterThan(Value) bool
	Equals(Value) bool
	IsZero() bool

	Float64() float64
	String() string
}

type bigValue struct {
	f *bigField
	x *big.Float
}

// PrecisionMismatchError reports a binary operation between Values
// constructed from two different Fields. Arithmetic has no error return in
// its signature (spec matches Go's own numeric operators), so a mismatch is
// a panic.
type PrecisionMismatchError struct {
	Got, Want uint
}

func (e *PrecisionMismatchError) Error() string {
	return "field: mismatched field precision"
}

func (v *bigValue) other(o Value) *bigValue {
	w, ok := o.(*bigValue)
	if !ok || w.f != v.f {
		var got uint
		if ok {
			got = w.f.bits
		}
		panic(&PrecisionMismatchError{Got: got, Want: v.f.bits})
	}
	return w
}

func (v *bigValue) Field() Field { return v.f }

func (v *bigValue) wrap(x *big.Float) Value { return &bigValue{f: v.f, x: x} }

func (v *bigValue) Add(o Value) Value {
	w := v.other(o)
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Add(v.x, w.x))
}

func (v *bigValue) Sub(o Value) Value {
	w := v.other(o)
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Sub(v.x, w.x))
}

func (v *bigValue) Mul(o Value) Value {
	w := v.other(o)
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Mul(v.x, w.x))
}

func (v *bigValue) Quo(o Value) Value {
	w := v.other(o)
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Quo(v.x, w.x))
}

func (v *bigValue) Reciprocal() Value {
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Quo(big.NewFloat(1), v.x))
}

func (v *bigValue) Neg() Value {
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Neg(v.x))
}

func (v *bigValue) Abs() Value {
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Abs(v.x))
}

func (v *bigValue) Sqrt() Value {
	return v.wrap(new(big.Float).SetPrec(v.f.bits).Sqrt(v.x))
}

func (v *bigValue) PowInt(n int) Value {
	if n < 0 {
		return v.Reciprocal().PowInt(-n)
	}
	result := new(big.Float).SetPrec(v.f.bits).SetInt64(1)
	base := new(big.Float).SetPrec(v.f.bits).Copy(v.x)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	return v.wrap(result)
}

func (v *bigValue) Floor() Value {
	if v.x.Sign() == 0 {
		return v.wrap(new(big.Float).SetPrec(v.f.bits))
	}
	i := new(big.Int)
	v.x.Int(i)
	r := new(big.Float).SetPrec(v.f.bits).SetInt(i)
	if v.x.Sign() < 0 && r.Cmp(v.x) != 0 {
		r.Sub(r, big.NewFloat(1))
	}
	return v.wrap(r)
}

// NextAfter returns the adjacent representable Value in the direction of to,
// stepping by one unit in the last place of the mantissa.
func (v *bigValue) NextAfter(to Value) Value {
	w := v.other(to)
	c := v.x.Cmp(w.x)
	if c == 0 {
		return v.wrap(new(big.Float).SetPrec(v.f.bits).Copy(v.x))
	}
	mant := new(big.Float).SetPrec(v.f.bits)
	exp := v.x.MantExp(mant)
	// ulp = 2^(exp - prec) in the direction of travel.
	ulp := new(big.Float).SetPrec(v.f.bits).SetMantExp(big.NewFloat(1), exp-int(v.f.bits))
	// Moving toward zero from a power of two, the spacing below is half as
	// large.
	if (c > 0) == (v.x.Sign() > 0) && new(big.Float).Abs(mant).Cmp(big.NewFloat(0.5)) == 0 {
		ulp.SetMantExp(ulp, -1)
	}
	r := new(big.Float).SetPrec(v.f.bits)
	if c < 0 {
		r.Add(v.x, ulp)
	} else {
		r.Sub(v.x, ulp)
	}
	return v.wrap(r)
}

func (v *bigValue) Cmp(o Value) int {
	w := v.other(o)
	return v.x.Cmp(w.x)
}

func (v *bigValue) LessThan(o Value) bool    { return v.Cmp(o) < 0 }
func (v *bigValue) GreaterThan(o Value) bool { return v.Cmp(o) > 0 }
func (v *bigValue) Equals(o Value) bool      { return v.Cmp(o) == 0 }
func (v *bigValue) IsZero() bool             { return v.x.Sign() == 0 }

func (v *bigValue) Float64() float64 {
	f, _ := v.x.Float64()
	return f
}

func (v *bigValue) String() string {
	return v.x.Text('g', v.f.digits)
}
