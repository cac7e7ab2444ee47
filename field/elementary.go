package field

import "math/big"

// workPrec returns a precision padded with guard bits for use in
// intermediate sums of a convergent series, so that cancellation in the
// tail does not erode the field's nominal precision.
func workPrec(bits uint) uint { return bits + 32 }

// tinyEnough reports whether term is small enough, relative to unit
// magnitude, to stop a series at the field's working precision.
func tinyEnough(term *big.Float, bits uint) bool {
	if term.Sign() == 0 {
		return true
	}
	exp := term.MantExp(nil)
	return exp < -int(bits)
}

// expSeries evaluates exp(x) by direct Taylor summation; the caller is
// responsible for ensuring |x| is small enough for fast convergence.
func expSeries(x *big.Float, bits uint) *big.Float {
	prec := workPrec(bits)
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	xp := new(big.Float).SetPrec(prec).Copy(x)
	for n := 1; n < 10000; n++ {
		term.Mul(term, xp)
		term.Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
		sum.Add(sum, term)
		if tinyEnough(term, bits) {
			break
		}
	}
	return sum
}

// Exp returns e^v, computed by halving the argument until it is small
// (|x| < 1/2) and squaring the Taylor-series result back up.
func (v *bigValue) Exp() Value {
	prec := workPrec(v.f.bits)
	x := new(big.Float).SetPrec(prec).Copy(v.x)
	neg := x.Sign() < 0
	if neg {
		x.Neg(x)
	}
	k := 0
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	for x.Cmp(half) > 0 {
		x.Quo(x, big.NewFloat(2))
		k++
	}
	r := expSeries(x, v.f.bits)
	for i := 0; i < k; i++ {
		r.Mul(r, r)
	}
	if neg {
		r.Quo(new(big.Float).SetPrec(prec).SetInt64(1), r)
	}
	r.SetPrec(v.f.bits)
	return v.wrap(r)
}

// lnSeries evaluates ln(1+u) by direct Taylor summation for |u| small.
func lnSeries(u *big.Float, bits uint) *big.Float {
	prec := workPrec(bits)
	sum := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec).Copy(u)
	up := new(big.Float).SetPrec(prec).Copy(u)
	for n := 1; n < 10000; n++ {
		contribution := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
		if n%2 == 0 {
			sum.Sub(sum, contribution)
		} else {
			sum.Add(sum, contribution)
		}
		if tinyEnough(contribution, bits) {
			break
		}
		term.Mul(term, up)
	}
	return sum
}

// Log returns the natural logarithm of v, which must be strictly positive.
// x is repeatedly square-rooted until it is close to 1, the Taylor series
// is evaluated there, and the result is scaled back up by the same power
// of two.
func (v *bigValue) Log() Value {
	if v.x.Sign() <= 0 {
		panic("field: Log of non-positive value")
	}
	prec := workPrec(v.f.bits)
	x := new(big.Float).SetPrec(prec).Copy(v.x)
	k := 0
	lo := new(big.Float).SetFloat64(0.75)
	hi := new(big.Float).SetFloat64(1.25)
	for x.Cmp(lo) < 0 || x.Cmp(hi) > 0 {
		x.Sqrt(x)
		k++
	}
	u := new(big.Float).SetPrec(prec).Sub(x, big.NewFloat(1))
	r := lnSeries(u, v.f.bits)
	scale := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), k)
	r.Mul(r, scale)
	r.SetPrec(v.f.bits)
	return v.wrap(r)
}

// atanSeries evaluates arctan(x) by direct Taylor summation for |x| small.
func atanSeries(x *big.Float, bits uint) *big.Float {
	prec := workPrec(bits)
	sum := new(big.Float).SetPrec(prec)
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).Copy(x)
	for n := 0; n < 10000; n++ {
		contribution := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(2*n+1)))
		if n%2 == 0 {
			sum.Add(sum, contribution)
		} else {
			sum.Sub(sum, contribution)
		}
		if tinyEnough(contribution, bits) {
			break
		}
		term.Mul(term, x2)
	}
	return sum
}

// pi computes π to the requested precision via Machin's formula,
// π = 16·arctan(1/5) − 4·arctan(1/239), both arguments small enough for the
// arctan Taylor series to converge quickly.
func pi(bits uint) *big.Float {
	prec := workPrec(bits)
	a := atanSeries(new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), big.NewFloat(5)), bits)
	b := atanSeries(new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), big.NewFloat(239)), bits)
	r := new(big.Float).SetPrec(prec)
	r.Mul(a, big.NewFloat(16))
	r.Sub(r, new(big.Float).SetPrec(prec).Mul(b, big.NewFloat(4)))
	return r
}

// sinCosSeries evaluates sin(x) and cos(x) together from their Taylor
// series for |x| already reduced to roughly [-π, π].
func sinCosSeries(x *big.Float, bits uint) (sin, cos *big.Float) {
	prec := workPrec(bits)
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)

	sinSum := new(big.Float).SetPrec(prec).Copy(x)
	sinTerm := new(big.Float).SetPrec(prec).Copy(x)
	cosSum := new(big.Float).SetPrec(prec).SetInt64(1)
	cosTerm := new(big.Float).SetPrec(prec).SetInt64(1)

	for n := 1; n < 10000; n++ {
		sinTerm.Mul(sinTerm, x2)
		sinTerm.Quo(sinTerm, new(big.Float).SetPrec(prec).SetInt64(int64(2*n*(2*n+1))))
		cosTerm.Mul(cosTerm, x2)
		cosTerm.Quo(cosTerm, new(big.Float).SetPrec(prec).SetInt64(int64((2*n-1)*(2*n))))
		if n%2 == 1 {
			sinSum.Sub(sinSum, sinTerm)
			cosSum.Sub(cosSum, cosTerm)
		} else {
			sinSum.Add(sinSum, sinTerm)
			cosSum.Add(cosSum, cosTerm)
		}
		if tinyEnough(sinTerm, bits) && tinyEnough(cosTerm, bits) {
			break
		}
	}
	return sinSum, cosSum
}

// reduceAngle brings x into [-π, π] by subtracting the nearest multiple of
// 2π, returning the reduced angle together with π itself; Sin and Cos use
// only the reduced angle.
func reduceAngle(x *big.Float, bits uint) (reduced, piVal *big.Float) {
	prec := workPrec(bits)
	piVal = pi(bits)
	twoPi := new(big.Float).SetPrec(prec).Mul(piVal, big.NewFloat(2))
	r := new(big.Float).SetPrec(prec).Copy(x)
	q := new(big.Float).SetPrec(prec).Quo(r, twoPi)
	qi, _ := q.Int(nil)
	qf := new(big.Float).SetPrec(prec).SetInt(qi)
	r.Sub(r, new(big.Float).SetPrec(prec).Mul(qf, twoPi))
	if r.Cmp(piVal) > 0 {
		r.Sub(r, twoPi)
	} else if r.Cmp(new(big.Float).SetPrec(prec).Neg(piVal)) < 0 {
		r.Add(r, twoPi)
	}
	return r, piVal
}

func (v *bigValue) Sin() Value {
	r, _ := reduceAngle(v.x, v.f.bits)
	sin, _ := sinCosSeries(r, v.f.bits)
	sin.SetPrec(v.f.bits)
	return v.wrap(sin)
}

func (v *bigValue) Cos() Value {
	r, _ := reduceAngle(v.x, v.f.bits)
	_, cos := sinCosSeries(r, v.f.bits)
	cos.SetPrec(v.f.bits)
	return v.wrap(cos)
}

func (v *bigValue) Sinh() Value {
	prec := workPrec(v.f.bits)
	ePos := v.Exp().(*bigValue).x
	eNeg := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), ePos)
	r := new(big.Float).SetPrec(prec).Sub(ePos, eNeg)
	r.Quo(r, big.NewFloat(2))
	r.SetPrec(v.f.bits)
	return v.wrap(r)
}

func (v *bigValue) Cosh() Value {
	prec := workPrec(v.f.bits)
	ePos := v.Exp().(*bigValue).x
	eNeg := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), ePos)
	r := new(big.Float).SetPrec(prec).Add(ePos, eNeg)
	r.Quo(r, big.NewFloat(2))
	r.SetPrec(v.f.bits)
	return v.wrap(r)
}
