package quad

import (
	"math"
	"math/big"
	"sync"
)

// workPrec is the precision used for the transcendental functions before the
// final rounding to binary128.
const workPrec = 192

var (
	ln2Once sync.Once
	ln2Val  *big.Float

	sqrtHalf = big.NewFloat(math.Sqrt2 / 2)
)

func work() *big.Float {
	return new(big.Float).SetPrec(workPrec)
}

func ln2() *big.Float {
	ln2Once.Do(func() {
		ln2Val = lnNear1(work().SetInt64(2))
	})

	return ln2Val
}

// lnNear1 returns ln(m) = 2 atanh((m-1)/(m+1)) for m > 0. The series is
// fast for m close to one and keeps full relative precision there.
func lnNear1(m *big.Float) *big.Float {
	one := work().SetInt64(1)

	z := work().Sub(m, one)
	if z.Sign() == 0 {
		return z
	}
	z.Quo(z, work().Add(m, one))

	z2 := work().Mul(z, z)
	limit := z.MantExp(nil) - workPrec - 2

	sum := work().Set(z)
	pow := work().Set(z)
	term := work()

	for k := int64(3); ; k += 2 {
		pow.Mul(pow, z2)
		term.Quo(pow, work().SetInt64(k))

		if term.Sign() == 0 || term.MantExp(nil) < limit {
			break
		}

		sum.Add(sum, term)
	}

	return sum.SetMantExp(sum, 1)
}

// expSmall returns e^y for 0 <= y < 1 by its Taylor series.
func expSmall(y *big.Float) *big.Float {
	sum := work().SetInt64(1)
	term := work().SetInt64(1)

	for k := int64(1); ; k++ {
		term.Mul(term, y)
		term.Quo(term, work().SetInt64(k))

		if term.Sign() == 0 || term.MantExp(nil) < -workPrec-2 {
			break
		}

		sum.Add(sum, term)
	}

	return sum
}

// log2Big returns log2(v) for v > 0 at working precision.
func log2Big(v *big.Float) *big.Float {
	m := work()
	e := v.MantExp(m)

	// Keep m within [sqrt(1/2), sqrt(2)) so the integer and fractional parts
	// of the result never cancel.
	if m.Cmp(sqrtHalf) < 0 {
		m.SetMantExp(m, 1)
		e--
	}

	r := lnNear1(m)
	r.Quo(r, ln2())

	return r.Add(r, work().SetInt64(int64(e)))
}

// Pow2 returns 2^x.
func (x Float) Pow2() (Float, error) {
	p, err := x.operand()
	if err != nil {
		return NaN, err
	}

	switch {
	case p.class == ClassZero:
		return One, nil
	case p.class == ClassInf && p.neg:
		return Zero, nil
	case p.class == ClassInf:
		return Inf, nil
	case p.exp >= 15 && p.neg:
		// |x| >= 2^15 is past both ends of the exponent range.
		return Zero, nil
	case p.exp >= 15:
		return Inf, nil
	}

	v := p.value()

	n, acc := v.Int64()
	if acc == big.Above {
		n--
	}

	f := work().Sub(v, work().SetInt64(n))
	r := expSmall(f.Mul(f, ln2()))

	return fromBig(r.SetMantExp(r, int(n))), nil
}

// Log2 returns log2(x). Zero gives -Inf and a negative x gives NaN.
func (x Float) Log2() (Float, error) {
	p, err := x.operand()
	if err != nil {
		return NaN, err
	}

	switch {
	case p.class == ClassZero:
		return NegInf, nil
	case p.neg:
		return NaN, nil
	case p.class == ClassInf:
		return Inf, nil
	case x == One:
		return Zero, nil
	}

	return fromBig(log2Big(p.value())), nil
}

// Log2Ratio returns log2(num / den) with num / den taken exactly, which is
// more precise than dividing two Floats first.
func Log2Ratio(num, den uint64) (Float, error) {
	switch {
	case den == 0:
		return NaN, InvalidOperand.New("zero denominator")
	case num == 0:
		return NegInf, nil
	case num == den:
		return Zero, nil
	}

	v := work().SetUint64(num)
	v.Quo(v, work().SetUint64(den))

	return fromBig(log2Big(v)), nil
}
