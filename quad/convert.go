package quad

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

var bigOne = big.NewInt(1)

// FromUnsigned converts x truncating any bits past the 113 most significant
// ones. Negative x fails with NegativeValue.
func FromUnsigned(x *big.Int) (Float, error) {
	if x.Sign() < 0 {
		return Zero, NegativeValue.New("%s", x)
	}

	return fromInt(false, x, false)
}

// FromUnsignedRoundUp converts x like FromUnsigned but moves the result up by
// one unit in the last place when a dropped bit was set.
func FromUnsignedRoundUp(x *big.Int) (Float, error) {
	if x.Sign() < 0 {
		return Zero, NegativeValue.New("%s", x)
	}

	return fromInt(false, x, true)
}

// FromSigned converts x truncating its magnitude toward zero.
func FromSigned(x *big.Int) (Float, error) {
	return fromInt(x.Sign() < 0, new(big.Int).Abs(x), false)
}

// FromInt64 converts x. math.MinInt64 has no positive counterpart and fails
// with ArithmeticOverflow.
func FromInt64(x int64) (Float, error) {
	if x == math.MinInt64 {
		return Zero, ArithmeticOverflow.New("cannot negate %d", x)
	}

	if x < 0 {
		return fromInt(true, new(big.Int).SetInt64(-x), false)
	}

	return fromInt(false, new(big.Int).SetInt64(x), false)
}

// FromUint64 converts x exactly.
func FromUint64(x uint64) Float {
	f, _ := fromInt(false, new(big.Int).SetUint64(x), false)

	return f
}

// FromUint256 converts x truncating.
func FromUint256(x *uint256.Int) Float {
	f, _ := fromInt(false, x.ToBig(), false)

	return f
}

// FromUint256RoundUp converts x rounding up.
func FromUint256RoundUp(x *uint256.Int) Float {
	f, _ := fromInt(false, x.ToBig(), true)

	return f
}

func fromInt(neg bool, abs *big.Int, up bool) (Float, error) {
	n := abs.BitLen()
	if n == 0 {
		return Zero, nil
	}

	mant := new(big.Int).Set(abs)

	shift := n - precision
	if shift > 0 {
		dropped := mant.TrailingZeroBits() < uint(shift)
		mant.Rsh(mant, uint(shift))

		if up && dropped {
			mant.Add(mant, bigOne)

			if mant.BitLen() > precision {
				mant.Rsh(mant, 1)
				shift++
			}
		}
	} else {
		mant.Lsh(mant, uint(-shift))
	}

	exp := shift + mantBits
	if exp > maxExp {
		return Zero, ArithmeticOverflow.New("%d bits", n)
	}

	return pack(neg, exp, mant), nil
}

// ToUnsigned returns the integer part of x. Negative zero converts to zero.
func (x Float) ToUnsigned() (*big.Int, error) {
	return x.toUnsigned(false)
}

// ToUnsignedRoundUp returns the smallest integer not below x.
func (x Float) ToUnsignedRoundUp() (*big.Int, error) {
	return x.toUnsigned(true)
}

// ToUint256 is ToUnsigned bounded to 256 bits.
func (x Float) ToUint256() (*uint256.Int, error) {
	return x.toUint256(false)
}

// ToUint256RoundUp is ToUnsignedRoundUp bounded to 256 bits.
func (x Float) ToUint256RoundUp() (*uint256.Int, error) {
	return x.toUint256(true)
}

// ToSigned returns the integer part of x, truncated toward zero.
func (x Float) ToSigned() (*big.Int, error) {
	p, err := x.operand()
	if err != nil {
		return nil, err
	}

	switch p.class {
	case ClassInf:
		return nil, NonFiniteValue.New("%s", x)
	case ClassZero:
		return new(big.Int), nil
	}

	z := p.integer(false)
	if p.neg {
		z.Neg(z)
	}

	return z, nil
}

func (x Float) toUnsigned(up bool) (*big.Int, error) {
	p, err := x.operand()
	if err != nil {
		return nil, err
	}

	switch {
	case p.class == ClassInf:
		return nil, NonFiniteValue.New("%s", x)
	case p.class == ClassZero:
		return new(big.Int), nil
	case p.neg:
		return nil, NegativeValue.New("%s", x)
	}

	return p.integer(up), nil
}

func (x Float) toUint256(up bool) (*uint256.Int, error) {
	i, err := x.toUnsigned(up)
	if err != nil {
		return nil, err
	}

	z, overflow := uint256.FromBig(i)
	if overflow {
		return nil, ArithmeticOverflow.New("%d bits", i.BitLen())
	}

	return z, nil
}

// integer returns the magnitude of a normal number as an integer, rounded
// toward zero or up.
func (p parts) integer(up bool) *big.Int {
	z := new(big.Int).Set(p.mant)

	shift := p.exp - mantBits
	if shift >= 0 {
		return z.Lsh(z, uint(shift))
	}

	frac := z.TrailingZeroBits() < uint(-shift)
	z.Rsh(z, uint(-shift))

	if up && frac {
		z.Add(z, bigOne)
	}

	return z
}
