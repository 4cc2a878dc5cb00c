package quad

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

const (
	bias      = 16383
	mantBits  = 112
	precision = mantBits + 1

	minExp = 1 - bias
	maxExp = bias

	// Biased exponent of the infinities and NaN.
	specialExp = 0x7FFF
)

const (
	signMask   uint64 = 1 << 63
	expShift          = 48
	fracHiMask uint64 = 1<<expShift - 1
)

// Float is an immutable binary128 value. Two Floats are equal under == when
// their bit patterns are equal.
type Float struct {
	hi uint64
	lo uint64
}

var (
	Zero    = Float{}
	NegZero = Float{hi: signMask}
	One     = Float{hi: bias << expShift}
	Inf     = Float{hi: specialExp << expShift}
	NegInf  = Float{hi: signMask | specialExp<<expShift}
	NaN     = Float{hi: specialExp<<expShift | 1<<(expShift-1)}
)

// FromBits returns the Float with the given bit pattern.
func FromBits(hi, lo uint64) Float {
	return Float{hi: hi, lo: lo}
}

// Bits returns the bit pattern of x.
func (x Float) Bits() (hi, lo uint64) {
	return x.hi, x.lo
}

// Class of a bit pattern.
type Class uint8

// Float Classes
const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInf
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInf:
		return "inf"
	case ClassNaN:
		return "nan"
	}

	return fmt.Sprintf("class(%d)", uint8(c))
}

// Class returns the class of x.
func (x Float) Class() Class {
	exp := (x.hi >> expShift) & specialExp
	frac := x.hi&fracHiMask != 0 || x.lo != 0

	switch {
	case exp == 0 && !frac:
		return ClassZero
	case exp == 0:
		return ClassSubnormal
	case exp == specialExp && !frac:
		return ClassInf
	case exp == specialExp:
		return ClassNaN
	}

	return ClassNormal
}

// Signbit reports whether the sign bit of x is set.
func (x Float) Signbit() bool {
	return x.hi&signMask != 0
}

// IsNaN reports whether x is NaN.
func (x Float) IsNaN() bool {
	return x.Class() == ClassNaN
}

// IsInf reports whether x is an infinity of either sign.
func (x Float) IsInf() bool {
	return x.Class() == ClassInf
}

// Neg returns x with the sign bit flipped.
func (x Float) Neg() Float {
	return Float{hi: x.hi ^ signMask, lo: x.lo}
}

// Abs returns x with the sign bit cleared.
func (x Float) Abs() Float {
	return Float{hi: x.hi &^ signMask, lo: x.lo}
}

// parts is the decoded form of a Float. exp and mant are only set for
// ClassNormal; mant carries the implicit leading one.
type parts struct {
	class Class
	neg   bool
	exp   int
	mant  *big.Int
}

func (x Float) unpack() parts {
	p := parts{
		class: x.Class(),
		neg:   x.Signbit(),
	}

	if p.class != ClassNormal {
		return p
	}

	p.exp = int((x.hi>>expShift)&specialExp) - bias

	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], x.hi&fracHiMask|1<<expShift)
	binary.BigEndian.PutUint64(buf[8:], x.lo)
	p.mant = new(big.Int).SetBytes(buf[:])

	return p
}

// operand decodes x for use as an input, rejecting NaN and subnormals.
func (x Float) operand() (p parts, err error) {
	p = x.unpack()

	switch p.class {
	case ClassNaN:
		return p, InvalidOperand.New("nan")
	case ClassSubnormal:
		return p, InvalidOperand.New("subnormal: %s", x.hex())
	}

	return p, nil
}

// pack encodes a normal number. mant must have exactly precision bits and exp
// must be within [minExp, maxExp].
func pack(neg bool, exp int, mant *big.Int) Float {
	var buf [16]byte
	new(big.Int).SetBit(mant, mantBits, 0).FillBytes(buf[:])

	x := Float{
		hi: binary.BigEndian.Uint64(buf[:8]) | uint64(exp+bias)<<expShift,
		lo: binary.BigEndian.Uint64(buf[8:]),
	}
	if neg {
		x.hi |= signMask
	}

	return x
}

// value returns the exact value of a zero or normal number.
func (p parts) value() *big.Float {
	z := new(big.Float).SetPrec(precision)

	if p.class == ClassNormal {
		z.SetInt(p.mant)
		z.SetMantExp(z, p.exp-mantBits)
	}

	if p.neg {
		z.Neg(z)
	}

	return z
}

// fromBig rounds v to nearest even at binary128 precision. Results past the
// largest finite value become infinities, results below the smallest normal
// become zero.
func fromBig(v *big.Float) Float {
	r := new(big.Float).SetMode(big.ToNearestEven).SetPrec(precision).Set(v)
	neg := r.Signbit()

	switch {
	case r.IsInf() && neg:
		return NegInf
	case r.IsInf():
		return Inf
	case r.Sign() == 0 && neg:
		return NegZero
	case r.Sign() == 0:
		return Zero
	}

	mant := new(big.Float)
	exp := r.MantExp(mant) - 1

	switch {
	case exp > maxExp && neg:
		return NegInf
	case exp > maxExp:
		return Inf
	case exp < minExp && neg:
		return NegZero
	case exp < minExp:
		return Zero
	}

	mant.SetMantExp(mant, precision)
	m, _ := mant.Int(nil)

	return pack(neg, exp, m.Abs(m))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Float) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 16)
	binary.BigEndian.PutUint64(data[:8], x.hi)
	binary.BigEndian.PutUint64(data[8:], x.lo)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Float) UnmarshalBinary(data []byte) (err error) {
	if len(data) != 16 {
		return Error.New("invalid: size=%d", len(data))
	}

	x.hi = binary.BigEndian.Uint64(data[:8])
	x.lo = binary.BigEndian.Uint64(data[8:])

	return nil
}

func (x Float) hex() string {
	return fmt.Sprintf("0x%016x%016x", x.hi, x.lo)
}

// String formats x in decimal with enough digits to identify it.
func (x Float) String() string {
	p := x.unpack()

	switch p.class {
	case ClassNaN:
		return "NaN"
	case ClassSubnormal:
		return "subnormal(" + x.hex() + ")"
	case ClassInf:
		if p.neg {
			return "-Inf"
		}

		return "+Inf"
	}

	return p.value().Text('g', 36)
}
