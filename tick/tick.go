// Package tick converts X42 fixed point ticks into price ratios.
//
// A tick t is the price 1.0001^(t / 2^42). Ticks are int64 values whose low
// 42 bits are the fractional part:
//
//	| Bits  | Meaning         |
//	| ----- | --------------- |
//	| 63    | sign            |
//	| 62-42 | whole ticks     |
//	| 41-0  | fraction        |
//
// The extreme int64 values are reserved as sentinels and never denote a
// price.
package tick

import (
	"math"
	"math/big"

	"github.com/calebcase/levpool/quad"
	"lukechampine.com/uint128"
)

// Frac is the number of fractional bits in a tick.
const Frac = 42

// Sentinel ticks.
const (
	Min int64 = math.MinInt64
	Max int64 = math.MaxInt64
)

// Bits of the X64 ratio fraction.
const ratioFrac = 64

var log2Base quad.Float

func init() {
	var err error

	log2Base, err = quad.Log2Ratio(10001, 10000)
	if err != nil {
		panic(err)
	}
}

// Log2Base returns log2(1.0001).
func Log2Base() quad.Float {
	return log2Base
}

// Exponent returns ticks / 2^42 * log2(1.0001) * 2^k, the power of two that
// ticks X42 ticks scaled by 2^k correspond to.
func Exponent(ticks *big.Int, k int) (quad.Float, error) {
	x, err := quad.FromSigned(ticks)
	if err != nil {
		return quad.NaN, err
	}

	x, err = x.Scale(k - Frac)
	if err != nil {
		return quad.NaN, err
	}

	return x.Mul(log2Base)
}

// RatioAtTick returns 1.0001^(tickX42 / 2^42) as an unsigned X64 fixed point
// number rounded down or up. overflow is set when the ratio does not fit in
// 128 bits, ratioX64 is zero then.
func RatioAtTick(tickX42 int64, roundUp bool) (overflow bool, ratioX64 uint128.Uint128) {
	r, err := ratioAtTick(tickX42, roundUp)
	if err != nil || r.BitLen() > 128 {
		return true, uint128.Zero
	}

	lo := r.Uint64()
	hi := r.Rsh(r, 64).Uint64()

	return false, uint128.New(lo, hi)
}

func ratioAtTick(tickX42 int64, roundUp bool) (*big.Int, error) {
	x, err := Exponent(big.NewInt(tickX42), 0)
	if err != nil {
		return nil, err
	}

	p, err := x.Pow2()
	if err != nil {
		return nil, err
	}

	p, err = p.Scale(ratioFrac)
	if err != nil {
		return nil, err
	}

	if roundUp {
		return p.ToUnsignedRoundUp()
	}

	return p.ToUnsigned()
}
