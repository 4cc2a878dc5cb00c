package reserve

import (
	"math"
	"math/big"

	"github.com/calebcase/levpool/quad"
	"github.com/calebcase/levpool/tick"
)

var (
	minTick = big.NewInt(math.MinInt64)
	maxTick = big.NewInt(math.MaxInt64)
)

// SaturationTick returns the saturation tick at which Split reproduces r at
// currentTick. An empty leverage reserve gives tick.Max and an empty
// liquidity reserve gives tick.Min. The result is truncated toward zero and
// clamped to the int64 range.
func SaturationTick(r Reserves, currentTick int64, tier int8) int64 {
	switch {
	case r.Leverage.IsZero():
		return tick.Max
	case r.Liquidity.IsZero():
		return tick.Min
	}

	lev := r.Leverage.ToBig()
	liq := r.Liquidity.ToBig()
	total := new(big.Int).Add(lev, liq)
	k := int(tier)

	// Power zone when lev * (1+2^k) < total.
	num, den := scaled(total, lev, k)
	if num.Cmp(den) > 0 {
		return offset(currentTick, num, den, k, 1)
	}

	num, den = scaled(total, liq, -k)

	return offset(currentTick, num, den, -k, -1)
}

// scaled returns num / den = total / (part * (1+2^e)) with both sides
// integers.
func scaled(total, part *big.Int, e int) (num, den *big.Int) {
	if e >= 0 {
		l := new(big.Int).Lsh(big.NewInt(1), uint(e))
		l.Add(l, big.NewInt(1))

		return total, l.Mul(l, part)
	}

	num = new(big.Int).Lsh(total, uint(-e))

	l := new(big.Int).Lsh(big.NewInt(1), uint(-e))
	l.Add(l, big.NewInt(1))

	return num, l.Mul(l, part)
}

// offset returns currentTick + sign * log2(num/den) * 2^(42-e) / log2(1.0001).
func offset(currentTick int64, num, den *big.Int, e int, sign int) int64 {
	n := must(quad.FromUnsigned(num))
	d := must(quad.FromUnsigned(den))

	x := must(n.Div(d))
	x = must(x.Log2())
	x = must(x.Scale(tick.Frac - e))
	x = must(x.Div(tick.Log2Base()))

	ticks, err := x.ToSigned()
	if err != nil {
		panic(Error.Wrap(err))
	}

	if sign < 0 {
		ticks.Neg(ticks)
	}

	sat := ticks.Add(ticks, big.NewInt(currentTick))

	switch {
	case sat.Cmp(minTick) < 0:
		return tick.Min
	case sat.Cmp(maxTick) > 0:
		return tick.Max
	}

	return sat.Int64()
}
