package reserve

import (
	"math/big"

	"github.com/calebcase/levpool/quad"
	"github.com/calebcase/levpool/tick"
	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the error class for failures that the split cannot recover from.
var Error = errs.Class("reserve")

// State is the persistent state of a pool.
type State struct {
	Reserve        *uint256.Int
	SaturationTick int64
}

// Split divides the pool reserve at currentTick.
func (s State) Split(currentTick int64, tier int8) Reserves {
	return Split(s.Reserve, currentTick, s.SaturationTick, tier)
}

// Reserves are the shares of the leverage and liquidity claims.
type Reserves struct {
	Leverage  *uint256.Int
	Liquidity *uint256.Int
}

// Total returns Leverage + Liquidity. The sum wraps past 2^256.
func (r Reserves) Total() *uint256.Int {
	return new(uint256.Int).Add(r.Leverage, r.Liquidity)
}

// Split divides total between the two claims. Both shares are at least one
// unit when total is at least two and they always add up to total.
func Split(total *uint256.Int, currentTick, saturationTick int64, tier int8) Reserves {
	one := uint256.NewInt(1)

	var lev, liq *uint256.Int

	switch {
	case total.IsZero():
		return Reserves{
			Leverage:  new(uint256.Int),
			Liquidity: new(uint256.Int),
		}
	case saturationTick == tick.Min:
		liq = one
		lev = new(uint256.Int).Sub(total, liq)
	case saturationTick == tick.Max:
		lev = one
		liq = new(uint256.Int).Sub(total, lev)
	case currentTick < saturationTick:
		lev = share(total, diff(currentTick, saturationTick), int(tier))
		lev = clamp(lev, total)
		liq = new(uint256.Int).Sub(total, lev)
	default:
		liq = share(total, diff(saturationTick, currentTick), -int(tier))
		liq = clamp(liq, total)
		lev = new(uint256.Int).Sub(total, liq)
	}

	return Reserves{
		Leverage:  lev,
		Liquidity: liq,
	}
}

func diff(a, b int64) *big.Int {
	return new(big.Int).Sub(big.NewInt(a), big.NewInt(b))
}

// share returns total / (1+2^e) * 1.0001^(d * 2^e / 2^42) for d <= 0.
func share(total *uint256.Int, d *big.Int, e int) *uint256.Int {
	x := must(tick.Exponent(d, e))
	p := must(x.Pow2())

	v := must(quad.FromUint256(total).Mul(p))
	v = must(v.Div(must(quad.One.Add(must(quad.One.Scale(e))))))

	z, err := v.ToUint256()
	if err != nil {
		panic(Error.Wrap(err))
	}

	return z
}

// clamp keeps a computed share within [1, total-1] for total >= 2 and within
// [0, total] otherwise.
func clamp(z, total *uint256.Int) *uint256.Int {
	if total.LtUint64(2) {
		if z.Gt(total) {
			return new(uint256.Int).Set(total)
		}

		return z
	}

	if z.IsZero() {
		return uint256.NewInt(1)
	}

	last := new(uint256.Int).SubUint64(total, 1)
	if z.Gt(last) {
		return last
	}

	return z
}

// must unwraps results of quad operations on finite normal inputs, which
// cannot fail.
func must(x quad.Float, err error) quad.Float {
	if err != nil {
		panic(Error.Wrap(err))
	}

	return x
}
