// Package fee computes the fee charged on deposits into and withdrawals from
// one claim of a pool, and splits it between stakers, the protocol and
// liquidity providers.
package fee

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Denominator of a basis fee.
const Denominator = 10_000

var denominator = uint256.NewInt(Denominator)

// Regime of a fee computation.
type Regime uint8

// Fee Regimes
const (
	NoFee Regime = iota
	PartialFee
	FullFee
)

func (r Regime) String() string {
	switch r {
	case NoFee:
		return "none"
	case PartialFee:
		return "partial"
	case FullFee:
		return "full"
	}

	return fmt.Sprintf("regime(%d)", uint8(r))
}

// Result of a fee computation. Net + Fee is always the requested amount.
type Result struct {
	Net    *uint256.Int
	Fee    *uint256.Int
	Regime Regime
}

// Ideal returns the own reserve at which a claim is balanced against the
// other: other / 2^tier, saturating at 2^256-1 for negative tiers.
func Ideal(other *uint256.Int, tier int8) *uint256.Int {
	if tier >= 0 {
		return new(uint256.Int).Rsh(other, uint(tier))
	}

	m := uint(-int(tier))
	if !other.IsZero() && uint(other.BitLen())+m > 256 {
		return new(uint256.Int).SetAllOne()
	}

	return new(uint256.Int).Lsh(other, m)
}

// Compute returns the fee on moving amount into (deposit) or out of the own
// reserve. Only the part of amount that moves the own reserve away from its
// ideal pays the fee.
func Compute(basisFee uint16, deposit bool, amount, own, other *uint256.Int, tier int8) Result {
	ideal := Ideal(other, tier)

	var taxed *uint256.Int

	if deposit {
		switch {
		case !own.Lt(ideal):
			return full(basisFee, amount, tier)
		case !amount.Gt(new(uint256.Int).Sub(ideal, own)):
			return none(amount)
		}

		taxed = new(uint256.Int).Sub(ideal, own)
		taxed.Sub(amount, taxed)
	} else {
		switch {
		case !own.Gt(ideal):
			return none(amount)
		case !amount.Gt(new(uint256.Int).Sub(own, ideal)):
			return full(basisFee, amount, tier)
		}

		taxed = new(uint256.Int).Sub(own, ideal)
	}

	f := Full(taxed, basisFee, tier)

	return Result{
		Net:    new(uint256.Int).Sub(amount, f),
		Fee:    f,
		Regime: PartialFee,
	}
}

func none(amount *uint256.Int) Result {
	return Result{
		Net:    new(uint256.Int).Set(amount),
		Fee:    new(uint256.Int),
		Regime: NoFee,
	}
}

func full(basisFee uint16, amount *uint256.Int, tier int8) Result {
	f := Full(amount, basisFee, tier)

	return Result{
		Net:    new(uint256.Int).Sub(amount, f),
		Fee:    f,
		Regime: FullFee,
	}
}

// Full returns the fee when all of amount pays it. The fee is charged on the
// net amount, fee = basisFee * 2^tier * net / 10000, and is rounded up.
func Full(amount *uint256.Int, basisFee uint16, tier int8) *uint256.Int {
	if amount.IsZero() || basisFee == 0 {
		return new(uint256.Int)
	}

	num := uint256.NewInt(uint64(basisFee))
	den := new(uint256.Int).Set(denominator)

	// Scale whichever side keeps both terms integral.
	if tier >= 0 {
		num.Lsh(num, uint(tier))
	} else {
		den.Lsh(den, uint(-int(tier)))
	}

	den.Add(den, num)

	z, _ := new(uint256.Int).MulDivOverflow(amount, num, den)
	if !new(uint256.Int).MulMod(amount, num, den).IsZero() {
		z.AddUint64(z, 1)
	}

	return z
}
