// Package quote prices a single deposit into or withdrawal from one claim of
// a pool. A Quoter holds no pool state: it reads a reserve.State and returns
// the state the operation would leave behind.
package quote

import (
	"fmt"
	"math"

	"github.com/calebcase/levpool/fee"
	"github.com/calebcase/levpool/quad"
	"github.com/calebcase/levpool/reserve"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/zeebo/errs"
)

var (
	// Error is the error class for invalid quote requests.
	Error = errs.Class("quote")

	// InsufficientReserve is returned when a withdrawal exceeds the claim's
	// reserve.
	InsufficientReserve = errs.Class("insufficient reserve")
)

// Kind of claim.
type Kind uint8

// Claim Kinds
const (
	Leverage Kind = iota
	Liquidity
)

func (k Kind) String() string {
	switch k {
	case Leverage:
		return "leverage"
	case Liquidity:
		return "liquidity"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Params of a pool.
type Params struct {
	LeverageFee  uint16
	LiquidityFee uint16
	Tax          uint8
	Tier         int8
}

// Quote is the outcome of one operation.
type Quote struct {
	Kind    Kind
	Deposit bool
	Amount  *uint256.Int

	Before reserve.Reserves
	After  reserve.Reserves

	Fee          fee.Result
	Distribution fee.Distribution

	// State is the pool state after the operation.
	State reserve.State
}

// Quoter prices operations for one pool. It is immutable and safe for
// concurrent use.
type Quoter struct {
	params Params
	log    zerolog.Logger
}

// Option configures a Quoter.
type Option func(q *Quoter)

// WithLogger sets the logger. Quotes are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(q *Quoter) {
		q.log = log
	}
}

// New returns a Quoter for params.
func New(params Params, opts ...Option) (*Quoter, error) {
	switch {
	case params.Tier == math.MinInt8:
		return nil, Error.New("invalid: tier=%d", params.Tier)
	case params.LeverageFee > fee.Denominator:
		return nil, Error.New("invalid: leverage fee=%d", params.LeverageFee)
	case params.LiquidityFee > fee.Denominator:
		return nil, Error.New("invalid: liquidity fee=%d", params.LiquidityFee)
	}

	q := &Quoter{
		params: params,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q, nil
}

// Params returns the pool parameters.
func (q *Quoter) Params() Params {
	return q.params
}

// Deposit quotes adding amount to the kind claim.
func (q *Quoter) Deposit(kind Kind, state reserve.State, currentTick int64, amount *uint256.Int) (*Quote, error) {
	return q.quote(kind, true, state, currentTick, amount)
}

// Withdraw quotes removing amount from the kind claim. The fee is taken out
// of amount.
func (q *Quoter) Withdraw(kind Kind, state reserve.State, currentTick int64, amount *uint256.Int) (*Quote, error) {
	return q.quote(kind, false, state, currentTick, amount)
}

func (q *Quoter) quote(kind Kind, deposit bool, state reserve.State, currentTick int64, amount *uint256.Int) (qt *Quote, err error) {
	defer func() {
		if err != nil {
			q.log.Warn().Err(err).Stringer("kind", kind).Bool("deposit", deposit).Msg("rejected")
		}
	}()

	k := q.params.Tier
	before := state.Split(currentTick, k)

	var own, other *uint256.Int
	var tier int8
	var basisFee uint16

	switch kind {
	case Leverage:
		own, other, tier, basisFee = before.Leverage, before.Liquidity, k, q.params.LeverageFee
	case Liquidity:
		own, other, tier, basisFee = before.Liquidity, before.Leverage, -k, q.params.LiquidityFee
	default:
		return nil, Error.New("unknown %s", kind)
	}

	res := fee.Compute(basisFee, deposit, amount, own, other, tier)
	dist := fee.Distribute(res.Fee, q.params.Tax)

	ownAfter := new(uint256.Int)
	if deposit {
		if _, overflow := ownAfter.AddOverflow(own, res.Net); overflow {
			return nil, quad.ArithmeticOverflow.New("%s reserve", kind)
		}
	} else {
		if amount.Gt(own) {
			return nil, InsufficientReserve.New("%s reserve %s < %s", kind, own.Dec(), amount.Dec())
		}
		ownAfter.Sub(own, amount)
	}

	after := reserve.Reserves{
		Leverage:  new(uint256.Int).Set(before.Leverage),
		Liquidity: new(uint256.Int).Set(before.Liquidity),
	}
	if kind == Leverage {
		after.Leverage = ownAfter
	} else {
		after.Liquidity = ownAfter
	}

	if _, overflow := after.Liquidity.AddOverflow(after.Liquidity, dist.Liquidity); overflow {
		return nil, quad.ArithmeticOverflow.New("liquidity reserve")
	}

	total, overflow := new(uint256.Int).AddOverflow(after.Leverage, after.Liquidity)
	if overflow {
		return nil, quad.ArithmeticOverflow.New("pool reserve")
	}

	qt = &Quote{
		Kind:         kind,
		Deposit:      deposit,
		Amount:       new(uint256.Int).Set(amount),
		Before:       before,
		After:        after,
		Fee:          res,
		Distribution: dist,
		State: reserve.State{
			Reserve:        total,
			SaturationTick: reserve.SaturationTick(after, currentTick, k),
		},
	}

	q.log.Debug().
		Stringer("kind", kind).
		Bool("deposit", deposit).
		Str("amount", amount.Dec()).
		Stringer("regime", res.Regime).
		Str("fee", res.Fee.Dec()).
		Str("reserve", total.Dec()).
		Int64("saturation", qt.State.SaturationTick).
		Msg("quote")

	return qt, nil
}
