package tick

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/levpool/quad"
	"github.com/calebcase/oops"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

const refDigits = 60

var two64 = new(big.Int).Lsh(big.NewInt(1), 64)

// refRatio returns 1.0001^(t / 2^42) * 2^64.
func refRatio(t *testing.T, tickX42 int64) decimal.Decimal {
	t.Helper()

	ln, err := decimal.RequireFromString("1.0001").Ln(refDigits + 20)
	require.NoError(t, err)

	x := ln.Mul(decimal.NewFromInt(tickX42)).DivRound(decimal.NewFromInt(1<<Frac), refDigits+20)

	r, err := x.ExpTaylor(refDigits)
	require.NoError(t, err)

	return r.Mul(decimal.NewFromBigInt(two64, 0))
}

func TestRatioAtTickZero(t *testing.T) {
	for _, up := range []bool{false, true} {
		overflow, r := RatioAtTick(0, up)
		require.False(t, overflow)
		require.Equal(t, uint128.New(0, 1), r)
	}
}

func TestRatioAtTickAccuracy(t *testing.T) {
	ticks := []int64{
		1,
		-1,
		1 << 41,
		-(1 << 41),
		1 << Frac,
		-1 << Frac,
		100 << Frac,
		-100 << Frac,
		12345<<Frac + 98765,
		-12345<<Frac - 98765,
		200_000 << Frac,
		-200_000 << Frac,
		443_636 << Frac,
	}

	for i, tickX42 := range ticks {
		mark := oops.New("unexpected")

		t.Run(fmt.Sprintf("[%d]%d", i, tickX42), func(t *testing.T) {
			ref := refRatio(t, tickX42)
			slack := ref.Div(decimal.NewFromBigInt(two64, 0)).Add(decimal.NewFromInt(1))

			overflow, down := RatioAtTick(tickX42, false)
			require.False(t, overflow, mark)

			overflow, up := RatioAtTick(tickX42, true)
			require.False(t, overflow, mark)

			d := decimal.NewFromBigInt(down.Big(), 0)
			u := decimal.NewFromBigInt(up.Big(), 0)

			require.True(t, d.Sub(ref).Abs().LessThanOrEqual(slack), "down %s ref %s: %v", d, ref, mark)
			require.True(t, u.Sub(ref).Abs().LessThanOrEqual(slack), "up %s ref %s: %v", u, ref, mark)

			gap := u.Sub(d)
			require.True(t, gap.Equal(decimal.Zero) || gap.Equal(decimal.NewFromInt(1)), "gap %s: %v", gap, mark)
		})
	}
}

func TestRatioAtTickMonotonic(t *testing.T) {
	prev := uint128.Zero

	for tickX42 := int64(-5 << Frac); tickX42 <= 5<<Frac; tickX42 += 1 << 39 {
		overflow, r := RatioAtTick(tickX42, false)
		require.False(t, overflow)
		require.True(t, prev.Cmp(r) < 0, "%d: %s >= %s", tickX42, prev, r)

		prev = r
	}
}

func TestRatioAtTickOverflow(t *testing.T) {
	type TC struct {
		name     string
		tickX42  int64
		up       bool
		overflow bool
		ratio    uint128.Uint128
	}

	tcs := []TC{
		{name: "first overflowing tick", tickX42: 443_637 << Frac, overflow: true},
		{name: "first overflowing tick up", tickX42: 443_637 << Frac, up: true, overflow: true},
		{name: "max", tickX42: Max, overflow: true},
		{name: "min", tickX42: Min, ratio: uint128.Zero},
		{name: "min up", tickX42: Min, up: true, ratio: uint128.From64(1)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			overflow, r := RatioAtTick(tc.tickX42, tc.up)
			require.Equal(t, tc.overflow, overflow)
			require.Equal(t, tc.ratio, r)
		})
	}
}

func TestExponent(t *testing.T) {
	x, err := Exponent(big.NewInt(1<<Frac), 0)
	require.NoError(t, err)
	require.Equal(t, Log2Base(), x)

	x, err = Exponent(big.NewInt(1<<Frac), 3)
	require.NoError(t, err)

	want, err := Log2Base().Scale(3)
	require.NoError(t, err)
	require.Equal(t, want, x)

	x, err = Exponent(big.NewInt(-1<<Frac), 0)
	require.NoError(t, err)
	require.Equal(t, Log2Base().Neg(), x)

	x, err = Exponent(new(big.Int), 5)
	require.NoError(t, err)
	require.Equal(t, quad.Zero, x)

	// Differences of two extreme ticks need 65 bits.
	wide := new(big.Int).Sub(big.NewInt(Max), big.NewInt(Min))
	x, err = Exponent(wide, 0)
	require.NoError(t, err)

	sign, err := x.Sign()
	require.NoError(t, err)
	require.Equal(t, 1, sign)
}
