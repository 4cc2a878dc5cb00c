package quad

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

var maxFinite = FromBits(0x7FFE_FFFF_FFFF_FFFF, 0xFFFF_FFFF_FFFF_FFFF)

func big2(n uint, add int64) *big.Int {
	return new(big.Int).Add(pow2(n), big.NewInt(add))
}

func fromBigInt(t *testing.T, x *big.Int) Float {
	t.Helper()

	f, err := FromSigned(x)
	require.NoError(t, err)

	return f
}

func TestArithmetic(t *testing.T) {
	type Op func(x, y Float) (Float, error)

	add := Float.Add
	sub := Float.Sub
	mul := Float.Mul
	div := Float.Div

	half := mustScale(One, -1)
	two := FromUint64(2)
	three := FromUint64(3)

	type TC struct {
		name string
		op   Op
		x, y Float
		want Float
	}

	tcs := []TC{
		{name: "1+2", op: add, x: One, y: two, want: three},
		{name: "3-2", op: sub, x: three, y: two, want: One},
		{name: "2-3", op: sub, x: two, y: three, want: One.Neg()},
		{name: "3*0.5", op: mul, x: three, y: half, want: mustScale(three, -1)},
		{name: "3/2", op: div, x: three, y: two, want: mustScale(three, -1)},
		{name: "-3*-2", op: mul, x: three.Neg(), y: two.Neg(), want: FromUint64(6)},

		// Round to nearest, ties to even.
		{name: "2^112+1", op: add, x: One, y: mustScale(One, 112), want: fromBigInt(t, big2(112, 1))},
		{name: "2^113+1", op: add, x: mustScale(One, 113), y: One, want: mustScale(One, 113)},
		{name: "2^113+3", op: add, x: mustScale(One, 113), y: three, want: fromBigInt(t, big2(113, 4))},
		{name: "2^113+2.5", op: add, x: mustScale(One, 113), y: mustScale(FromUint64(5), -1), want: fromBigInt(t, big2(113, 2))},

		// Signed zeros.
		{name: "+0 + -0", op: add, x: Zero, y: NegZero, want: Zero},
		{name: "-0 + -0", op: add, x: NegZero, y: NegZero, want: NegZero},
		{name: "x - x", op: sub, x: three, y: three, want: Zero},
		{name: "-1 * 0", op: mul, x: One.Neg(), y: Zero, want: NegZero},
		{name: "0 / -1", op: div, x: Zero, y: One.Neg(), want: NegZero},

		// Infinities.
		{name: "inf + 1", op: add, x: Inf, y: One, want: Inf},
		{name: "1 - inf", op: sub, x: One, y: Inf, want: NegInf},
		{name: "inf + inf", op: add, x: Inf, y: Inf, want: Inf},
		{name: "-inf * 2", op: mul, x: NegInf, y: two, want: NegInf},
		{name: "1 / 0", op: div, x: One, y: Zero, want: Inf},
		{name: "1 / -0", op: div, x: One, y: NegZero, want: NegInf},
		{name: "1 / inf", op: div, x: One, y: Inf, want: Zero},
		{name: "-1 / inf", op: div, x: One.Neg(), y: Inf, want: NegZero},

		// Range.
		{name: "max * 2", op: mul, x: maxFinite, y: two, want: Inf},
		{name: "-max - max", op: sub, x: maxFinite.Neg(), y: maxFinite, want: NegInf},
		{name: "min / 2", op: div, x: mustScale(One, minExp), y: two, want: Zero},
		{name: "-min / 2", op: div, x: mustScale(One, minExp).Neg(), y: two, want: NegZero},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			got, err := tc.op(tc.x, tc.y)
			require.NoError(t, err)
			if got != tc.want {
				t.Logf("got: %s", spew.Sdump(got.unpack()))
				t.Logf("want: %s", spew.Sdump(tc.want.unpack()))
			}
			require.Equal(t, tc.want, got, "%s != %s", got, tc.want)
		})
	}
}

func TestArithmeticNaN(t *testing.T) {
	type TC struct {
		name string
		op   func(x, y Float) (Float, error)
		x, y Float
	}

	tcs := []TC{
		{name: "inf - inf", op: Float.Sub, x: Inf, y: Inf},
		{name: "inf + -inf", op: Float.Add, x: Inf, y: NegInf},
		{name: "inf * 0", op: Float.Mul, x: Inf, y: Zero},
		{name: "0 * -inf", op: Float.Mul, x: Zero, y: NegInf},
		{name: "0 / 0", op: Float.Div, x: Zero, y: NegZero},
		{name: "inf / inf", op: Float.Div, x: Inf, y: NegInf},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(tc.x, tc.y)
			require.NoError(t, err)
			require.True(t, got.IsNaN())

			// NaN is rejected once it is used.
			_, err = got.Add(One)
			require.True(t, InvalidOperand.Has(err))
		})
	}
}

func TestArithmeticInvalid(t *testing.T) {
	sub := FromBits(0, 1)

	for _, op := range []func(x, y Float) (Float, error){Float.Add, Float.Sub, Float.Mul, Float.Div} {
		_, err := op(NaN, One)
		require.True(t, InvalidOperand.Has(err))

		_, err = op(One, NaN)
		require.True(t, InvalidOperand.Has(err))

		_, err = op(sub, One)
		require.True(t, InvalidOperand.Has(err))

		_, err = op(One, sub)
		require.True(t, InvalidOperand.Has(err))
	}

	_, err := sub.Scale(1)
	require.True(t, InvalidOperand.Has(err))
}

func TestScale(t *testing.T) {
	require.Equal(t, FromUint64(8), mustScale(One, 3))
	require.Equal(t, mustScale(FromUint64(3), -2).Neg(), mustScale(FromUint64(3).Neg(), -2))
	require.Equal(t, Zero, mustScale(Zero, 100))
	require.Equal(t, NegInf, mustScale(NegInf, -100))
	require.Equal(t, Inf, mustScale(One, maxExp+1))
	require.Equal(t, Zero, mustScale(One, minExp-1))
	require.Equal(t, NegZero, mustScale(One.Neg(), minExp-1))
	require.Equal(t, FromBits(0x0001_0000_0000_0000, 0), mustScale(One, minExp))
	require.Equal(t, FromBits(0x7FFE_0000_0000_0000, 0), mustScale(One, maxExp))
}

func TestDivRounding(t *testing.T) {
	// 1/3 = 0.0101...b, the 113 bit significand ends in a 1 followed by
	// 0101... which rounds down.
	got, err := One.Div(FromUint64(3))
	require.NoError(t, err)

	hi, lo := got.Bits()
	require.Equal(t, uint64(0x3FFD_5555_5555_5555), hi)
	require.Equal(t, uint64(0x5555_5555_5555_5555), lo)

	back, err := got.Mul(FromUint64(3))
	require.NoError(t, err)
	require.True(t, ulps(back, One).Cmp(big.NewInt(1)) <= 0)
}
