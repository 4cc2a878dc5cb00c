package quad

import "math/big"

func operands(x, y Float) (a, b parts, err error) {
	a, err = x.operand()
	if err != nil {
		return a, b, err
	}

	b, err = y.operand()
	if err != nil {
		return a, b, err
	}

	return a, b, nil
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(precision)
}

func signedInf(neg bool) Float {
	if neg {
		return NegInf
	}

	return Inf
}

func signedZero(neg bool) Float {
	if neg {
		return NegZero
	}

	return Zero
}

// Add returns x + y.
func (x Float) Add(y Float) (Float, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return NaN, err
	}

	switch {
	case a.class == ClassInf && b.class == ClassInf && a.neg != b.neg:
		return NaN, nil
	case a.class == ClassInf:
		return x, nil
	case b.class == ClassInf:
		return y, nil
	}

	return fromBig(newFloat().Add(a.value(), b.value())), nil
}

// Sub returns x - y.
func (x Float) Sub(y Float) (Float, error) {
	if y.IsNaN() {
		return NaN, InvalidOperand.New("nan")
	}

	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Float) Mul(y Float) (Float, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return NaN, err
	}

	neg := a.neg != b.neg

	switch {
	case a.class == ClassInf && b.class == ClassZero,
		a.class == ClassZero && b.class == ClassInf:
		return NaN, nil
	case a.class == ClassInf || b.class == ClassInf:
		return signedInf(neg), nil
	case a.class == ClassZero || b.class == ClassZero:
		return signedZero(neg), nil
	}

	return fromBig(newFloat().Mul(a.value(), b.value())), nil
}

// Div returns x / y.
func (x Float) Div(y Float) (Float, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return NaN, err
	}

	neg := a.neg != b.neg

	switch {
	case a.class == ClassInf && b.class == ClassInf,
		a.class == ClassZero && b.class == ClassZero:
		return NaN, nil
	case a.class == ClassInf, b.class == ClassZero:
		return signedInf(neg), nil
	case a.class == ClassZero, b.class == ClassInf:
		return signedZero(neg), nil
	}

	return fromBig(newFloat().Quo(a.value(), b.value())), nil
}

// Scale returns x * 2^n. The result is exact unless it leaves the normal
// range.
func (x Float) Scale(n int) (Float, error) {
	p, err := x.operand()
	if err != nil {
		return NaN, err
	}

	if p.class != ClassNormal {
		return x, nil
	}

	exp := p.exp + n

	switch {
	case exp > maxExp:
		return signedInf(p.neg), nil
	case exp < minExp:
		return signedZero(p.neg), nil
	}

	return pack(p.neg, exp, p.mant), nil
}
