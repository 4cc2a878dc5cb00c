package quad

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive. Both zeros return 0.
func (x Float) Sign() (int, error) {
	p, err := x.operand()
	if err != nil {
		return 0, err
	}

	switch {
	case p.class == ClassZero:
		return 0, nil
	case p.neg:
		return -1, nil
	}

	return 1, nil
}

// Cmp compares x and y and returns -1, 0 or +1. Infinities of the same sign
// are not equal to each other, comparing them fails with Unorderable as does
// any comparison involving NaN.
func (x Float) Cmp(y Float) (int, error) {
	if x.IsNaN() || y.IsNaN() {
		return 0, Unorderable.New("nan")
	}

	a, b, err := operands(x, y)
	if err != nil {
		return 0, err
	}

	switch {
	case a.class == ClassInf && b.class == ClassInf && a.neg == b.neg:
		return 0, Unorderable.New("%s and %s", x, y)
	case a.class == ClassZero && b.class == ClassZero:
		return 0, nil
	case a.neg != b.neg && a.neg:
		return -1, nil
	case a.neg != b.neg:
		return 1, nil
	}

	c := x.Abs().cmpBits(y.Abs())
	if a.neg {
		c = -c
	}

	return c, nil
}

// cmpBits orders bit patterns as unsigned 128 bit integers. For values with a
// clear sign bit this matches numeric order.
func (x Float) cmpBits(y Float) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}

	return 0
}
