package quad

import "github.com/zeebo/errs"

var (
	// Error is the error class for malformed encodings.
	Error = errs.Class("quad")

	// InvalidOperand is returned when an operation receives NaN or a
	// subnormal pattern.
	InvalidOperand = errs.Class("invalid operand")

	// NonFiniteValue is returned when converting an infinity to an integer.
	NonFiniteValue = errs.Class("non-finite value")

	// NegativeValue is returned when converting a negative value to an
	// unsigned integer.
	NegativeValue = errs.Class("negative value")

	// Unorderable is returned when comparing NaN or two infinities of the
	// same sign.
	Unorderable = errs.Class("unorderable")

	// ArithmeticOverflow is returned when an integer result exceeds its
	// declared width.
	ArithmeticOverflow = errs.Class("arithmetic overflow")
)
