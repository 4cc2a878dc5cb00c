// Package quad provides a 128 bit binary floating point number.
//
// The layout is IEEE 754 binary128:
//
//  | 127  | 126 ... 112 | 111 ... 0 |
//  |------|-------------|-----------|
//  | sign | exponent    | mantissa  |
//
// The exponent is stored with a bias of 16383. A normal number is:
//
//  number = (-1)^sign * 1.mantissa * 2^(exponent - 16383)
//
// Which gives 113 significant bits (the leading one is implicit).
//
// Reserved patterns:
//
//  | Exponent | Mantissa | Class     |
//  |----------|----------|-----------|
//  | 0x0000   | zero     | ±Zero     |
//  | 0x0000   | nonzero  | Subnormal |
//  | 0x7FFF   | zero     | ±Inf      |
//  | 0x7FFF   | nonzero  | NaN       |
//
// Subnormal numbers are never produced. Conversions and arithmetic flush
// results below the smallest normal number to a signed zero, and every
// operation rejects a subnormal operand with InvalidOperand. A NaN operand is
// rejected the same way.
//
// Arithmetic rounds to nearest, ties to even. Pow2 and Log2 are evaluated at
// a wider working precision and then rounded.
//
// Conversions to and from integers truncate unless the RoundUp variant is
// used, in which case any dropped nonzero bit moves the result up by one unit
// in the last place.
package quad
