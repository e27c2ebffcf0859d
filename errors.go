package bigmath

import "github.com/zeebo/errs"

// Error classes returned by the package. Every failure is a programming or
// input error surfaced synchronously at the point of violation; nothing is
// retried and no partial results are returned.
var (
	// ErrInvalidFormat reports unparseable input: a malformed numeric
	// string, a radix outside [2, 36], an empty byte array, or a
	// sign/magnitude mismatch.
	ErrInvalidFormat = errs.Class("invalid format")

	// ErrDivideByZero reports a division whose divisor is exactly zero.
	ErrDivideByZero = errs.Class("division by zero")

	// ErrRoundingRequired reports an operation under RoundUnnecessary
	// that encountered a non-exact result.
	ErrRoundingRequired = errs.Class("rounding necessary")

	// ErrNegativeBitIndex reports a bit position argument below zero.
	ErrNegativeBitIndex = errs.Class("negative bit index")

	// ErrArgumentOutOfRange reports an exponent or bit-length argument
	// outside its documented bounds.
	ErrArgumentOutOfRange = errs.Class("argument out of range")
)
