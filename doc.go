/*
Package bigmath implements immutable arbitrary-precision integers and
scale-aware decimals.

# Integers

[Int] stores a sign and a little-endian array of 32-bit words holding the
magnitude, always trimmed of leading zero words. Negative values are
never stored in two's complement; bit-level operations such as
[Int.TestBit], [Int.And] and [Int.ShiftRight] compute the
two's-complement view on demand, so -1 behaves as an infinite run of one
bits without one ever being materialized.

All operations return fresh values and never mutate their operands,
which makes an Int safe to share between goroutines without locking.
Derived quantities (bit length, bit count, hash) are computed lazily and
cached; concurrent recomputation writes the same value and is harmless.

Parsing and formatting support any radix from [MinRadix] to [MaxRadix].
Both directions work on multi-digit chunks sized to a machine word
rather than single digits, so conversion cost is dominated by the word
arithmetic, not by per-character work.

# Decimals

[Decimal] combines an unscaled integer coefficient with a 32-bit scale
and represents coefficient * 10^-scale. The scale is part of the value:
0.5 and 0.50 are distinct (compare equal with [Decimal.Cmp] but not with
[Decimal.Equal]).

Coefficients up to 19 digits are carried in a single machine word;
larger coefficients transparently switch to [Int] arithmetic. Every
operation first attempts the compact form and only falls through on
overflow, so typical financial-scale values never allocate.

Rounding is explicit. Operations that can lose digits take a [Context]
(a precision plus a [RoundingMode]) or a rounding mode directly;
[Decimal.Div] with no context returns the exact quotient and fails when
the expansion does not terminate. The [RoundUnnecessary] mode turns any
would-be rounding into an error.

# Errors

All methods are panic-free. Failures are classified by package-level
error classes ([ErrInvalidFormat], [ErrDivideByZero],
[ErrRoundingRequired], [ErrNegativeBitIndex], [ErrArgumentOutOfRange])
that callers can match with the class Has method.
*/
package bigmath
