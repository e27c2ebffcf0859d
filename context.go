package bigmath

import "strings"

// RoundingMode selects how a result is rounded when digits must be
// discarded. Half-way tie-breaking only applies when the discarded
// remainder is exactly half the divisor.
type RoundingMode uint8

const (
	// RoundUp rounds away from zero.
	RoundUp RoundingMode = iota
	// RoundDown truncates toward zero.
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to nearest, ties toward zero.
	RoundHalfDown
	// RoundHalfEven rounds to nearest, ties to the even last digit.
	RoundHalfEven
	// RoundUnnecessary fails if any rounding would occur.
	RoundUnnecessary
)

var roundingModeNames = [...]string{
	RoundUp:          "up",
	RoundDown:        "down",
	RoundCeiling:     "ceiling",
	RoundFloor:       "floor",
	RoundHalfUp:      "half-up",
	RoundHalfDown:    "half-down",
	RoundHalfEven:    "half-even",
	RoundUnnecessary: "unnecessary",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return "unknown"
}

// ParseRoundingMode converts a mode name, as produced by String, back to
// a RoundingMode. Matching is case-insensitive.
// ParseRoundingMode fails with ErrInvalidFormat on an unknown name.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ToLower(s)
	for m, n := range roundingModeNames {
		if n == name {
			return RoundingMode(m), nil
		}
	}
	return 0, ErrInvalidFormat.New("unknown rounding mode %q", s)
}

// needsIncrement decides whether a truncated quotient must be incremented
// in magnitude. It is the single tie-breaking point shared by the compact
// and big rounding paths.
//
//	neg:     the final result is negative
//	odd:     the truncated quotient's last digit is odd
//	cmpHalf: comparison of the discarded portion against half the
//	         divisor (-1, 0, +1); sticky bits below the discarded chunk
//	         must already be folded in by the caller
//	inexact: any discarded portion was nonzero
func (m RoundingMode) needsIncrement(neg, odd bool, cmpHalf int, inexact bool) (bool, error) {
	if !inexact {
		return false, nil
	}
	switch m {
	case RoundUp:
		return true, nil
	case RoundDown:
		return false, nil
	case RoundCeiling:
		return !neg, nil
	case RoundFloor:
		return neg, nil
	case RoundHalfUp:
		return cmpHalf >= 0, nil
	case RoundHalfDown:
		return cmpHalf > 0, nil
	case RoundHalfEven:
		return cmpHalf > 0 || (cmpHalf == 0 && odd), nil
	case RoundUnnecessary:
		return false, ErrRoundingRequired.New("exact result requires rounding")
	}
	return false, ErrArgumentOutOfRange.New("invalid rounding mode %d", m)
}

// Context bundles a target precision and a rounding mode for a single
// operation. A Context is immutable and is never modified by the
// operations it is passed to.
type Context struct {
	// Precision is the maximum number of significant digits of a
	// result; 0 means unlimited (the operation is exact).
	Precision int32
	// Rounding is applied when a result must be shortened to Precision
	// digits.
	Rounding RoundingMode
}

// Predefined contexts. Decimal32, Decimal64 and Decimal128 carry the
// precision of the matching IEEE 754-2008 interchange formats.
var (
	Unlimited  = Context{Precision: 0, Rounding: RoundHalfUp}
	Decimal32  = Context{Precision: 7, Rounding: RoundHalfEven}
	Decimal64  = Context{Precision: 16, Rounding: RoundHalfEven}
	Decimal128 = Context{Precision: 34, Rounding: RoundHalfEven}
)

// NewContext returns a Context with the given precision and rounding
// mode. NewContext fails with ErrArgumentOutOfRange if precision is
// negative.
func NewContext(precision int, rounding RoundingMode) (Context, error) {
	if precision < 0 {
		return Context{}, ErrArgumentOutOfRange.New("negative precision %d", precision)
	}
	if int(rounding) >= len(roundingModeNames) {
		return Context{}, ErrArgumentOutOfRange.New("invalid rounding mode %d", rounding)
	}
	return Context{Precision: int32(precision), Rounding: rounding}, nil
}
