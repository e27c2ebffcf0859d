// Package rational implements exact fractions of arbitrary-precision
// integers. A Rational is kept in lowest terms with the sign carried by
// the numerator, so equal values always have identical components.
package rational

import (
	bigmath "github.com/deveel/deveel-math-sub001"
)

// Rational is an immutable fraction num/den with den > 0 and
// gcd(|num|, den) == 1. The zero value is not usable; construct through
// New or FromInt.
type Rational struct {
	num *bigmath.Int
	den *bigmath.Int
}

// New returns num/den reduced to lowest terms.
// New fails with ErrDivideByZero if den is zero.
func New(num, den *bigmath.Int) (*Rational, error) {
	if den.IsZero() {
		return nil, bigmath.ErrDivideByZero.New("rational with zero denominator")
	}
	if num.IsZero() {
		return &Rational{num: num, den: bigmath.NewInt(1)}, nil
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	g := num.Gcd(den)
	num, _ = num.Div(g)
	den, _ = den.Div(g)
	return &Rational{num: num, den: den}, nil
}

// FromInt returns x/1.
func FromInt(x *bigmath.Int) *Rational {
	return &Rational{num: x, den: bigmath.NewInt(1)}
}

// Num returns the signed numerator.
func (r *Rational) Num() *bigmath.Int { return r.num }

// Den returns the positive denominator.
func (r *Rational) Den() *bigmath.Int { return r.den }

// Sign returns -1, 0 or +1 depending on whether r is negative, zero or
// positive.
func (r *Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r == 0.
func (r *Rational) IsZero() bool { return r.num.IsZero() }

// Neg returns -r.
func (r *Rational) Neg() *Rational {
	return &Rational{num: r.num.Neg(), den: r.den}
}

// Add returns r + s.
func (r *Rational) Add(s *Rational) *Rational {
	n := r.num.Mul(s.den).Add(s.num.Mul(r.den))
	z, _ := New(n, r.den.Mul(s.den))
	return z
}

// Sub returns r - s.
func (r *Rational) Sub(s *Rational) *Rational {
	return r.Add(s.Neg())
}

// Mul returns r * s.
func (r *Rational) Mul(s *Rational) *Rational {
	z, _ := New(r.num.Mul(s.num), r.den.Mul(s.den))
	return z
}

// Div returns r / s.
// Div fails with ErrDivideByZero if s is zero.
func (r *Rational) Div(s *Rational) (*Rational, error) {
	if s.IsZero() {
		return nil, bigmath.ErrDivideByZero.New("rational division by zero")
	}
	return New(r.num.Mul(s.den), r.den.Mul(s.num))
}

// Cmp compares r and s numerically and returns -1, 0 or +1. The
// denominators are positive, so cross-multiplication preserves order.
func (r *Rational) Cmp(s *Rational) int {
	return r.num.Mul(s.den).Cmp(s.num.Mul(r.den))
}

// Equal reports whether r and s represent the same value. Lowest-terms
// normalization makes this a component comparison.
func (r *Rational) Equal(s *Rational) bool {
	return r.num.Equal(s.num) && r.den.Equal(s.den)
}

// Decimal returns r evaluated as a decimal under the given context. With
// an unlimited-precision context the conversion fails with
// ErrRoundingRequired when the expansion does not terminate.
func (r *Rational) Decimal(ctx bigmath.Context) (bigmath.Decimal, error) {
	n, err := bigmath.DecimalFromInt(r.num, 0)
	if err != nil {
		return bigmath.Decimal{}, err
	}
	d, err := bigmath.DecimalFromInt(r.den, 0)
	if err != nil {
		return bigmath.Decimal{}, err
	}
	return n.DivCtx(d, ctx)
}

// String formats r as "num/den", or just the numerator when the
// denominator is one.
func (r *Rational) String() string {
	if r.den.Equal(bigmath.NewInt(1)) {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
