package bigmath

import (
	"strconv"
	"strings"
)

// ParseDecimal converts a string of the form
//
//	[sign] digits [. digits] [(e|E) [sign] digits]
//
// to a Decimal. The scale is the number of fractional digits minus the
// exponent. Digits accumulate on the compact path until they overflow it,
// then continue on the arbitrary-precision path.
//
// ParseDecimal fails with ErrInvalidFormat on an empty or malformed
// string and with ErrArgumentOutOfRange when the resulting scale does
// not fit in 32 bits.
func ParseDecimal(s string) (Decimal, error) {
	if s == "" {
		return Decimal{}, ErrInvalidFormat.New("empty string")
	}
	t := s
	neg := false
	switch t[0] {
	case '-':
		neg = true
		t = t[1:]
	case '+':
		t = t[1:]
	}

	var (
		coef    fcoef
		ucoef   mag
		big     bool
		digits  int
		frac    int64
		inFrac  bool
		expPart string
	)
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
			if inFrac {
				frac++
			}
			if !big {
				if z, ok := coef.mul(10); ok {
					if z, ok = z.add(fcoef(c - '0')); ok {
						coef = z
						continue
					}
				}
				ucoef = magFromUint64(uint64(coef))
				big = true
			}
			ucoef = ucoef.mulAddWordInPlace(10, uint32(c-'0'))
		case c == '.':
			if inFrac {
				return Decimal{}, ErrInvalidFormat.New("multiple decimal points in %q", s)
			}
			inFrac = true
		case c == 'e' || c == 'E':
			expPart = t[i+1:]
			i = len(t)
		default:
			return Decimal{}, ErrInvalidFormat.New("invalid character %q in %q", c, s)
		}
		if expPart != "" {
			break
		}
	}
	if digits == 0 {
		return Decimal{}, ErrInvalidFormat.New("no coefficient digits in %q", s)
	}

	scale := frac
	if expPart != "" || strings.HasSuffix(strings.ToLower(t), "e") {
		exp, err := parseExponent(expPart, s)
		if err != nil {
			return Decimal{}, err
		}
		scale -= exp
	}
	ns, err := checkScale(scale)
	if err != nil {
		return Decimal{}, err
	}
	if big {
		return newDecimalBig(neg, newInt(1, ucoef), ns), nil
	}
	return newDecimalFcoef(neg, coef, ns), nil
}

// parseExponent reads the exponent digits after 'e'. The value is bounded
// well past the representable scale range, so checkScale reports the
// overflow with the exact requested scale.
func parseExponent(e, whole string) (int64, error) {
	if e == "" {
		return 0, ErrInvalidFormat.New("missing exponent digits in %q", whole)
	}
	neg := false
	switch e[0] {
	case '-':
		neg = true
		e = e[1:]
	case '+':
		e = e[1:]
	}
	if e == "" {
		return 0, ErrInvalidFormat.New("missing exponent digits in %q", whole)
	}
	var v int64
	for i := 0; i < len(e); i++ {
		c := e[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidFormat.New("invalid exponent character %q in %q", c, whole)
		}
		if v <= 1<<40 {
			v = v*10 + int64(c-'0')
		}
	}
	if neg {
		v = -v
	}
	return v, nil
}

// coefString returns the coefficient digits without sign.
func (d Decimal) coefString() string {
	if d.ucoef != nil {
		return d.ucoef.String()
	}
	return strconv.FormatUint(uint64(d.coef), 10)
}

// String formats d, choosing between plain and scientific notation: the
// result is plain when the scale is non-negative and the adjusted
// exponent is at least -6, scientific otherwise. The choice makes
// String(ParseDecimal(s)) preserve both value and scale.
func (d Decimal) String() string {
	digits := d.coefString()
	adjusted := int64(len(digits)) - 1 - int64(d.scale)
	if d.scale >= 0 && adjusted >= -6 {
		return d.plain(digits)
	}

	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('E')
	if adjusted >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatInt(adjusted, 10))
	return b.String()
}

// PlainString formats d without an exponent, padding with zeros as
// needed. A negative scale multiplies the digits out in full; zero stays
// "0" regardless of scale.
func (d Decimal) PlainString() string {
	digits := d.coefString()
	if d.scale >= 0 {
		return d.plain(digits)
	}
	if d.IsZero() {
		return "0"
	}
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(digits)
	for i := int64(d.scale); i < 0; i++ {
		b.WriteByte('0')
	}
	return b.String()
}

// plain renders digits with the decimal point inserted scale places from
// the right. Requires scale >= 0.
func (d Decimal) plain(digits string) string {
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	whole := len(digits) - int(d.scale)
	switch {
	case d.scale == 0:
		b.WriteString(digits)
	case whole > 0:
		b.WriteString(digits[:whole])
		b.WriteByte('.')
		b.WriteString(digits[whole:])
	default:
		b.WriteString("0.")
		for ; whole < 0; whole++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	}
	return b.String()
}
