package bigmath

import "fmt"

// MustParseInt is like [ParseInt] but panics if parsing fails.
func MustParseInt(s string, radix int) *Int {
	x, err := ParseInt(s, radix)
	if err != nil {
		panic(fmt.Sprintf("MustParseInt(%q, %d) failed: %v", s, radix, err))
	}
	return x
}

// MustParseDecimal is like [ParseDecimal] but panics if parsing fails.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// MustNewDecimal is like [NewDecimal] but panics if the scale is out of
// range.
func MustNewDecimal(unscaled int64, scale int) Decimal {
	d, err := NewDecimal(unscaled, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNewDecimal(%d, %d) failed: %v", unscaled, scale, err))
	}
	return d
}

// MustDiv is like [Decimal.Div] but panics if computing error.
func (d Decimal) MustDiv(e Decimal) Decimal {
	f, err := d.Div(e)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustRound is like [Decimal.Round] but panics if computing error.
func (d Decimal) MustRound(ctx Context) Decimal {
	f, err := d.Round(ctx)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v) failed: %v", d, err))
	}
	return f
}
