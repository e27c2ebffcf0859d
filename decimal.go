package bigmath

import "math"

// Decimal is an immutable arbitrary-precision decimal: an unscaled
// integer coefficient combined with a 32-bit scale, representing
// coefficient * 10^-scale. The zero value is the numeric value 0 with
// scale 0 and is ready to use.
//
// A Decimal carries one of two coefficient forms. Coefficients up to 19
// digits live in a compact machine word (coef); anything larger is held
// as a non-negative *Int (ucoef). The representation is canonical: ucoef
// is non-nil only when the coefficient exceeds the compact range, so two
// equal Decimals always have identical fields. Every operation first
// attempts the compact path and falls through to *Int arithmetic on
// overflow.
//
// Scale is significant for Equal but not for Cmp: 0.5 and 0.50 compare
// equal yet are distinct values.
type Decimal struct {
	neg   bool
	scale int32
	coef  fcoef
	ucoef *Int // nil in compact form; otherwise the coefficient magnitude
}

var decimalOne = Decimal{coef: 1}

// newDecimalFcoef builds a compact Decimal. A zero coefficient drops the
// sign so zero is never negative.
func newDecimalFcoef(neg bool, coef fcoef, scale int32) Decimal {
	if coef == 0 {
		neg = false
	}
	return Decimal{neg: neg, scale: scale, coef: coef}
}

// newDecimalBig builds a Decimal from a non-negative coefficient Int,
// demoting to the compact form whenever the coefficient fits.
func newDecimalBig(neg bool, u *Int, scale int32) Decimal {
	if c, ok := fcoefFromMag(u.mag); ok {
		return newDecimalFcoef(neg, c, scale)
	}
	return Decimal{neg: neg, scale: scale, ucoef: u.Abs()}
}

// newDecimalInt builds a Decimal from a signed coefficient Int.
func newDecimalInt(u *Int, scale int32) Decimal {
	return newDecimalBig(u.Sign() < 0, u.Abs(), scale)
}

// checkScale narrows an int64 scale to int32.
// checkScale fails with ErrArgumentOutOfRange on overflow.
func checkScale(s int64) (int32, error) {
	if s < math.MinInt32 || s > math.MaxInt32 {
		return 0, ErrArgumentOutOfRange.New("decimal scale %d out of range", s)
	}
	return int32(s), nil
}

// saturateScale clamps an int64 scale into the int32 range. It is used
// for the preferred scale of zero results, where clamping loses nothing.
func saturateScale(s int64) int32 {
	switch {
	case s < math.MinInt32:
		return math.MinInt32
	case s > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(s)
}

// NewDecimal returns a Decimal with the value unscaled * 10^-scale.
// NewDecimal fails with ErrArgumentOutOfRange if the scale does not fit
// in 32 bits.
func NewDecimal(unscaled int64, scale int) (Decimal, error) {
	ns, err := checkScale(int64(scale))
	if err != nil {
		return Decimal{}, err
	}
	neg := unscaled < 0
	u := uint64(unscaled)
	if neg {
		u = uint64(-(unscaled+1)) + 1
	}
	// Any int64 magnitude fits the 19-digit compact range.
	return newDecimalFcoef(neg, fcoef(u), ns), nil
}

// DecimalFromInt returns a Decimal with the value unscaled * 10^-scale
// for an arbitrary-precision coefficient.
// DecimalFromInt fails with ErrArgumentOutOfRange if the scale does not
// fit in 32 bits.
func DecimalFromInt(unscaled *Int, scale int) (Decimal, error) {
	ns, err := checkScale(int64(scale))
	if err != nil {
		return Decimal{}, err
	}
	return newDecimalInt(unscaled, ns), nil
}

// DecimalFromInt64 returns a Decimal with the integer value v and scale 0.
func DecimalFromInt64(v int64) Decimal {
	d, _ := NewDecimal(v, 0)
	return d
}

// coefInt returns the coefficient magnitude as a non-negative Int.
func (d Decimal) coefInt() *Int {
	if d.ucoef != nil {
		return d.ucoef
	}
	return newInt(1, magFromUint64(uint64(d.coef)))
}

// UnscaledValue returns the signed unscaled coefficient of d.
func (d Decimal) UnscaledValue() *Int {
	u := d.coefInt()
	if d.neg {
		return u.Neg()
	}
	return u
}

// Scale returns the scale of d: the number of digits to the right of the
// decimal point, negative when the coefficient is implicitly multiplied
// by a power of ten.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// Precision returns the number of significant digits of the coefficient.
// The precision of zero is 1.
func (d Decimal) Precision() int {
	var p int
	if d.ucoef != nil {
		p = d.ucoef.mag.decimalDigits()
	} else {
		p = d.coef.prec()
	}
	if p == 0 {
		p = 1
	}
	return p
}

// IsZero reports whether d == 0 at any scale.
func (d Decimal) IsZero() bool {
	return d.ucoef == nil && d.coef == 0
}

// Sign returns -1, 0 or +1 depending on whether d is negative, zero or
// positive.
func (d Decimal) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// Neg returns -d with the same scale.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns |d| with the same scale.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Equal reports whether d and e are identical in sign, scale and
// coefficient. Unlike Cmp, Equal distinguishes 0.5 from 0.50.
func (d Decimal) Equal(e Decimal) bool {
	if d.neg != e.neg || d.scale != e.scale {
		return false
	}
	if d.ucoef == nil || e.ucoef == nil {
		return d.ucoef == nil && e.ucoef == nil && d.coef == e.coef
	}
	return d.ucoef.Equal(e.ucoef)
}

// Cmp compares d and e numerically, ignoring scale differences.
// It returns -1, 0 or +1.
func (d Decimal) Cmp(e Decimal) int {
	ds, es := d.Sign(), e.Sign()
	switch {
	case ds < es:
		return -1
	case ds > es:
		return 1
	case ds == 0:
		return 0
	}
	r := d.cmpAbs(e)
	if ds < 0 {
		r = -r
	}
	return r
}

// CmpAbs compares |d| and |e| numerically and returns -1, 0 or +1.
func (d Decimal) CmpAbs(e Decimal) int {
	switch {
	case d.IsZero() && e.IsZero():
		return 0
	case d.IsZero():
		return -1
	case e.IsZero():
		return 1
	}
	return d.cmpAbs(e)
}

// cmpAbs compares nonzero magnitudes. The adjusted exponents decide
// first, so wildly different scales never force a large alignment.
func (d Decimal) cmpAbs(e Decimal) int {
	ad := int64(d.Precision()) - 1 - int64(d.scale)
	ae := int64(e.Precision()) - 1 - int64(e.scale)
	switch {
	case ad < ae:
		return -1
	case ad > ae:
		return 1
	}
	if d.ucoef == nil && e.ucoef == nil && d.scale == e.scale {
		switch {
		case d.coef < e.coef:
			return -1
		case d.coef > e.coef:
			return 1
		}
		return 0
	}
	du, eu := d.coefInt(), e.coefInt()
	if d.scale < e.scale {
		du, _ = du.MulPow10(int(int64(e.scale) - int64(d.scale)))
	} else if e.scale < d.scale {
		eu, _ = eu.MulPow10(int(int64(d.scale) - int64(e.scale)))
	}
	return du.CmpAbs(eu)
}

// Add returns d + e. The result scale is the larger of the two operand
// scales, so addition is always exact.
func (d Decimal) Add(e Decimal) Decimal {
	if z, ok := d.addFast(e); ok {
		return z
	}
	return d.addSlow(e)
}

func (d Decimal) addFast(e Decimal) (Decimal, bool) {
	if d.ucoef != nil || e.ucoef != nil {
		return Decimal{}, false
	}
	dc, ec := d.coef, e.coef
	scale := d.scale
	var ok bool
	switch {
	case d.scale > e.scale:
		if ec, ok = ec.lsh(int(int64(d.scale) - int64(e.scale))); !ok {
			return Decimal{}, false
		}
	case e.scale > d.scale:
		scale = e.scale
		if dc, ok = dc.lsh(int(int64(e.scale) - int64(d.scale))); !ok {
			return Decimal{}, false
		}
	}
	if d.neg == e.neg {
		z, ok := dc.add(ec)
		if !ok {
			return Decimal{}, false
		}
		return newDecimalFcoef(d.neg, z, scale), true
	}
	if dc >= ec {
		return newDecimalFcoef(d.neg, dc.sub(ec), scale), true
	}
	return newDecimalFcoef(e.neg, ec.sub(dc), scale), true
}

func (d Decimal) addSlow(e Decimal) Decimal {
	scale := d.scale
	if e.scale > scale {
		scale = e.scale
	}
	du, _ := d.UnscaledValue().MulPow10(int(int64(scale) - int64(d.scale)))
	eu, _ := e.UnscaledValue().MulPow10(int(int64(scale) - int64(e.scale)))
	return newDecimalInt(du.Add(eu), scale)
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// AddCtx returns d + e rounded to the context's precision.
func (d Decimal) AddCtx(e Decimal, ctx Context) (Decimal, error) {
	return d.Add(e).Round(ctx)
}

// SubCtx returns d - e rounded to the context's precision.
func (d Decimal) SubCtx(e Decimal, ctx Context) (Decimal, error) {
	return d.Sub(e).Round(ctx)
}

// Mul returns d * e exactly; the result scale is the sum of the operand
// scales. Mul fails with ErrArgumentOutOfRange if the result scale does
// not fit in 32 bits.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	scale, err := checkScale(int64(d.scale) + int64(e.scale))
	if err != nil {
		return Decimal{}, err
	}
	neg := d.neg != e.neg
	if d.ucoef == nil && e.ucoef == nil {
		if z, ok := d.coef.mul(e.coef); ok {
			return newDecimalFcoef(neg, z, scale), nil
		}
	}
	return newDecimalBig(neg, d.coefInt().Mul(e.coefInt()), scale), nil
}

// MulCtx returns d * e rounded to the context's precision.
func (d Decimal) MulCtx(e Decimal, ctx Context) (Decimal, error) {
	z, err := d.Mul(e)
	if err != nil {
		return Decimal{}, err
	}
	return z.Round(ctx)
}

// Div returns the exact quotient d / e. The fraction is reduced by the
// greatest common divisor; a reduced divisor whose factorization is not
// of the form 2^a * 5^b has no finite decimal expansion.
//
// Div fails with ErrDivideByZero if e is zero and with
// ErrRoundingRequired if the quotient does not terminate.
func (d Decimal) Div(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivideByZero.New("decimal division by zero")
	}
	if d.IsZero() {
		return Decimal{scale: saturateScale(int64(d.scale) - int64(e.scale))}, nil
	}
	a, b := d.coefInt(), e.coefInt()
	g := a.Gcd(b)
	a, _ = a.Div(g)
	b, _ = b.Div(g)

	// The reduced divisor must be 2^i * 5^j for the expansion to
	// terminate; 10^max(i,j) then clears it exactly.
	twos := int(b.mag.trailingZeroBits())
	rest := b.mag.shr(uint(twos))
	fives := 0
	for {
		q, r := rest.divRemWord(5)
		if r != 0 {
			break
		}
		rest = q
		fives++
	}
	if rest.cmp(magFromWord(1)) != 0 {
		return Decimal{}, ErrRoundingRequired.New("non-terminating decimal expansion")
	}
	k := twos
	if fives > k {
		k = fives
	}
	scale, err := checkScale(int64(d.scale) - int64(e.scale) + int64(k))
	if err != nil {
		return Decimal{}, err
	}
	num, _ := a.MulPow10(k)
	q, _ := num.Div(b)
	return newDecimalBig(d.neg != e.neg, q, scale), nil
}

// DivToScale returns d / e rounded to the given scale with the given
// mode. DivToScale fails with ErrDivideByZero if e is zero, with
// ErrRoundingRequired under RoundUnnecessary on an inexact quotient, and
// with ErrArgumentOutOfRange if the scale does not fit in 32 bits.
func (d Decimal) DivToScale(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	ts, err := checkScale(int64(scale))
	if err != nil {
		return Decimal{}, err
	}
	if e.IsZero() {
		return Decimal{}, ErrDivideByZero.New("decimal division by zero")
	}
	if d.IsZero() {
		return Decimal{scale: ts}, nil
	}
	a, b := d.coefInt(), e.coefInt()
	shift := int64(ts) - int64(d.scale) + int64(e.scale)
	if shift >= 0 {
		a, _ = a.MulPow10(int(shift))
	} else {
		b, _ = b.MulPow10(int(-shift))
	}
	neg := d.neg != e.neg
	q, err := divRoundInt(a, b, neg, mode, false)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimalBig(neg, q, ts), nil
}

// DivCtx returns d / e rounded to the context's precision in a single
// rounding step. An unlimited-precision context performs the exact
// division. Exact quotients shorter than the precision are stripped back
// toward the preferred scale (d's scale minus e's scale).
func (d Decimal) DivCtx(e Decimal, ctx Context) (Decimal, error) {
	if ctx.Precision == 0 {
		return d.Div(e)
	}
	if e.IsZero() {
		return Decimal{}, ErrDivideByZero.New("decimal division by zero")
	}
	preferred := int64(d.scale) - int64(e.scale)
	if d.IsZero() {
		return Decimal{scale: saturateScale(preferred)}, nil
	}

	// Scale the dividend so the raw quotient carries at least one digit
	// beyond the target precision; the surplus is rounded off in one step
	// with the division remainder folded in as a sticky bit, so the
	// result is never double-rounded.
	a, b := d.coefInt(), e.coefInt()
	k := int64(ctx.Precision) + 1 + int64(b.mag.decimalDigits()) - int64(a.mag.decimalDigits())
	if k < 0 {
		k = 0
	}
	a, _ = a.MulPow10(int(k))
	q, r, _ := a.DivRem(b)
	scale := preferred + k
	neg := d.neg != e.neg
	inexact := !r.IsZero()

	drop := q.mag.decimalDigits() - int(ctx.Precision)
	if drop > 0 {
		p, _ := IntPow10(drop)
		var c *Int
		q, c, _ = q.DivRem(p)
		sticky := inexact
		inexact = inexact || !c.IsZero()
		if inexact {
			cmpHalf := c.ShiftLeft(1).CmpAbs(p)
			if cmpHalf == 0 && sticky {
				cmpHalf = 1
			}
			inc, err := ctx.Rounding.needsIncrement(neg, q.mag.bit(0) == 1, cmpHalf, true)
			if err != nil {
				return Decimal{}, err
			}
			if inc {
				q = q.Add(intOne)
			}
		}
		scale -= int64(drop)
	} else if inexact {
		cmpHalf := r.ShiftLeft(1).CmpAbs(b)
		inc, err := ctx.Rounding.needsIncrement(neg, q.mag.bit(0) == 1, cmpHalf, true)
		if err != nil {
			return Decimal{}, err
		}
		if inc {
			q = q.Add(intOne)
		}
	}

	// Rounding may have grown the coefficient to 10^precision; one exact
	// shift restores the digit count.
	if q.mag.decimalDigits() > int(ctx.Precision) {
		q, _, _ = q.DivRem(intTen)
		scale--
	}

	// An exact quotient prefers the scale of a schoolbook division.
	if !inexact {
		q, scale = stripToScale(q, scale, preferred)
	}
	ns, err := checkScale(scale)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimalBig(neg, q, ns), nil
}

// stripToScale removes trailing zero digits from q while the scale stays
// above the preferred scale.
func stripToScale(q *Int, scale, preferred int64) (*Int, int64) {
	for scale > preferred && !q.IsZero() {
		q2, r, _ := q.DivRem(intTen)
		if !r.IsZero() {
			break
		}
		q = q2
		scale--
	}
	return q, scale
}

// divRoundInt divides the non-negative u by the positive v, rounding the
// quotient per mode. neg carries the sign of the enclosing result; sticky
// marks discarded value below the remainder.
func divRoundInt(u, v *Int, neg bool, mode RoundingMode, sticky bool) (*Int, error) {
	q, r, err := u.DivRem(v)
	if err != nil {
		return nil, err
	}
	if r.IsZero() && !sticky {
		return q, nil
	}
	cmpHalf := r.ShiftLeft(1).CmpAbs(v)
	if cmpHalf == 0 && sticky {
		cmpHalf = 1
	}
	inc, err := mode.needsIncrement(neg, q.mag.bit(0) == 1, cmpHalf, true)
	if err != nil {
		return nil, err
	}
	if inc {
		q = q.Add(intOne)
	}
	return q, nil
}

// QuoRem returns the integral quotient q of d / e truncated toward zero
// with scale 0, and the remainder r = d - q*e. The remainder carries the
// sign of the dividend or is zero.
// QuoRem fails with ErrDivideByZero if e is zero.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	q, err = d.DivToScale(e, 0, RoundDown)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	p, err := q.Mul(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, d.Sub(p), nil
}

// Pow returns d raised to the power n. With an unlimited-precision
// context the result is exact; otherwise repeated squaring runs at the
// context's precision widened by guard digits for the exponent, and the
// final value is rounded to the context.
// Pow fails with ErrArgumentOutOfRange if n is negative.
func (d Decimal) Pow(n int, ctx Context) (Decimal, error) {
	if n < 0 {
		return Decimal{}, ErrArgumentOutOfRange.New("negative exponent %d", n)
	}
	if n == 0 {
		return decimalOne, nil
	}
	if ctx.Precision == 0 {
		scale, err := checkScale(int64(d.scale) * int64(n))
		if err != nil {
			return Decimal{}, err
		}
		u, err := d.coefInt().Pow(n)
		if err != nil {
			return Decimal{}, err
		}
		return newDecimalBig(d.neg && n&1 == 1, u, scale), nil
	}

	// One guard digit per decimal digit of the exponent bounds the
	// accumulated squaring error below the final rounding step.
	guard := 1
	for m := n; m > 0; m /= 10 {
		guard++
	}
	work := Context{Precision: ctx.Precision + int32(guard), Rounding: ctx.Rounding}
	z := decimalOne
	b := d
	var err error
	for m := n; m > 0; m >>= 1 {
		if m&1 != 0 {
			if z, err = z.MulCtx(b, work); err != nil {
				return Decimal{}, err
			}
		}
		if m>>1 > 0 {
			if b, err = b.MulCtx(b, work); err != nil {
				return Decimal{}, err
			}
		}
	}
	return z.Round(ctx)
}

// Round shortens d to the context's precision using the context's
// rounding mode. Unlimited precision, and values already within the
// precision, pass through unchanged.
// Round fails with ErrRoundingRequired under RoundUnnecessary when
// digits would be discarded.
func (d Decimal) Round(ctx Context) (Decimal, error) {
	if ctx.Precision == 0 {
		return d, nil
	}
	drop := d.Precision() - int(ctx.Precision)
	if drop <= 0 || d.IsZero() {
		return d, nil
	}
	z, err := d.dropDigits(drop, ctx.Rounding)
	if err != nil {
		return Decimal{}, err
	}
	// The increment can carry into an extra digit (999 -> 1000); the
	// surplus digit is a zero, so one more drop is exact.
	if !z.IsZero() && z.Precision() > int(ctx.Precision) {
		z, err = z.dropDigits(1, ctx.Rounding)
	}
	return z, err
}

// SetScale returns d rescaled to the given scale. Increasing the scale
// pads the coefficient with zeros exactly; decreasing it rounds with the
// given mode.
// SetScale fails with ErrArgumentOutOfRange if the scale does not fit in
// 32 bits and with ErrRoundingRequired under RoundUnnecessary on an
// inexact rescale.
func (d Decimal) SetScale(scale int, mode RoundingMode) (Decimal, error) {
	ns, err := checkScale(int64(scale))
	if err != nil {
		return Decimal{}, err
	}
	diff := int64(ns) - int64(d.scale)
	switch {
	case diff == 0:
		return d, nil
	case diff > 0:
		if d.ucoef == nil {
			if z, ok := d.coef.lsh(int(diff)); ok {
				return newDecimalFcoef(d.neg, z, ns), nil
			}
		}
		u, _ := d.coefInt().MulPow10(int(diff))
		return newDecimalBig(d.neg, u, ns), nil
	}
	return d.dropDigits(int(-diff), mode)
}

// dropDigits removes drop trailing coefficient digits with rounding,
// reducing the scale by the same amount.
func (d Decimal) dropDigits(drop int, mode RoundingMode) (Decimal, error) {
	scale := int32(int64(d.scale) - int64(drop))
	if d.ucoef == nil {
		z, err := d.coef.rshRound(drop, mode, d.neg)
		if err != nil {
			return Decimal{}, err
		}
		return newDecimalFcoef(d.neg, z, scale), nil
	}
	p, err := IntPow10(drop)
	if err != nil {
		return Decimal{}, err
	}
	q, err := divRoundInt(d.ucoef, p, d.neg, mode, false)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimalBig(d.neg, q, scale), nil
}

// StripTrailingZeros removes all trailing zero digits from the
// coefficient, reducing the scale accordingly. Stripping can drive the
// scale negative: 100 at scale 0 becomes 1 at scale -2. Zero collapses
// to scale 0.
func (d Decimal) StripTrailingZeros() Decimal {
	if d.IsZero() {
		return Decimal{}
	}
	if d.ucoef == nil {
		drop := d.coef.ntz()
		if drop == 0 {
			return d
		}
		return newDecimalFcoef(d.neg, d.coef/fpow10[drop], int32(int64(d.scale)-int64(drop)))
	}
	// Peel the largest cached power of ten dividing the coefficient,
	// halving the chunk on each miss.
	u := d.ucoef.mag
	scale := int64(d.scale)
	for k := len(pow10Cache) - 1; k >= 1; {
		q, r := u.divRem(pow10Cache[k])
		if r.isZero() {
			u = q
			scale -= int64(k)
			continue
		}
		k /= 2
	}
	return newDecimalBig(d.neg, newInt(1, u), int32(scale))
}

// MovePointLeft returns d with the decimal point moved n places to the
// left; a negative n moves it right. The result scale never drops below
// zero: surplus movement pads the coefficient instead.
// MovePointLeft fails with ErrArgumentOutOfRange if the scale does not
// fit in 32 bits.
func (d Decimal) MovePointLeft(n int) (Decimal, error) {
	s := int64(d.scale) + int64(n)
	if s >= 0 {
		ns, err := checkScale(s)
		if err != nil {
			return Decimal{}, err
		}
		d.scale = ns
		return d, nil
	}
	shift := -s
	if shift > math.MaxInt32 {
		return Decimal{}, ErrArgumentOutOfRange.New("decimal scale %d out of range", s)
	}
	if d.ucoef == nil {
		if z, ok := d.coef.lsh(int(shift)); ok {
			return newDecimalFcoef(d.neg, z, 0), nil
		}
	}
	u, _ := d.coefInt().MulPow10(int(shift))
	return newDecimalBig(d.neg, u, 0), nil
}

// MovePointRight returns d with the decimal point moved n places to the
// right; a negative n moves it left.
func (d Decimal) MovePointRight(n int) (Decimal, error) {
	if n == math.MinInt {
		return Decimal{}, ErrArgumentOutOfRange.New("point move %d out of range", n)
	}
	return d.MovePointLeft(-n)
}
