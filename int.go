package bigmath

// Int is an immutable arbitrary-precision signed integer. The zero value
// is the numeric value 0 and is ready to use.
//
// An Int stores a sign and a little-endian base-2^32 magnitude, always
// trimmed of leading zero words. Negative values are never materialized in
// two's-complement form; bit-level operations compute the two's-complement
// view on demand (see bits.go).
//
// All operations return fresh instances and never mutate their operands,
// so values may be freely shared between goroutines. Derived quantities
// (bit length, bit count, first nonzero word, hash) are cached lazily;
// concurrent recomputation is a benign race on an identical value.
type Int struct {
	sign int8
	mag  mag

	// Lazy caches. The zero value of each field is the correct cache
	// for the zero-valued Int, so Int{} needs no initialization.
	bitLenCache   int32  // -1 when not yet computed
	bitCountCache int32  // -1 when not yet computed
	fnzCache      int32  // first nonzero word index; -1 when not yet computed
	hashCache     uint32 // 0 doubles as "not computed"; recomputing is benign
}

const cacheUnset = -1

func newInt(sign int8, m mag) *Int {
	m = m.trim()
	if len(m) == 0 {
		sign = 0
	}
	return &Int{
		sign:          sign,
		mag:           m,
		bitLenCache:   cacheUnset,
		bitCountCache: cacheUnset,
		fnzCache:      cacheUnset,
	}
}

// invalidateCaches resets the lazy caches after an internal in-place
// mutation. Only construction-time owners may call it; a published Int is
// never mutated.
func (z *Int) invalidateCaches() {
	z.bitLenCache = cacheUnset
	z.bitCountCache = cacheUnset
	z.fnzCache = cacheUnset
	z.hashCache = 0
}

// NewInt returns an Int with the value of v.
func NewInt(v int64) *Int {
	switch {
	case v == 0:
		return &Int{}
	case v < 0:
		// Negating math.MinInt64 overflows int64; go through uint64.
		return newInt(-1, magFromUint64(uint64(-(v + 1)) + 1))
	}
	return newInt(1, magFromUint64(uint64(v)))
}

var (
	intZero = &Int{}
	intOne  = NewInt(1)
	intTen  = NewInt(10)
)

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive.
func (x *Int) Sign() int {
	return int(x.sign)
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	return x.sign == 0
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return &Int{}
	}
	return newInt(-x.sign, x.mag.clone())
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return newInt(1, x.mag.clone())
}

// Cmp compares x and y numerically: signs first, then magnitude length,
// then words from the most significant down. It returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == 0:
		return 0
	}
	return int(x.sign) * x.mag.cmp(y.mag)
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func (x *Int) CmpAbs(y *Int) int {
	return x.mag.cmp(y.mag)
}

// Equal reports whether x and y have identical sign and identical trimmed
// magnitude words.
func (x *Int) Equal(y *Int) bool {
	return x.sign == y.sign && x.mag.cmp(y.mag) == 0
}

// Hash returns the hash code of x: an order-sensitive accumulation
// h = 33*h + word over every magnitude word from the most significant
// down, multiplied by the sign. Running high-to-low keeps a zero low
// word from vanishing into a still-zero accumulator, so word position
// always perturbs the hash. The accumulation is part of the published
// contract and tracks exactly what Equal compares.
func (x *Int) Hash() int32 {
	if x.hashCache == 0 {
		var h uint32
		for i := len(x.mag) - 1; i >= 0; i-- {
			h = h*33 + x.mag[i]
		}
		x.hashCache = h
	}
	return int32(x.hashCache) * int32(x.sign)
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	switch {
	case x.sign == 0:
		return y
	case y.sign == 0:
		return x
	case x.sign == y.sign:
		return newInt(x.sign, x.mag.add(y.mag))
	}
	// Opposite signs: the result takes the sign of the larger magnitude.
	switch x.mag.cmp(y.mag) {
	case 0:
		return &Int{}
	case 1:
		return newInt(x.sign, x.mag.sub(y.mag))
	}
	return newInt(y.sign, y.mag.sub(x.mag))
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// Mul returns x * y. The sign of the result is the XOR of the operand
// signs, or zero if either operand is zero.
func (x *Int) Mul(y *Int) *Int {
	if x.sign == 0 || y.sign == 0 {
		return &Int{}
	}
	return newInt(x.sign*y.sign, x.mag.mul(y.mag))
}

// DivRem returns the truncated quotient q = x/y and remainder
// r = x - y*q. The remainder has the sign of the dividend or is zero.
// DivRem fails with ErrDivideByZero if y is zero.
func (x *Int) DivRem(y *Int) (q, r *Int, err error) {
	if y.sign == 0 {
		return nil, nil, ErrDivideByZero.New("integer division by zero")
	}
	if x.sign == 0 {
		return &Int{}, &Int{}, nil
	}
	qm, rm := x.mag.divRem(y.mag)
	return newInt(x.sign*y.sign, qm), newInt(x.sign, rm), nil
}

// Div returns the truncated quotient x / y.
// Div fails with ErrDivideByZero if y is zero.
func (x *Int) Div(y *Int) (*Int, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns the remainder of the truncated division x / y.
// Rem fails with ErrDivideByZero if y is zero.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// Gcd returns the greatest common divisor of x and y. The result is
// non-negative; Gcd(0, 0) is 0.
func (x *Int) Gcd(y *Int) *Int {
	u := x.mag.clone()
	v := y.mag.clone()
	for !v.isZero() {
		_, r := u.divRem(v)
		u, v = v, r
	}
	if u.isZero() {
		return &Int{}
	}
	return newInt(1, u)
}

// Pow returns x raised to the power n, computed by binary exponentiation.
// Pow fails with ErrArgumentOutOfRange if n is negative.
func (x *Int) Pow(n int) (*Int, error) {
	if n < 0 {
		return nil, ErrArgumentOutOfRange.New("negative exponent %d", n)
	}
	z := intOne
	b := x
	for n > 0 {
		if n&1 != 0 {
			z = z.Mul(b)
		}
		n >>= 1
		if n > 0 {
			b = b.Mul(b)
		}
	}
	return z, nil
}

// firstNonzeroWord returns the index of the least significant nonzero
// magnitude word. The result is cached; x must be nonzero.
func (x *Int) firstNonzeroWord() int {
	if x.fnzCache == cacheUnset {
		i := 0
		for x.mag[i] == 0 {
			i++
		}
		x.fnzCache = int32(i)
	}
	return int(x.fnzCache)
}

// pow10Cache holds small powers of ten as magnitudes so the hot decimal
// scaling path avoids a generic exponentiation.
var pow10Cache = func() []mag {
	c := make([]mag, 64)
	c[0] = magFromWord(1)
	for i := 1; i < len(c); i++ {
		c[i] = c[i-1].clone().mulAddWordInPlace(10, 0)
	}
	return c
}()

// magPow10 returns 10^n as a magnitude for n >= 0.
func magPow10(n int) mag {
	if n < len(pow10Cache) {
		return pow10Cache[n]
	}
	z := pow10Cache[len(pow10Cache)-1].clone()
	for i := len(pow10Cache) - 1; i < n; i++ {
		z = z.mulAddWordInPlace(10, 0)
	}
	return z
}

// decimalDigits returns the number of decimal digits of x. The bit length
// gives floor(log10) up to one digit of slack, resolved by a single
// power-of-ten comparison. The zero magnitude has 0 digits.
func (x mag) decimalDigits() int {
	if len(x) == 0 {
		return 0
	}
	// 1233/4096 approximates log10(2) from below, so e starts at or under
	// floor(log10 x) and the comparisons only ever move it up.
	e := (x.bitLen() - 1) * 1233 >> 12
	for x.cmp(magPow10(e+1)) >= 0 {
		e++
	}
	return e + 1
}

// IntPow10 returns 10^n for n >= 0.
// IntPow10 fails with ErrArgumentOutOfRange if n is negative.
func IntPow10(n int) (*Int, error) {
	if n < 0 {
		return nil, ErrArgumentOutOfRange.New("negative power of ten %d", n)
	}
	return newInt(1, magPow10(n).clone()), nil
}

// MulPow10 returns x * 10^n for n >= 0, the specialized scaling helper
// used by the decimal layer.
// MulPow10 fails with ErrArgumentOutOfRange if n is negative.
func (x *Int) MulPow10(n int) (*Int, error) {
	switch {
	case n < 0:
		return nil, ErrArgumentOutOfRange.New("negative power of ten %d", n)
	case n == 0 || x.sign == 0:
		return x, nil
	}
	return newInt(x.sign, x.mag.mul(magPow10(n))), nil
}
