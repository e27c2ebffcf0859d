package bigmath

import "math"

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MinRadix and MaxRadix bound the radix accepted by ParseInt and Text.
const (
	MinRadix = 2
	MaxRadix = 36
)

// digitsPerWord[r] is the largest d with r^d < 2^32, and radixWordPow[r]
// is r^d: the widest digit chunk whose value always fits one word.
var (
	digitsPerWord [MaxRadix + 1]int
	radixWordPow  [MaxRadix + 1]uint32
)

func init() {
	for r := MinRadix; r <= MaxRadix; r++ {
		p := uint64(1)
		d := 0
		for p*uint64(r) < 1<<32 {
			p *= uint64(r)
			d++
		}
		digitsPerWord[r] = d
		radixWordPow[r] = uint32(p)
	}
}

// ParseInt converts a string of the form [-|+]digits in the given radix to
// an Int. The input is partitioned into fixed-width chunks sized so each
// chunk value fits one word, then accumulated by multiply-by-radix-power
// and add; the result is identical to single-digit accumulation.
//
// ParseInt fails with ErrInvalidFormat if the string is empty, contains a
// character outside the radix's digit set, or the radix is outside
// [MinRadix, MaxRadix].
func ParseInt(s string, radix int) (*Int, error) {
	if radix < MinRadix || radix > MaxRadix {
		return nil, ErrInvalidFormat.New("radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}
	if s == "" {
		return nil, ErrInvalidFormat.New("empty string")
	}

	var sign int8 = 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return nil, ErrInvalidFormat.New("no digits")
	}

	chunk := digitsPerWord[radix]
	first := len(s) % chunk
	if first == 0 {
		first = chunk
	}

	// The leading chunk may be short; it lands on an empty accumulator,
	// so the radix-power multiplier only matters for the full chunks.
	m := make(mag, 0, len(s)/chunk+1)
	pos := 0
	end := first
	for pos < len(s) {
		var v uint32
		for ; pos < end; pos++ {
			d, ok := digitValue(s[pos])
			if !ok || int(d) >= radix {
				return nil, ErrInvalidFormat.New("invalid digit %q for radix %d", s[pos], radix)
			}
			v = v*uint32(radix) + uint32(d)
		}
		end += chunk
		m = m.mulAddWordInPlace(radixWordPow[radix], v)
	}
	return newInt(sign, m), nil
}

func digitValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Text returns the representation of x in the given radix using the
// minimal digit set, with a leading '-' for negative values.
// Text fails with ErrInvalidFormat if the radix is outside
// [MinRadix, MaxRadix].
func (x *Int) Text(radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", ErrInvalidFormat.New("radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}
	if x.sign == 0 {
		return "0", nil
	}

	// Peel base-r^d chunks off a working copy, least significant first.
	chunk := digitsPerWord[radix]
	w := x.mag.clone()
	buf := make([]byte, 0, len(w)*chunk+1)
	for !w.isZero() {
		var r uint32
		w, r = w.divRemWord(radixWordPow[radix])
		for i := 0; i < chunk; i++ {
			if w.isZero() && r == 0 {
				break
			}
			buf = append(buf, digitAlphabet[r%uint32(radix)])
			r /= uint32(radix)
		}
	}
	if len(buf) == 0 {
		buf = append(buf, '0')
	}
	if x.sign < 0 {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	s, _ := x.Text(10)
	return s
}

// Int64 returns the low 64 bits of x under two's-complement truncation,
// silently losing magnitude (modulo-2^64 semantics, not a checked
// conversion).
func (x *Int) Int64() int64 {
	v := int64(x.mag.uint64Value())
	if x.sign < 0 {
		v = -v
	}
	return v
}

// Int32 returns the low 32 bits of x under two's-complement truncation.
func (x *Int) Int32() int32 {
	return int32(x.Int64())
}

// Float64 returns the float64 nearest to x, rounding ties to even and
// saturating to signed infinity when x exceeds the float64 range.
func (x *Int) Float64() float64 {
	n := x.mag.bitLen()
	if n == 0 {
		return 0
	}
	var f float64
	if n <= 53 {
		f = float64(x.mag.uint64Value())
	} else {
		// Keep 53 mantissa bits plus a round bit; everything below
		// collapses into the sticky bit.
		shift := uint(n - 54)
		top := x.mag.shr(shift).uint64Value()
		mant := top >> 1
		round := top&1 != 0
		sticky := x.mag.anyBitsBelow(shift)
		if round && (sticky || mant&1 != 0) {
			mant++
		}
		f = math.Ldexp(float64(mant), n-53)
	}
	if x.sign < 0 {
		f = -f
	}
	return f
}

// Bytes returns the minimal big-endian two's-complement representation of
// x, including at least one sign bit. IntFromBytes(x.Bytes()) == x for
// all x.
func (x *Int) Bytes() []byte {
	if x.sign == 0 {
		return []byte{0}
	}
	b := x.mag.bytes()
	if x.sign > 0 {
		if b[0]&0x80 != 0 {
			return append([]byte{0}, b...)
		}
		return b
	}
	// Two's complement of the magnitude: complement of (|x| - 1), padded
	// back to the magnitude's byte width.
	t := x.mag.subWord(1).bytes()
	for len(t) < len(b) {
		t = append([]byte{0}, t...)
	}
	for i := range t {
		t[i] = ^t[i]
	}
	if t[0]&0x80 == 0 {
		return append([]byte{0xFF}, t...)
	}
	return t
}

// bytes returns the minimal big-endian byte form of a magnitude.
// The zero magnitude yields []byte{0}.
func (x mag) bytes() []byte {
	if len(x) == 0 {
		return []byte{0}
	}
	b := make([]byte, len(x)*4)
	for i, w := range x {
		b[len(b)-4*i-1] = byte(w)
		b[len(b)-4*i-2] = byte(w >> 8)
		b[len(b)-4*i-3] = byte(w >> 16)
		b[len(b)-4*i-4] = byte(w >> 24)
	}
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	return b[i:]
}

// magFromBytes builds a magnitude from big-endian bytes.
func magFromBytes(b []byte) mag {
	m := make(mag, (len(b)+3)/4)
	for i := 0; i < len(b); i++ {
		w := len(b) - 1 - i
		m[i/4] |= uint32(b[w]) << (uint(i) % 4 * 8)
	}
	return m.trim()
}

// IntFromBytes interprets b as a big-endian two's-complement integer.
// IntFromBytes fails with ErrInvalidFormat if b is empty.
func IntFromBytes(b []byte) (*Int, error) {
	if len(b) == 0 {
		return nil, ErrInvalidFormat.New("empty byte array")
	}
	if b[0]&0x80 == 0 {
		return newInt(1, magFromBytes(b)), nil
	}
	// Negative: magnitude = (^b) + 1.
	t := make([]byte, len(b))
	for i := range b {
		t[i] = ^b[i]
	}
	return newInt(-1, magFromBytes(t).addWord(1)), nil
}

// IntFromSignMagnitude builds an Int from a sign in {-1, 0, 1} and a
// big-endian magnitude.
// IntFromSignMagnitude fails with ErrInvalidFormat if the magnitude is
// empty, the sign is outside {-1, 0, 1}, or a zero sign is paired with a
// nonzero magnitude.
func IntFromSignMagnitude(sign int, magnitude []byte) (*Int, error) {
	if len(magnitude) == 0 {
		return nil, ErrInvalidFormat.New("empty byte array")
	}
	if sign < -1 || sign > 1 {
		return nil, ErrInvalidFormat.New("sign %d outside {-1, 0, 1}", sign)
	}
	m := magFromBytes(magnitude)
	if sign == 0 && !m.isZero() {
		return nil, ErrInvalidFormat.New("zero sign with nonzero magnitude")
	}
	return newInt(int8(sign), m), nil
}
