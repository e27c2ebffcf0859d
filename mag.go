package bigmath

import "math/bits"

// mag is a magnitude: a little-endian slice of base-2^32 words with the
// most significant word nonzero. The zero magnitude is the empty slice.
//
// Functions in this file are pure word-array arithmetic with explicit
// carry propagation; sign handling lives in Int.
type mag []uint32

// trim drops leading zero words so the logical length is exact.
func (x mag) trim() mag {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x mag) isZero() bool {
	return len(x) == 0
}

func (x mag) clone() mag {
	if len(x) == 0 {
		return nil
	}
	z := make(mag, len(x))
	copy(z, x)
	return z
}

// magFromWord returns the magnitude of a single word.
func magFromWord(w uint32) mag {
	if w == 0 {
		return nil
	}
	return mag{w}
}

// magFromUint64 splits a uint64 into one or two words.
func magFromUint64(v uint64) mag {
	switch {
	case v == 0:
		return nil
	case v>>32 == 0:
		return mag{uint32(v)}
	}
	return mag{uint32(v), uint32(v >> 32)}
}

// uint64Value returns the low 64 bits of x.
func (x mag) uint64Value() uint64 {
	var v uint64
	if len(x) > 0 {
		v = uint64(x[0])
	}
	if len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

// cmp compares magnitudes: longer is greater, equal lengths compare words
// from the most significant down.
func (x mag) cmp(y mag) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x mag) add(y mag) mag {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(mag, len(x)+1)
	var c uint64
	for i := 0; i < len(y); i++ {
		c += uint64(x[i]) + uint64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	for i := len(y); i < len(x); i++ {
		c += uint64(x[i])
		z[i] = uint32(c)
		c >>= 32
	}
	z[len(x)] = uint32(c)
	return z.trim()
}

// sub calculates x - y. Requires x >= y.
func (x mag) sub(y mag) mag {
	z := make(mag, len(x))
	var b int64
	for i := 0; i < len(y); i++ {
		b += int64(x[i]) - int64(y[i])
		z[i] = uint32(b)
		b >>= 32
	}
	for i := len(y); i < len(x); i++ {
		b += int64(x[i])
		z[i] = uint32(b)
		b >>= 32
	}
	return z.trim()
}

// addWord calculates x + w.
func (x mag) addWord(w uint32) mag {
	return x.add(magFromWord(w))
}

// subWord calculates x - w. Requires x >= w.
func (x mag) subWord(w uint32) mag {
	return x.sub(magFromWord(w))
}

// mul calculates x * y by schoolbook word convolution.
func (x mag) mul(y mag) mag {
	if x.isZero() || y.isZero() {
		return nil
	}
	z := make(mag, len(x)+len(y))
	for i := 0; i < len(x); i++ {
		var c uint64
		xi := uint64(x[i])
		for j := 0; j < len(y); j++ {
			c += xi*uint64(y[j]) + uint64(z[i+j])
			z[i+j] = uint32(c)
			c >>= 32
		}
		z[i+len(y)] = uint32(c)
	}
	return z.trim()
}

// mulAddWordInPlace calculates z = z * w + a, growing z by at most one
// word. Used by the chunked radix accumulator.
func (z mag) mulAddWordInPlace(w uint32, a uint32) mag {
	c := uint64(a)
	for i := 0; i < len(z); i++ {
		c += uint64(z[i]) * uint64(w)
		z[i] = uint32(c)
		c >>= 32
	}
	if c != 0 {
		z = append(z, uint32(c))
	}
	return z
}

// divRemWord calculates x / w and x % w for w != 0.
func (x mag) divRemWord(w uint32) (q mag, r uint32) {
	q = make(mag, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		rem = rem<<32 | uint64(x[i])
		q[i] = uint32(rem / uint64(w))
		rem %= uint64(w)
	}
	return q.trim(), uint32(rem)
}

// divRem calculates the quotient and remainder of x / y for y != 0.
// Multi-word divisors use Knuth's algorithm D with a normalization shift
// and a two-word quotient digit estimate.
func (x mag) divRem(y mag) (q, r mag) {
	switch {
	case y.isZero():
		panic("mag: division by zero magnitude")
	case x.cmp(y) < 0:
		return nil, x.clone()
	case len(y) == 1:
		q, rw := x.divRemWord(y[0])
		return q, magFromWord(rw)
	}

	n := len(y)
	m := len(x)
	const b = 1 << 32

	// Normalize so the divisor's top bit is set; the quotient estimate
	// below is then off by at most two.
	s := uint(bits.LeadingZeros32(y[n-1]))
	vn := make(mag, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = y[i]<<s | uint32(uint64(y[i-1])>>(32-s))
	}
	vn[0] = y[0] << s
	if s == 0 {
		copy(vn, y)
	}
	un := make(mag, m+1)
	if s == 0 {
		copy(un, x)
	} else {
		un[m] = uint32(uint64(x[m-1]) >> (32 - s))
		for i := m - 1; i > 0; i-- {
			un[i] = x[i]<<s | uint32(uint64(x[i-1])>>(32-s))
		}
		un[0] = x[0] << s
	}

	q = make(mag, m-n+1)
	for j := m - n; j >= 0; j-- {
		num := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num - qhat*uint64(vn[n-1])
		for qhat >= b || qhat*uint64(vn[n-2]) > rhat<<32|uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= b {
				break
			}
		}

		// Multiply and subtract.
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&0xFFFFFFFF)
			un[i+j] = uint32(t)
			k = int64(p>>32) - t>>32
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)
		q[j] = uint32(qhat)

		// The estimate was one too large; add the divisor back.
		if t < 0 {
			q[j]--
			var c uint64
			for i := 0; i < n; i++ {
				c += uint64(un[i+j]) + uint64(vn[i])
				un[i+j] = uint32(c)
				c >>= 32
			}
			un[j+n] = uint32(uint64(un[j+n]) + c)
		}
	}

	// Denormalize the remainder.
	r = make(mag, n)
	if s == 0 {
		copy(r, un[:n])
	} else {
		for i := 0; i < n-1; i++ {
			r[i] = un[i]>>s | uint32(uint64(un[i+1])<<(32-s))
		}
		r[n-1] = un[n-1] >> s
	}
	return q.trim(), r.trim()
}

// shl calculates x << n, decomposed into a whole-word and a sub-word shift.
func (x mag) shl(n uint) mag {
	if x.isZero() || n == 0 {
		return x.clone()
	}
	words := int(n >> 5)
	shift := n & 31
	z := make(mag, len(x)+words+1)
	if shift == 0 {
		copy(z[words:], x)
	} else {
		var c uint32
		for i := 0; i < len(x); i++ {
			z[i+words] = x[i]<<shift | c
			c = uint32(uint64(x[i]) >> (32 - shift))
		}
		z[len(x)+words] = c
	}
	return z.trim()
}

// shr calculates x >> n, truncating toward zero.
func (x mag) shr(n uint) mag {
	words := int(n >> 5)
	if words >= len(x) {
		return nil
	}
	shift := n & 31
	z := make(mag, len(x)-words)
	if shift == 0 {
		copy(z, x[words:])
	} else {
		for i := 0; i < len(z)-1; i++ {
			z[i] = x[i+words]>>shift | x[i+words+1]<<(32-shift)
		}
		z[len(z)-1] = x[len(x)-1] >> shift
	}
	return z.trim()
}

// anyBitsBelow reports whether any of the n least significant bits of x
// are set. It drives the toward-negative-infinity fix-up on right shifts.
func (x mag) anyBitsBelow(n uint) bool {
	words := int(n >> 5)
	if words >= len(x) {
		words = len(x)
	}
	for i := 0; i < words; i++ {
		if x[i] != 0 {
			return true
		}
	}
	if shift := n & 31; shift != 0 && words < len(x) {
		return x[words]&(1<<shift-1) != 0
	}
	return false
}

// bitLen returns the length of x in bits. The zero magnitude has length 0.
func (x mag) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*32 + bits.Len32(x[len(x)-1])
}

// trailingZeroBits returns the number of trailing zero bits of a nonzero x.
func (x mag) trailingZeroBits() uint {
	i := 0
	for x[i] == 0 {
		i++
	}
	return uint(i*32 + bits.TrailingZeros32(x[i]))
}

// popCount returns the number of set bits in x.
func (x mag) popCount() int {
	var n int
	for _, w := range x {
		n += bits.OnesCount32(w)
	}
	return n
}

// bit returns bit i of x.
func (x mag) bit(i uint) uint {
	w := int(i >> 5)
	if w >= len(x) {
		return 0
	}
	return uint(x[w] >> (i & 31) & 1)
}

// isPow2 reports whether x is an exact power of two.
func (x mag) isPow2() bool {
	if len(x) == 0 {
		return false
	}
	for i := 0; i < len(x)-1; i++ {
		if x[i] != 0 {
			return false
		}
	}
	return x[len(x)-1]&(x[len(x)-1]-1) == 0
}

// and, or, xor and andNot operate on raw magnitudes; the two's-complement
// sign identities are applied by Int.
func (x mag) and(y mag) mag {
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make(mag, len(x))
	for i := range z {
		z[i] = x[i] & y[i]
	}
	return z.trim()
}

func (x mag) or(y mag) mag {
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make(mag, len(y))
	for i := range x {
		z[i] = x[i] | y[i]
	}
	copy(z[len(x):], y[len(x):])
	return z.trim()
}

func (x mag) xor(y mag) mag {
	if len(x) > len(y) {
		x, y = y, x
	}
	z := make(mag, len(y))
	for i := range x {
		z[i] = x[i] ^ y[i]
	}
	copy(z[len(x):], y[len(x):])
	return z.trim()
}

func (x mag) andNot(y mag) mag {
	z := make(mag, len(x))
	for i := range x {
		var w uint32
		if i < len(y) {
			w = y[i]
		}
		z[i] = x[i] &^ w
	}
	return z.trim()
}
