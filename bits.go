package bigmath

// Bit-level operations interpret a negative Int as if it were stored in
// infinite-precision two's complement while the storage stays
// sign-magnitude. The two's-complement word at any index is derived on
// demand from the magnitude and the first nonzero word (the carry point);
// a full two's-complement array is never materialized.

// effectiveWord returns word i of the infinite two's-complement form of x.
// For negative values, words below the carry point are zero, the word at
// the carry point is the negation of the magnitude word, and every word
// above it is the complement.
func (x *Int) effectiveWord(i int) uint32 {
	if x.sign >= 0 {
		if i < len(x.mag) {
			return x.mag[i]
		}
		return 0
	}
	fnz := x.firstNonzeroWord()
	switch {
	case i < fnz:
		return 0
	case i == fnz:
		return ^x.mag[i] + 1
	case i < len(x.mag):
		return ^x.mag[i]
	}
	return ^uint32(0)
}

// BitLen returns the length of x in bits: the number of bits in the
// minimal two's-complement representation of x, excluding the sign bit.
// The bit length of 0 is 0.
func (x *Int) BitLen() int {
	if x.bitLenCache == cacheUnset {
		n := x.mag.bitLen()
		if x.sign < 0 && x.mag.isPow2() {
			// -(2^k) fits in k bits: ...1110...0.
			n--
		}
		x.bitLenCache = int32(n)
	}
	return int(x.bitLenCache)
}

// BitCount returns the number of bits of x that differ from its sign bit
// under the two's-complement interpretation (the Hamming weight for
// non-negative values).
func (x *Int) BitCount() int {
	if x.bitCountCache == cacheUnset {
		n := x.mag.popCount()
		if x.sign < 0 {
			n += int(x.mag.trailingZeroBits()) - 1
		}
		x.bitCountCache = int32(n)
	}
	return int(x.bitCountCache)
}

// TestBit reports whether bit n of the two's-complement representation of
// x is set. TestBit fails with ErrNegativeBitIndex if n < 0.
func (x *Int) TestBit(n int) (bool, error) {
	if n < 0 {
		return false, ErrNegativeBitIndex.New("bit index %d", n)
	}
	w := x.effectiveWord(n >> 5)
	return w>>(uint(n)&31)&1 != 0, nil
}

// SetBit returns x with bit n set. Changing a bit adds or removes 2^n, so
// the carry and borrow propagation across word boundaries is handled by
// the magnitude addition and subtraction kernels.
// SetBit fails with ErrNegativeBitIndex if n < 0.
func (x *Int) SetBit(n int) (*Int, error) {
	set, err := x.TestBit(n)
	if err != nil {
		return nil, err
	}
	if set {
		return x, nil
	}
	return x.Add(intPow2(n)), nil
}

// ClearBit returns x with bit n cleared.
// ClearBit fails with ErrNegativeBitIndex if n < 0.
func (x *Int) ClearBit(n int) (*Int, error) {
	set, err := x.TestBit(n)
	if err != nil {
		return nil, err
	}
	if !set {
		return x, nil
	}
	return x.Sub(intPow2(n)), nil
}

// FlipBit returns x with bit n inverted.
// FlipBit fails with ErrNegativeBitIndex if n < 0.
func (x *Int) FlipBit(n int) (*Int, error) {
	set, err := x.TestBit(n)
	if err != nil {
		return nil, err
	}
	if set {
		return x.Sub(intPow2(n)), nil
	}
	return x.Add(intPow2(n)), nil
}

// intPow2 returns 2^n for n >= 0.
func intPow2(n int) *Int {
	m := make(mag, n>>5+1)
	m[n>>5] = 1 << (uint(n) & 31)
	return newInt(1, m)
}

// ShiftLeft returns x << n. A negative count shifts right.
func (x *Int) ShiftLeft(n int) *Int {
	switch {
	case n < 0:
		return x.ShiftRight(-n)
	case n == 0 || x.sign == 0:
		return x
	}
	z := newInt(x.sign, x.mag.clone())
	z.inplaceShiftLeft(uint(n))
	return z
}

// ShiftRight returns x >> n, rounding toward negative infinity: shifting
// a negative value rounds the quotient up in magnitude whenever any
// shifted-out bit was nonzero, matching an arithmetic shift on the
// two's-complement form. A negative count shifts left.
func (x *Int) ShiftRight(n int) *Int {
	switch {
	case n < 0:
		return x.ShiftLeft(-n)
	case n == 0 || x.sign == 0:
		return x
	}
	lost := x.sign < 0 && x.mag.anyBitsBelow(uint(n))
	z := newInt(x.sign, x.mag.clone())
	z.inplaceShiftRight(uint(n))
	if lost {
		z.mag = z.mag.addWord(1)
		z.sign = x.sign
		z.invalidateCaches()
	}
	return z
}

// inplaceShiftLeft shifts the magnitude left by n bits, decomposed into a
// whole-word move (n >> 5) and a sub-word shift (n & 31). The receiver
// must be under exclusive construction-time ownership; all cached values
// are invalidated.
func (z *Int) inplaceShiftLeft(n uint) {
	if len(z.mag) == 0 || n == 0 {
		return
	}
	words := int(n >> 5)
	shift := n & 31
	old := len(z.mag)
	z.mag = append(z.mag, make(mag, words+1)...)
	if shift == 0 {
		copy(z.mag[words:], z.mag[:old])
	} else {
		z.mag[old+words] = uint32(uint64(z.mag[old-1]) >> (32 - shift))
		for i := old - 1; i > 0; i-- {
			z.mag[i+words] = z.mag[i]<<shift | uint32(uint64(z.mag[i-1])>>(32-shift))
		}
		z.mag[words] = z.mag[0] << shift
	}
	for i := 0; i < words; i++ {
		z.mag[i] = 0
	}
	z.mag = z.mag.trim()
	z.invalidateCaches()
}

// inplaceShiftRight shifts the magnitude right by n bits, truncating
// toward zero. Same ownership rules as inplaceShiftLeft.
func (z *Int) inplaceShiftRight(n uint) {
	if len(z.mag) == 0 || n == 0 {
		return
	}
	words := int(n >> 5)
	if words >= len(z.mag) {
		z.mag = nil
		z.sign = 0
		z.invalidateCaches()
		return
	}
	shift := n & 31
	top := len(z.mag) - words
	if shift == 0 {
		copy(z.mag, z.mag[words:])
	} else {
		for i := 0; i < top-1; i++ {
			z.mag[i] = z.mag[i+words]>>shift | z.mag[i+words+1]<<(32-shift)
		}
		z.mag[top-1] = z.mag[len(z.mag)-1] >> shift
	}
	z.mag = z.mag[:top].trim()
	if len(z.mag) == 0 {
		z.sign = 0
	}
	z.invalidateCaches()
}

// Logical operations below derive their results from sign-magnitude
// identities instead of materialized two's complement, e.g.
// (-x) & (-y) == ^(x-1) & ^(y-1) == -(((x-1) | (y-1)) + 1).

// And returns x & y under the two's-complement interpretation.
func (x *Int) And(y *Int) *Int {
	if x.sign < 0 && y.sign < 0 {
		x1 := x.mag.subWord(1)
		y1 := y.mag.subWord(1)
		return newInt(-1, x1.or(y1).addWord(1))
	}
	if x.sign >= 0 && y.sign >= 0 {
		return newInt(1, x.mag.and(y.mag))
	}
	if x.sign < 0 {
		x, y = y, x
	}
	// x & (-y) == x &^ (y-1)
	return newInt(1, x.mag.andNot(y.mag.subWord(1)))
}

// Or returns x | y under the two's-complement interpretation.
func (x *Int) Or(y *Int) *Int {
	if x.sign < 0 && y.sign < 0 {
		x1 := x.mag.subWord(1)
		y1 := y.mag.subWord(1)
		return newInt(-1, x1.and(y1).addWord(1))
	}
	if x.sign >= 0 && y.sign >= 0 {
		return newInt(maxInt8(x.sign, y.sign), x.mag.or(y.mag))
	}
	if x.sign < 0 {
		x, y = y, x
	}
	// x | (-y) == -(((y-1) &^ x) + 1)
	return newInt(-1, y.mag.subWord(1).andNot(x.mag).addWord(1))
}

// Xor returns x ^ y under the two's-complement interpretation.
func (x *Int) Xor(y *Int) *Int {
	if x.sign < 0 && y.sign < 0 {
		x1 := x.mag.subWord(1)
		y1 := y.mag.subWord(1)
		return newInt(1, x1.xor(y1))
	}
	if x.sign >= 0 && y.sign >= 0 {
		return newInt(1, x.mag.xor(y.mag))
	}
	if x.sign < 0 {
		x, y = y, x
	}
	// x ^ (-y) == -((x ^ (y-1)) + 1)
	return newInt(-1, x.mag.xor(y.mag.subWord(1)).addWord(1))
}

// AndNot returns x &^ y under the two's-complement interpretation.
func (x *Int) AndNot(y *Int) *Int {
	switch {
	case x.sign < 0 && y.sign < 0:
		// (-x) &^ (-y) == (y-1) &^ (x-1)
		x1 := x.mag.subWord(1)
		y1 := y.mag.subWord(1)
		return newInt(1, y1.andNot(x1))
	case x.sign >= 0 && y.sign >= 0:
		return newInt(1, x.mag.andNot(y.mag))
	case x.sign < 0:
		// (-x) &^ y == -(((x-1) | y) + 1)
		return newInt(-1, x.mag.subWord(1).or(y.mag).addWord(1))
	}
	// x &^ (-y) == x & (y-1)
	return newInt(1, x.mag.and(y.mag.subWord(1)))
}

// Not returns ^x == -x - 1.
func (x *Int) Not() *Int {
	if x.sign < 0 {
		return newInt(1, x.mag.subWord(1))
	}
	return newInt(-1, x.mag.addWord(1))
}

func maxInt8(a, b int8) int8 {
	if a > b {
		return a
	}
	return b
}
