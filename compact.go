package bigmath

import "math/bits"

// fcoef is a compact unscaled coefficient: an unsigned integer capped at
// maxFcoef so decimal-digit counting stays meaningful. Decimals whose
// coefficient fits an fcoef run entirely on machine arithmetic; anything
// larger falls through to the *Int slow path.
type fcoef uint64

const (
	maxFcoefDigits = 19
	maxFcoef       = fcoef(9_999_999_999_999_999_999) // 10^19 - 1
)

// fpow10 holds 10^i for i in [0, 19]. 10^19 still fits a uint64.
var fpow10 = [...]fcoef{
	1, 10, 100,
	1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000,
	1_000_000_000, 10_000_000_000, 100_000_000_000,
	1_000_000_000_000, 10_000_000_000_000, 100_000_000_000_000,
	1_000_000_000_000_000, 10_000_000_000_000_000, 100_000_000_000_000_000,
	1_000_000_000_000_000_000, 10_000_000_000_000_000_000,
}

// add calculates x + y, reporting whether the result stays compact.
func (x fcoef) add(y fcoef) (z fcoef, ok bool) {
	z = x + y
	if z > maxFcoef {
		return 0, false
	}
	return z, true
}

// sub calculates x - y. Requires x >= y.
func (x fcoef) sub(y fcoef) fcoef {
	return x - y
}

// mul calculates x * y, reporting whether the result stays compact.
func (x fcoef) mul(y fcoef) (z fcoef, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 || fcoef(lo) > maxFcoef {
		return 0, false
	}
	return fcoef(lo), true
}

// lsh calculates x * 10^shift, reporting whether the result stays compact.
func (x fcoef) lsh(shift int) (z fcoef, ok bool) {
	if shift <= 0 {
		return x, shift == 0
	}
	if shift > maxFcoefDigits {
		return 0, x == 0
	}
	return x.mul(fpow10[shift])
}

// quoRem calculates x / y and x % y for y != 0.
func (x fcoef) quoRem(y fcoef) (q, r fcoef) {
	return x / y, x % y
}

// rshRound calculates x / 10^shift rounded per mode, with neg carrying the
// sign of the enclosing decimal. The result of a right shift always stays
// compact, so the only failure is RoundUnnecessary on an inexact shift.
func (x fcoef) rshRound(shift int, mode RoundingMode, neg bool) (fcoef, error) {
	if shift <= 0 || x == 0 {
		return x, nil
	}
	if shift > maxFcoefDigits {
		// Everything is discarded; the remainder is below half of 10^shift.
		inc, err := mode.needsIncrement(neg, false, -1, true)
		if err != nil {
			return 0, err
		}
		if inc {
			return 1, nil
		}
		return 0, nil
	}
	p := fpow10[shift]
	q, r := x.quoRem(p)
	if r == 0 {
		return q, nil
	}
	cmpHalf := 1
	if h := p / 2; r < h {
		cmpHalf = -1
	} else if r == h {
		cmpHalf = 0
	}
	inc, err := mode.needsIncrement(neg, q&1 != 0, cmpHalf, true)
	if err != nil {
		return 0, err
	}
	if inc {
		q++
	}
	return q, nil
}

// prec returns the number of decimal digits of x by binary search over the
// power-of-ten table. prec(0) is 0.
func (x fcoef) prec() int {
	lo, hi := 0, len(fpow10)
	for lo < hi {
		mid := (lo + hi) / 2
		if x < fpow10[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// ntz returns the number of trailing zero decimal digits of a nonzero x.
func (x fcoef) ntz() int {
	lo, hi := 0, maxFcoefDigits
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if x%fpow10[mid] == 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// fcoefFromMag converts a magnitude to an fcoef, reporting whether it fits.
func fcoefFromMag(m mag) (fcoef, bool) {
	if len(m) > 2 {
		return 0, false
	}
	v := fcoef(m.uint64Value())
	if v > maxFcoef {
		return 0, false
	}
	return v, true
}
