// Package sequence computes classic integer and rational sequences on
// top of the arbitrary-precision types.
package sequence

import (
	bigmath "github.com/deveel/deveel-math-sub001"
	"github.com/deveel/deveel-math-sub001/rational"
)

// Factorial returns n! for n >= 0.
// Factorial fails with ErrArgumentOutOfRange if n is negative.
func Factorial(n int) (*bigmath.Int, error) {
	if n < 0 {
		return nil, bigmath.ErrArgumentOutOfRange.New("factorial of negative %d", n)
	}
	z := bigmath.NewInt(1)
	for i := 2; i <= n; i++ {
		z = z.Mul(bigmath.NewInt(int64(i)))
	}
	return z, nil
}

// Binomial returns the binomial coefficient C(n, k) for 0 <= k <= n,
// built multiplicatively so every intermediate division is exact.
// Binomial fails with ErrArgumentOutOfRange on arguments outside that
// range.
func Binomial(n, k int) (*bigmath.Int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, bigmath.ErrArgumentOutOfRange.New("binomial C(%d, %d)", n, k)
	}
	if k > n-k {
		k = n - k
	}
	z := bigmath.NewInt(1)
	for i := 1; i <= k; i++ {
		z = z.Mul(bigmath.NewInt(int64(n - k + i)))
		z, _ = z.Div(bigmath.NewInt(int64(i)))
	}
	return z, nil
}

// Bernoulli returns the n-th Bernoulli number (B1 = -1/2 convention) as
// an exact rational, by the defining recurrence
//
//	B_n = -1/(n+1) * sum_{k=0}^{n-1} C(n+1, k) * B_k.
//
// Odd indices beyond one are zero and short-circuit.
// Bernoulli fails with ErrArgumentOutOfRange if n is negative.
func Bernoulli(n int) (*rational.Rational, error) {
	if n < 0 {
		return nil, bigmath.ErrArgumentOutOfRange.New("bernoulli of negative %d", n)
	}
	if n > 1 && n&1 == 1 {
		return rational.FromInt(bigmath.NewInt(0)), nil
	}
	b := make([]*rational.Rational, n+1)
	b[0] = rational.FromInt(bigmath.NewInt(1))
	for m := 1; m <= n; m++ {
		sum := rational.FromInt(bigmath.NewInt(0))
		for k := 0; k < m; k++ {
			if b[k].IsZero() {
				continue
			}
			c, err := Binomial(m+1, k)
			if err != nil {
				return nil, err
			}
			sum = sum.Add(b[k].Mul(rational.FromInt(c)))
		}
		inv, err := rational.New(bigmath.NewInt(-1), bigmath.NewInt(int64(m+1)))
		if err != nil {
			return nil, err
		}
		b[m] = sum.Mul(inv)
	}
	return b[n], nil
}
