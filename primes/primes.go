// Package primes provides prime generation and factorization over
// arbitrary-precision integers.
package primes

import (
	bigmath "github.com/deveel/deveel-math-sub001"
)

// Factor is one prime power of a factorization.
type Factor struct {
	Prime    *bigmath.Int
	Exponent int
}

// Source yields successive primes in ascending order starting from 2. A
// Source is stateful and not safe for concurrent use.
type Source interface {
	Next() *bigmath.Int
}

// trialSource generates primes by trial division against the primes it
// has already produced, testing divisors only up to the square root of
// the candidate.
type trialSource struct {
	found []*bigmath.Int
	cand  int64
}

// NewTrialSource returns a trial-division Source.
func NewTrialSource() Source {
	return &trialSource{cand: 1}
}

func (s *trialSource) Next() *bigmath.Int {
	for {
		s.cand++
		c := bigmath.NewInt(s.cand)
		if s.isPrime(c) {
			s.found = append(s.found, c)
			return c
		}
	}
}

func (s *trialSource) isPrime(c *bigmath.Int) bool {
	for _, p := range s.found {
		if p.Mul(p).Cmp(c) > 0 {
			break
		}
		r, _ := c.Rem(p)
		if r.IsZero() {
			return false
		}
	}
	return true
}

// Factorize decomposes x > 0 into prime powers in ascending prime order
// using the given Source, or a fresh trial-division source when nil.
// Division stops once the square of the current prime exceeds the
// remaining cofactor, which is then itself prime.
// Factorize fails with ErrArgumentOutOfRange if x < 1.
func Factorize(x *bigmath.Int, src Source) ([]Factor, error) {
	if x.Sign() < 1 {
		return nil, bigmath.ErrArgumentOutOfRange.New("factorization needs a positive value, got %s", x)
	}
	if src == nil {
		src = NewTrialSource()
	}
	one := bigmath.NewInt(1)
	if x.Equal(one) {
		return nil, nil
	}
	var fs []Factor
	rest := x
	for {
		p := src.Next()
		if p.Mul(p).Cmp(rest) > 0 {
			break
		}
		exp := 0
		for {
			q, r, err := rest.DivRem(p)
			if err != nil {
				return nil, err
			}
			if !r.IsZero() {
				break
			}
			rest = q
			exp++
		}
		if exp > 0 {
			fs = append(fs, Factor{Prime: p, Exponent: exp})
		}
		if rest.Equal(one) {
			return fs, nil
		}
	}
	return append(fs, Factor{Prime: rest, Exponent: 1}), nil
}

// Primorial returns the product of all primes up to and including n.
// Primorial fails with ErrArgumentOutOfRange if n < 2.
func Primorial(n int64) (*bigmath.Int, error) {
	if n < 2 {
		return nil, bigmath.ErrArgumentOutOfRange.New("primorial needs n >= 2, got %d", n)
	}
	src := NewTrialSource()
	z := bigmath.NewInt(1)
	for {
		p := src.Next()
		if p.Cmp(bigmath.NewInt(n)) > 0 {
			return z, nil
		}
		z = z.Mul(p)
	}
}
