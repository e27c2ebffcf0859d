package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"

	bigmath "github.com/deveel/deveel-math-sub001"
)

func TestFactorial(t *testing.T) {
	tcs := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}
	for _, tc := range tcs {
		z, err := Factorial(tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, z.String())
	}

	_, err := Factorial(-1)
	require.Error(t, err)
	require.True(t, bigmath.ErrArgumentOutOfRange.Has(err))
}

func TestBinomial(t *testing.T) {
	tcs := []struct {
		n, k int
		want string
	}{
		{0, 0, "1"},
		{5, 0, "1"},
		{5, 5, "1"},
		{5, 2, "10"},
		{10, 5, "252"},
		{50, 25, "126410606437752"},
	}
	for _, tc := range tcs {
		z, err := Binomial(tc.n, tc.k)
		require.NoError(t, err)
		require.Equal(t, tc.want, z.String(), "C(%d, %d)", tc.n, tc.k)
	}

	_, err := Binomial(3, 5)
	require.Error(t, err)
	require.True(t, bigmath.ErrArgumentOutOfRange.Has(err))
}

func TestBernoulli(t *testing.T) {
	tcs := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "-1/2"},
		{2, "1/6"},
		{3, "0"},
		{4, "-1/30"},
		{6, "1/42"},
		{8, "-1/30"},
		{10, "5/66"},
		{12, "-691/2730"},
	}
	for _, tc := range tcs {
		b, err := Bernoulli(tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, b.String(), "B(%d)", tc.n)
	}

	_, err := Bernoulli(-1)
	require.Error(t, err)
	require.True(t, bigmath.ErrArgumentOutOfRange.Has(err))
}
