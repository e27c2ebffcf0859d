package rational

import (
	"testing"

	"github.com/stretchr/testify/require"

	bigmath "github.com/deveel/deveel-math-sub001"
)

func mustRat(t *testing.T, num, den int64) *Rational {
	t.Helper()
	r, err := New(bigmath.NewInt(num), bigmath.NewInt(den))
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	tcs := []struct {
		name     string
		num, den int64
		want     string
	}{
		{"reduced", 2, 4, "1/2"},
		{"negative denominator", 1, -2, "-1/2"},
		{"both negative", -3, -6, "1/2"},
		{"integer", 8, 4, "2"},
		{"zero", 0, 5, "0"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRat(t, tc.num, tc.den)
			require.Equal(t, tc.want, r.String())
		})
	}

	_, err := New(bigmath.NewInt(1), bigmath.NewInt(0))
	require.Error(t, err)
	require.True(t, bigmath.ErrDivideByZero.Has(err))
}

func TestArithmetic(t *testing.T) {
	half := mustRat(t, 1, 2)
	third := mustRat(t, 1, 3)

	require.Equal(t, "5/6", half.Add(third).String())
	require.Equal(t, "1/6", half.Sub(third).String())
	require.Equal(t, "1/6", half.Mul(third).String())

	q, err := half.Div(third)
	require.NoError(t, err)
	require.Equal(t, "3/2", q.String())

	_, err = half.Div(mustRat(t, 0, 1))
	require.Error(t, err)
	require.True(t, bigmath.ErrDivideByZero.Has(err))
}

func TestCmp(t *testing.T) {
	require.Equal(t, -1, mustRat(t, 1, 3).Cmp(mustRat(t, 1, 2)))
	require.Equal(t, 1, mustRat(t, -1, 3).Cmp(mustRat(t, -1, 2)))
	require.Equal(t, 0, mustRat(t, 2, 4).Cmp(mustRat(t, 1, 2)))
	require.True(t, mustRat(t, 2, 4).Equal(mustRat(t, 1, 2)))
	require.False(t, mustRat(t, 1, 3).Equal(mustRat(t, 1, 2)))
}

func TestDecimal(t *testing.T) {
	d, err := mustRat(t, 1, 4).Decimal(bigmath.Unlimited)
	require.NoError(t, err)
	require.Equal(t, "0.25", d.String())

	d, err = mustRat(t, 1, 3).Decimal(bigmath.Context{Precision: 5, Rounding: bigmath.RoundHalfUp})
	require.NoError(t, err)
	require.Equal(t, "0.33333", d.String())

	_, err = mustRat(t, 1, 3).Decimal(bigmath.Unlimited)
	require.Error(t, err)
	require.True(t, bigmath.ErrRoundingRequired.Has(err))
}
