package amount

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/pay2alpha/internal/errs"
)

func TestCost(t *testing.T) {
	t.Parallel()

	c, err := Cost(10, 1_000_000)
	require.NoError(t, err)
	require.Equal(t, int64(10_000_000), c)

	for _, tc := range [][2]int64{{0, 1}, {1, 0}, {-1, 5}, {math.MaxInt64, 2}, {1 << 32, 1 << 32}} {
		_, err := Cost(tc[0], tc[1])
		require.ErrorIs(t, err, errs.ErrInvalidAmount, "credits=%d price=%d", tc[0], tc[1])
	}

	c, err = Cost(1, math.MaxInt64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), c)
}

func TestShare_Truncates(t *testing.T) {
	t.Parallel()

	s, err := Share(10, 3, 10)
	require.NoError(t, err)
	require.Equal(t, int64(3), s)

	s, err = Share(10, 1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), s)

	s, err = Share(1, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(0), s)
}

func TestShare_NoIntermediateOverflow(t *testing.T) {
	t.Parallel()

	total := int64(math.MaxInt64 - 1)
	s, err := Share(total, 3, 4)
	require.NoError(t, err)
	require.Equal(t, int64(6917529027641081854), s) // floor((2^63-2)*3/4)

	s, err = Share(total, 4, 4)
	require.NoError(t, err)
	require.Equal(t, total, s)
}

func TestShare_SumNeverExceedsTotal(t *testing.T) {
	t.Parallel()

	for total := int64(0); total < 50; total++ {
		for granted := int64(1); granted < 12; granted++ {
			var paid, used int64
			for used < granted {
				s, err := Share(total, 1, granted)
				require.NoError(t, err)
				paid += s
				used++
			}
			require.LessOrEqual(t, paid, total)
		}
	}
}

func TestShare_Invalid(t *testing.T) {
	t.Parallel()

	for _, tc := range [][3]int64{{10, 0, 10}, {10, 11, 10}, {10, 1, 0}, {-1, 1, 1}} {
		_, err := Share(tc[0], tc[1], tc[2])
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	}
}
