package numconv

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/getkit/internal/errs"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{48, 18, 6},
		{18, 48, 6},
		{7, 0, 7},
		{0, 7, 7},
		{0, 0, 0},
		{-48, 18, 6},
		{-48, -18, 6},
		{17, 5, 1},
		{math.MinInt64, 2, 2},
	}

	for _, tt := range tests {
		got, err := GCD(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestGCD_Overflow(t *testing.T) {
	_, err := GCD(math.MinInt64, 0)
	require.Error(t, err)
	assert.True(t, errs.IsOverflow(err))
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{4, 6, 12},
		{6, 4, 12},
		{0, 6, 0},
		{-4, 6, 12},
		{7, 13, 91},
		{math.MaxInt64, 1, math.MaxInt64},
	}

	for _, tt := range tests {
		got, err := LCM(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "LCM(%d, %d)", tt.a, tt.b)
	}
}

func TestLCM_Overflow(t *testing.T) {
	_, err := LCM(math.MaxInt64, 2)
	require.Error(t, err)
	assert.True(t, errs.IsOverflow(err))

	_, err = LCM(math.MinInt64, 3)
	require.Error(t, err)
	assert.True(t, errs.IsOverflow(err))
}

func TestBigGCDAndLCM(t *testing.T) {
	a, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	b := big.NewInt(-30)

	assert.Equal(t, "30", BigGCD(a, b).String())
	assert.Equal(t, a.String(), BigLCM(a, b).String())
	assert.Equal(t, "0", BigLCM(a, big.NewInt(0)).String())
	assert.Equal(t, "12", BigLCM(big.NewInt(4), big.NewInt(6)).String())
}
