package helpers_test

import (
	"testing"

	"dlmmGoSDK/constants"
	"dlmmGoSDK/helpers"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceToDecimal(t *testing.T) {
	t.Run("equal decimals", func(t *testing.T) {
		got := helpers.PriceToDecimal(constants.Scale, 6, 6)
		assert.True(t, got.Equal(decimal.NewFromInt(1)), got.String())
	})

	t.Run("decimal gap shifts the price", func(t *testing.T) {
		got := helpers.PriceToDecimal(constants.Scale, 9, 6)
		assert.True(t, got.Equal(decimal.NewFromInt(1_000)), got.String())
	})

	t.Run("half in 128.128", func(t *testing.T) {
		half := new(uint256.Int).Rsh(constants.Scale, 1)
		got := helpers.PriceToDecimal(half, 6, 6)
		assert.True(t, got.Equal(decimal.RequireFromString("0.5")), got.String())
	})
}

func TestGetMinAmountWithSlippage(t *testing.T) {
	out := helpers.GetMinAmountWithSlippage(uint256.NewInt(100_000), 0.5)
	require.NotNil(t, out)
	assert.Equal(t, uint64(99_500), out.Uint64())

	out = helpers.GetMinAmountWithSlippage(uint256.NewInt(100_000), 0)
	assert.Equal(t, uint64(100_000), out.Uint64())
}
