package helpers

import (
	"dlmmGoSDK/constants"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// PriceToDecimal converts a 128.128 bin price into a human-readable
// decimal, adjusted for the display decimals of both tokens.
// Example:
//
//	PriceToDecimal(price, 9, 6) for a SOL/USDC-style pair.
func PriceToDecimal(price *uint256.Int, decimalsX, decimalsY int32) decimal.Decimal {
	return decimal.NewFromBigInt(price.ToBig(), 0).
		Div(decimal.NewFromBigInt(constants.Scale.ToBig(), 0)).
		Shift(decimalsX - decimalsY)
}

// GetMinAmountWithSlippage calculates the minimum amount receivable after
// slippage is applied.
//
// - amount: the quoted output amount.
//
// - rate: the slippage rate as a float64 percentage (e.g., 0.5 for 0.5%).
// Example:
//
//	GetMinAmountWithSlippage(uint256.NewInt(100000), 0.5) returns 99500 for 0.5% slippage.
func GetMinAmountWithSlippage(amount *uint256.Int, rate float64) *uint256.Int {
	slippage := uint256.NewInt(uint64((100 - rate) / 100 * constants.BasisPointMax))
	out, _ := new(uint256.Int).MulDivOverflow(amount, slippage, uint256.NewInt(constants.BasisPointMax))
	return out
}
