package helpers

import (
	"errors"

	"dlmmGoSDK/constants"
	"dlmmGoSDK/maths"
	"dlmmGoSDK/types"

	"github.com/holiman/uint256"
)

// ErrAmountOverflow indicates a bin-level amount no longer fits into 256
// bits.
var ErrAmountOverflow = errors.New("amount exceeds 256 bits")

// GetAmounts computes how much of amountIn the bin at activeID can absorb.
//
// Returns the portion of amountIn consumed by this bin (fee included), the
// amount sent out, and the fee split charged on the consumed portion. A bin
// with no liquidity on the requested side absorbs nothing.
//
// swapForY - the trade sends token X into the bin and takes token Y out;
// the bin price is Y per X in 128.128 fixed point.
//
// The capping side rounds up (the bin may not be underpaid for its full
// reserve) and the output side rounds down, so rounding always favors the
// pool.
func GetAmounts(
	bin *types.Bin,
	fp *types.FeeParameters,
	activeID uint32,
	swapForY bool,
	amountIn *uint256.Int,
) (amountInToBin, amountOut *uint256.Int, fees types.FeesDistribution, err error) {

	reserve := &bin.ReserveY
	if !swapForY {
		reserve = &bin.ReserveX
	}
	if reserve.IsZero() {
		return new(uint256.Int), new(uint256.Int), types.FeesDistribution{}, nil
	}

	price, err := maths.GetPriceFromID(activeID, uint16(fp.BinStep))
	if err != nil {
		return nil, nil, types.FeesDistribution{}, err
	}

	// The most this bin can take in before its opposite reserve runs dry.
	var maxAmountIn *uint256.Int
	if swapForY {
		maxAmountIn, err = maths.ShiftDivRoundUp(reserve, constants.ScaleOffset, price)
	} else {
		maxAmountIn, err = maths.MulShiftRoundUp(reserve, price, constants.ScaleOffset)
	}
	if err != nil {
		return nil, nil, types.FeesDistribution{}, err
	}

	maxFee, err := GetFeeAmount(fp, maxAmountIn)
	if err != nil {
		return nil, nil, types.FeesDistribution{}, err
	}
	maxTotal, overflow := new(uint256.Int).AddOverflow(maxAmountIn, maxFee)
	if overflow {
		return nil, nil, types.FeesDistribution{}, ErrAmountOverflow
	}

	var fee *uint256.Int
	if !amountIn.Lt(maxTotal) {
		// Drain the bin.
		fee = maxFee
		amountInToBin = maxTotal
		amountOut = reserve.Clone()
	} else {
		fee, err = GetFeeAmountFrom(fp, amountIn)
		if err != nil {
			return nil, nil, types.FeesDistribution{}, err
		}
		net := new(uint256.Int).Sub(amountIn, fee)
		if swapForY {
			amountOut, err = maths.MulShiftRoundDown(net, price, constants.ScaleOffset)
		} else {
			amountOut, err = maths.ShiftDivRoundDown(net, constants.ScaleOffset, price)
		}
		if err != nil {
			return nil, nil, types.FeesDistribution{}, err
		}
		amountInToBin = amountIn.Clone()
		if amountOut.Gt(reserve) {
			amountOut = reserve.Clone()
		}
	}

	return amountInToBin, amountOut, GetFeesDistribution(fp, fee), nil
}
