package helpers

import (
	"dlmmGoSDK/constants"
	"dlmmGoSDK/maths"
	"dlmmGoSDK/types"

	"github.com/holiman/uint256"
)

// GetBaseFee returns the flat component of the swap fee as an 18-decimal
// rate.
//
//	baseFee = baseFactor * binStep * 1e10
func GetBaseFee(fp *types.FeeParameters) *uint256.Int {
	fee := uint256.NewInt(uint64(fp.BaseFactor) * uint64(fp.BinStep))
	return fee.Mul(fee, uint256.NewInt(constants.BaseFeeScaling))
}

// GetVariableFee returns the volatility-driven component of the swap fee.
//
//	variableFee = ceil(variableFeeControl * (volatilityAccumulated * binStep)^2 / 100)
//
// Zero variableFeeControl disables it.
func GetVariableFee(fp *types.FeeParameters) *uint256.Int {
	if fp.VariableFeeControl == 0 {
		return new(uint256.Int)
	}
	prod := uint256.NewInt(uint64(fp.VolatilityAccumulated) * uint64(fp.BinStep))
	fee := new(uint256.Int).Mul(prod, prod)
	fee.Mul(fee, uint256.NewInt(uint64(fp.VariableFeeControl)))
	fee.Add(fee, uint256.NewInt(99))
	return fee.Div(fee, uint256.NewInt(100))
}

// GetTotalFee
//
//	totalFee = baseFee + variableFee
func GetTotalFee(fp *types.FeeParameters) *uint256.Int {
	base := GetBaseFee(fp)
	return base.Add(base, GetVariableFee(fp))
}

// GetFeeAmount returns the fee to charge on top of a sent amount, rounded
// up.
//
//	feeAmount = ceil(amount * fee / (precision - fee))
//
// A total fee at or above the precision means the preset escaped
// validation; that is a caller bug and panics.
func GetFeeAmount(fp *types.FeeParameters, amount *uint256.Int) (*uint256.Int, error) {
	fee := GetTotalFee(fp)
	if !fee.Lt(constants.PrecisionU256) {
		panic("helpers: total fee rate at or above precision")
	}
	denominator := new(uint256.Int).Sub(constants.PrecisionU256, fee)
	return maths.MulDivRoundUp(amount, fee, denominator)
}

// GetFeeAmountFrom returns the fee portion already embedded in a received
// amount, rounded up.
//
//	feeAmount = ceil(amountWithFees * fee / precision)
func GetFeeAmountFrom(fp *types.FeeParameters, amountWithFees *uint256.Int) (*uint256.Int, error) {
	return maths.MulDivRoundUp(amountWithFees, GetTotalFee(fp), constants.PrecisionU256)
}

// GetFeesDistribution splits a charged fee between the LP pool and the
// protocol treasury according to the pair's protocol share.
func GetFeesDistribution(fp *types.FeeParameters, fee *uint256.Int) types.FeesDistribution {
	// protocolShare <= 10_000, so the quotient always fits.
	protocol, _ := maths.MulDivRoundDown(
		fee,
		uint256.NewInt(uint64(fp.ProtocolShare)),
		uint256.NewInt(constants.BasisPointMax),
	)
	return types.FeesDistribution{Total: *fee, Protocol: *protocol}
}

// UpdateVariableFeeParameters runs the volatility window machine once at
// the start of a swap, then folds in the move to activeID.
//
// Outside the filter window the reference index snaps to the new active
// bin; the volatility reference keeps a reduced bump while still inside
// the decay window and resets once past it. now must not run backwards.
func UpdateVariableFeeParameters(fp *types.FeeParameters, activeID uint32, now uint64) {
	dt := now - fp.Time
	if dt >= uint64(fp.FilterPeriod) || fp.Time == 0 {
		fp.IndexRef = activeID
		if dt < uint64(fp.DecayPeriod) {
			fp.VolatilityReference = uint32(
				uint64(fp.ReductionFactor) * uint64(fp.VolatilityAccumulated) / constants.BasisPointMax,
			)
		} else {
			fp.VolatilityReference = 0
		}
	}
	fp.Time = now
	UpdateVolatilityAccumulated(fp, activeID)
}

// UpdateVolatilityAccumulated advances the accumulator for a move to
// activeID, capped at the configured ceiling. The swap loop calls this
// once per crossed bin.
//
//	volatilityAccumulated = min(max, |activeID - indexRef| * 10_000 + volatilityReference)
func UpdateVolatilityAccumulated(fp *types.FeeParameters, activeID uint32) {
	var delta uint64
	if activeID > fp.IndexRef {
		delta = uint64(activeID - fp.IndexRef)
	} else {
		delta = uint64(fp.IndexRef - activeID)
	}
	acc := delta*constants.BasisPointMax + uint64(fp.VolatilityReference)
	if acc > uint64(fp.MaxVolatilityAccumulated) {
		acc = uint64(fp.MaxVolatilityAccumulated)
	}
	fp.VolatilityAccumulated = uint32(acc)
}
