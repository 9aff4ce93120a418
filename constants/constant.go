package constants

import "github.com/holiman/uint256"

const (
	// ScaleOffset is the number of fractional bits of the 128.128
	// fixed-point representation used for bin prices.
	ScaleOffset = 128

	BasisPointMax = 10_000

	// RealIDShift is the id of the bin priced at exactly 1.
	//  RealIDShift = 1 << 23
	RealIDShift = 1 << 23

	// MaxBinID is the largest addressable bin id (24-bit id space).
	MaxBinID = (1 << 24) - 1

	// FeePrecision scales fee rates to 18 decimals.
	FeePrecision = 1_000_000_000_000_000_000

	// BaseFeeScaling turns baseFactor * binStep into an 18-decimal rate.
	BaseFeeScaling = 10_000_000_000
)

// These are uint256 values, initialized once at package load.
var (
	// Scale is 1 in 128.128 fixed point.
	//  Scale = 1 << 128
	Scale = new(uint256.Int).Lsh(uint256.NewInt(1), ScaleOffset)

	// PrecisionU256
	//  PrecisionU256 = uint256.NewInt(FeePrecision)
	PrecisionU256 = uint256.NewInt(FeePrecision)
)
