package types

import (
	"fmt"

	"dlmmGoSDK/constants"

	"github.com/holiman/uint256"
)

// Bin is the liquidity parked at one discrete price point, together with
// the per-share fee accumulators used for proportional LP fee claims.
type Bin struct {
	ReserveX          uint256.Int
	ReserveY          uint256.Int
	AccTokenXPerShare uint256.Int
	AccTokenYPerShare uint256.Int
}

// IsEmpty reports whether the bin has nothing to give out on the requested
// side of a swap.
func (bin *Bin) IsEmpty(swapForY bool) bool {
	if swapForY {
		return bin.ReserveY.IsZero()
	}
	return bin.ReserveX.IsZero()
}

// UpdateFees folds a charged fee into the pair-level accumulator of the
// side the fee was paid in and advances the bin's per-share accumulator.
//
// swapForY - the fee was charged on token X (an X-for-Y swap).
//
// totalSupply - liquidity supply of the bin. A bin can hold reserves with
// no outstanding shares once its last shares were burned; the fee then has
// no holder to accrue to and stays with the pair accumulator only.
func (bin *Bin) UpdateFees(pair *PairInformation, fees *FeesDistribution, swapForY bool, totalSupply *uint256.Int) {
	if swapForY {
		pair.FeesX.Total.Add(&pair.FeesX.Total, &fees.Total)
		pair.FeesX.Protocol.Add(&pair.FeesX.Protocol, &fees.Protocol)
		if !totalSupply.IsZero() {
			bin.AccTokenXPerShare.Add(&bin.AccTokenXPerShare, fees.GetTokenPerShare(totalSupply))
		}
		return
	}
	pair.FeesY.Total.Add(&pair.FeesY.Total, &fees.Total)
	pair.FeesY.Protocol.Add(&pair.FeesY.Protocol, &fees.Protocol)
	if !totalSupply.IsZero() {
		bin.AccTokenYPerShare.Add(&bin.AccTokenYPerShare, fees.GetTokenPerShare(totalSupply))
	}
}

// Debt is the per-position accounting value owned by the liquidity-position
// layer; the core never mutates it.
type Debt struct {
	DebtX uint256.Int
	DebtY uint256.Int
}

// FeesDistribution splits a charged fee between the LP pool and the
// protocol treasury. Protocol never exceeds Total.
type FeesDistribution struct {
	Total    uint256.Int
	Protocol uint256.Int
}

// GetTokenPerShare
//  (total - protocol) << 128 / totalSupply
// rounded down. A zero supply is a caller bug and panics.
func (fd *FeesDistribution) GetTokenPerShare(totalSupply *uint256.Int) *uint256.Int {
	if totalSupply.IsZero() {
		panic("types: token per share with zero total supply")
	}
	lpFee := new(uint256.Int).Sub(&fd.Total, &fd.Protocol)
	share, overflow := new(uint256.Int).MulDivOverflow(lpFee, constants.Scale, totalSupply)
	if overflow {
		panic("types: token per share exceeds 256 bits")
	}
	return share
}

// FeeParameters is the per-pair dynamic fee state. The static fields come
// from the pair preset; the volatility fields are advanced on every swap.
type FeeParameters struct {
	BinStep                  uint32
	BaseFactor               uint32
	FilterPeriod             uint32
	DecayPeriod              uint32
	ReductionFactor          uint32
	VariableFeeControl       uint32
	ProtocolShare            uint32
	MaxVolatilityAccumulated uint32
	VolatilityAccumulated    uint32
	VolatilityReference      uint32
	IndexRef                 uint32
	Time                     uint64
}

// Validate checks the preset-time invariants. The factory layer runs this
// once at pair creation; parameters that fail it must never reach the fee
// computations.
func (fp *FeeParameters) Validate() error {
	if fp.FilterPeriod >= fp.DecayPeriod {
		return fmt.Errorf("filter period %d must be below decay period %d", fp.FilterPeriod, fp.DecayPeriod)
	}
	if fp.ReductionFactor > constants.BasisPointMax {
		return fmt.Errorf("reduction factor %d exceeds %d basis points", fp.ReductionFactor, constants.BasisPointMax)
	}
	if fp.ProtocolShare > constants.BasisPointMax {
		return fmt.Errorf("protocol share %d exceeds %d basis points", fp.ProtocolShare, constants.BasisPointMax)
	}
	if fp.BinStep > constants.BasisPointMax {
		return fmt.Errorf("bin step %d exceeds %d basis points", fp.BinStep, constants.BasisPointMax)
	}
	return nil
}

// PairInformation is the pair-level ledger record: the active bin, the
// aggregate reserves across all bins, the pending fees of both sides and
// the oracle bookkeeping slots.
type PairInformation struct {
	ActiveID uint32
	ReserveX uint256.Int
	ReserveY uint256.Int
	FeesX    FeesDistribution
	FeesY    FeesDistribution

	OracleSampleLifetime uint32
	OracleSize           uint32
	OracleActiveSize     uint32
	OracleLastTimestamp  uint64
	OracleID             uint32
}
