package types_test

import (
	"math/rand"
	"testing"

	"dlmmGoSDK/types"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randU256(r *rand.Rand) uint256.Int {
	switch r.Intn(4) {
	case 0:
		return uint256.Int{}
	case 1:
		return *new(uint256.Int).SetAllOne()
	default:
		return uint256.Int{r.Uint64(), r.Uint64(), r.Uint64(), r.Uint64()}
	}
}

func roundTrip(t *testing.T, obj, into types.Serializable) []byte {
	t.Helper()
	data, err := types.Serialize(obj)
	require.NoError(t, err)
	require.NoError(t, types.Deserialize(into, data))

	again, err := types.Serialize(into)
	require.NoError(t, err)
	assert.Equal(t, data, again, "byte-for-byte stable")
	return data
}

func TestSerializationRoundTrips(t *testing.T) {
	r := rand.New(rand.NewSource(13))

	t.Run("Bin", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			in := &types.Bin{
				ReserveX:          randU256(r),
				ReserveY:          randU256(r),
				AccTokenXPerShare: randU256(r),
				AccTokenYPerShare: randU256(r),
			}
			out := new(types.Bin)
			data := roundTrip(t, in, out)
			assert.Equal(t, in, out)
			assert.Len(t, data, 128)
		}
	})

	t.Run("Debt", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			in := &types.Debt{DebtX: randU256(r), DebtY: randU256(r)}
			out := new(types.Debt)
			data := roundTrip(t, in, out)
			assert.Equal(t, in, out)
			assert.Len(t, data, 64)
		}
	})

	t.Run("FeesDistribution", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			in := &types.FeesDistribution{Total: randU256(r), Protocol: randU256(r)}
			out := new(types.FeesDistribution)
			data := roundTrip(t, in, out)
			assert.Equal(t, in, out)
			assert.Len(t, data, 64)
		}
	})

	t.Run("FeeParameters", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			in := &types.FeeParameters{
				BinStep:                  r.Uint32(),
				BaseFactor:               r.Uint32(),
				FilterPeriod:             r.Uint32(),
				DecayPeriod:              r.Uint32(),
				ReductionFactor:          r.Uint32(),
				VariableFeeControl:       r.Uint32(),
				ProtocolShare:            r.Uint32(),
				MaxVolatilityAccumulated: r.Uint32(),
				VolatilityAccumulated:    r.Uint32(),
				VolatilityReference:      r.Uint32(),
				IndexRef:                 r.Uint32(),
				Time:                     r.Uint64(),
			}
			out := new(types.FeeParameters)
			data := roundTrip(t, in, out)
			assert.Equal(t, in, out)
			assert.Len(t, data, 52)
		}
	})

	t.Run("PairInformation", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			in := &types.PairInformation{
				ActiveID: r.Uint32(),
				ReserveX: randU256(r),
				ReserveY: randU256(r),
				FeesX:    types.FeesDistribution{Total: randU256(r), Protocol: randU256(r)},
				FeesY:    types.FeesDistribution{Total: randU256(r), Protocol: randU256(r)},

				OracleSampleLifetime: r.Uint32(),
				OracleSize:           r.Uint32(),
				OracleActiveSize:     r.Uint32(),
				OracleLastTimestamp:  r.Uint64(),
				OracleID:             r.Uint32(),
			}
			out := new(types.PairInformation)
			data := roundTrip(t, in, out)
			assert.Equal(t, in, out)
			assert.Len(t, data, 220)
		}
	})
}

func TestDeserializeShortBuffer(t *testing.T) {
	bin := new(types.Bin)
	assert.Error(t, types.Deserialize(bin, make([]byte, 31)))
}

func TestGetTokenPerShare(t *testing.T) {
	fd := &types.FeesDistribution{
		Total:    *uint256.NewInt(300),
		Protocol: *uint256.NewInt(100),
	}

	t.Run("whole shares", func(t *testing.T) {
		supply := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
		share := fd.GetTokenPerShare(supply)
		assert.Equal(t, uint64(200), share.Uint64())
	})

	t.Run("scales by 2^128", func(t *testing.T) {
		share := fd.GetTokenPerShare(uint256.NewInt(100))
		want := new(uint256.Int).Lsh(uint256.NewInt(2), 128)
		assert.True(t, share.Eq(want))
	})

	t.Run("zero supply panics", func(t *testing.T) {
		assert.Panics(t, func() { fd.GetTokenPerShare(new(uint256.Int)) })
	})
}

func TestBinUpdateFees(t *testing.T) {
	pair := new(types.PairInformation)
	bin := new(types.Bin)
	supply := new(uint256.Int).Lsh(uint256.NewInt(1), 128)

	fees := &types.FeesDistribution{
		Total:    *uint256.NewInt(1_000),
		Protocol: *uint256.NewInt(250),
	}
	bin.UpdateFees(pair, fees, true, supply)

	assert.Equal(t, uint64(1_000), pair.FeesX.Total.Uint64())
	assert.Equal(t, uint64(250), pair.FeesX.Protocol.Uint64())
	assert.True(t, pair.FeesY.Total.IsZero())
	assert.Equal(t, uint64(750), bin.AccTokenXPerShare.Uint64())
	assert.True(t, bin.AccTokenYPerShare.IsZero())

	bin.UpdateFees(pair, fees, false, supply)
	assert.Equal(t, uint64(1_000), pair.FeesY.Total.Uint64())
	assert.Equal(t, uint64(750), bin.AccTokenYPerShare.Uint64())

	t.Run("zero supply accrues to the pair only", func(t *testing.T) {
		pair := new(types.PairInformation)
		bin := new(types.Bin)
		bin.UpdateFees(pair, fees, true, new(uint256.Int))

		assert.Equal(t, uint64(1_000), pair.FeesX.Total.Uint64())
		assert.True(t, bin.AccTokenXPerShare.IsZero())
	})
}

func TestBinIsEmpty(t *testing.T) {
	bin := &types.Bin{ReserveX: *uint256.NewInt(5)}
	assert.True(t, bin.IsEmpty(true), "no Y reserve to give out")
	assert.False(t, bin.IsEmpty(false))
}

func TestFeeParametersValidate(t *testing.T) {
	valid := types.FeeParameters{
		BinStep:         25,
		FilterPeriod:    30,
		DecayPeriod:     600,
		ReductionFactor: 5_000,
		ProtocolShare:   1_000,
	}
	assert.NoError(t, valid.Validate())

	t.Run("filter period must stay below decay period", func(t *testing.T) {
		fp := valid
		fp.FilterPeriod = 600
		assert.Error(t, fp.Validate())
	})

	t.Run("basis point bounds", func(t *testing.T) {
		fp := valid
		fp.ReductionFactor = 10_001
		assert.Error(t, fp.Validate())

		fp = valid
		fp.ProtocolShare = 10_001
		assert.Error(t, fp.Validate())

		fp = valid
		fp.BinStep = 10_001
		assert.Error(t, fp.Validate())
	})
}
