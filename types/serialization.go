package types

import (
	"bytes"

	ag_binary "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"
)

// Serializable is the fixed-layout wire capability shared by the ledger
// structs. Field order and widths are part of the persisted format: u32
// fields take 4 bytes, u64 fields 8 bytes and 256-bit fields 32 bytes, all
// little endian, in declaration order.
type Serializable interface {
	MarshalWithEncoder(encoder *ag_binary.Encoder) error
	UnmarshalWithDecoder(decoder *ag_binary.Decoder) error
}

// Serialize renders a ledger struct into its fixed byte layout.
func Serialize(obj Serializable) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := obj.MarshalWithEncoder(ag_binary.NewBinEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize fills a ledger struct from bytes produced by Serialize.
func Deserialize(obj Serializable, data []byte) error {
	return obj.UnmarshalWithDecoder(ag_binary.NewBinDecoder(data))
}

func writeUint256(encoder *ag_binary.Encoder, v *uint256.Int) error {
	b := v.Bytes32()
	ag_binary.ReverseBytes(b[:])
	return encoder.WriteBytes(b[:], false)
}

func readUint256(decoder *ag_binary.Decoder, v *uint256.Int) error {
	b, err := decoder.ReadNBytes(32)
	if err != nil {
		return err
	}
	buf := make([]byte, 32)
	copy(buf, b)
	ag_binary.ReverseBytes(buf)
	v.SetBytes(buf)
	return nil
}

func (obj *Bin) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	if err := writeUint256(encoder, &obj.ReserveX); err != nil {
		return err
	}
	if err := writeUint256(encoder, &obj.ReserveY); err != nil {
		return err
	}
	if err := writeUint256(encoder, &obj.AccTokenXPerShare); err != nil {
		return err
	}
	return writeUint256(encoder, &obj.AccTokenYPerShare)
}

func (obj *Bin) UnmarshalWithDecoder(decoder *ag_binary.Decoder) error {
	if err := readUint256(decoder, &obj.ReserveX); err != nil {
		return err
	}
	if err := readUint256(decoder, &obj.ReserveY); err != nil {
		return err
	}
	if err := readUint256(decoder, &obj.AccTokenXPerShare); err != nil {
		return err
	}
	return readUint256(decoder, &obj.AccTokenYPerShare)
}

func (obj *Debt) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	if err := writeUint256(encoder, &obj.DebtX); err != nil {
		return err
	}
	return writeUint256(encoder, &obj.DebtY)
}

func (obj *Debt) UnmarshalWithDecoder(decoder *ag_binary.Decoder) error {
	if err := readUint256(decoder, &obj.DebtX); err != nil {
		return err
	}
	return readUint256(decoder, &obj.DebtY)
}

func (obj *FeesDistribution) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	if err := writeUint256(encoder, &obj.Total); err != nil {
		return err
	}
	return writeUint256(encoder, &obj.Protocol)
}

func (obj *FeesDistribution) UnmarshalWithDecoder(decoder *ag_binary.Decoder) error {
	if err := readUint256(decoder, &obj.Total); err != nil {
		return err
	}
	return readUint256(decoder, &obj.Protocol)
}

func (obj *FeeParameters) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	for _, v := range []uint32{
		obj.BinStep,
		obj.BaseFactor,
		obj.FilterPeriod,
		obj.DecayPeriod,
		obj.ReductionFactor,
		obj.VariableFeeControl,
		obj.ProtocolShare,
		obj.MaxVolatilityAccumulated,
		obj.VolatilityAccumulated,
		obj.VolatilityReference,
		obj.IndexRef,
	} {
		if err := encoder.WriteUint32(v, ag_binary.LE); err != nil {
			return err
		}
	}
	return encoder.WriteUint64(obj.Time, ag_binary.LE)
}

func (obj *FeeParameters) UnmarshalWithDecoder(decoder *ag_binary.Decoder) error {
	for _, v := range []*uint32{
		&obj.BinStep,
		&obj.BaseFactor,
		&obj.FilterPeriod,
		&obj.DecayPeriod,
		&obj.ReductionFactor,
		&obj.VariableFeeControl,
		&obj.ProtocolShare,
		&obj.MaxVolatilityAccumulated,
		&obj.VolatilityAccumulated,
		&obj.VolatilityReference,
		&obj.IndexRef,
	} {
		u, err := decoder.ReadUint32(ag_binary.LE)
		if err != nil {
			return err
		}
		*v = u
	}
	t, err := decoder.ReadUint64(ag_binary.LE)
	if err != nil {
		return err
	}
	obj.Time = t
	return nil
}

func (obj *PairInformation) MarshalWithEncoder(encoder *ag_binary.Encoder) error {
	if err := encoder.WriteUint32(obj.ActiveID, ag_binary.LE); err != nil {
		return err
	}
	if err := writeUint256(encoder, &obj.ReserveX); err != nil {
		return err
	}
	if err := writeUint256(encoder, &obj.ReserveY); err != nil {
		return err
	}
	if err := obj.FeesX.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	if err := obj.FeesY.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	for _, v := range []uint32{obj.OracleSampleLifetime, obj.OracleSize, obj.OracleActiveSize} {
		if err := encoder.WriteUint32(v, ag_binary.LE); err != nil {
			return err
		}
	}
	if err := encoder.WriteUint64(obj.OracleLastTimestamp, ag_binary.LE); err != nil {
		return err
	}
	return encoder.WriteUint32(obj.OracleID, ag_binary.LE)
}

func (obj *PairInformation) UnmarshalWithDecoder(decoder *ag_binary.Decoder) error {
	u, err := decoder.ReadUint32(ag_binary.LE)
	if err != nil {
		return err
	}
	obj.ActiveID = u
	if err := readUint256(decoder, &obj.ReserveX); err != nil {
		return err
	}
	if err := readUint256(decoder, &obj.ReserveY); err != nil {
		return err
	}
	if err := obj.FeesX.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	if err := obj.FeesY.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	for _, v := range []*uint32{&obj.OracleSampleLifetime, &obj.OracleSize, &obj.OracleActiveSize} {
		u, err := decoder.ReadUint32(ag_binary.LE)
		if err != nil {
			return err
		}
		*v = u
	}
	ts, err := decoder.ReadUint64(ag_binary.LE)
	if err != nil {
		return err
	}
	obj.OracleLastTimestamp = ts
	id, err := decoder.ReadUint32(ag_binary.LE)
	if err != nil {
		return err
	}
	obj.OracleID = id
	return nil
}
