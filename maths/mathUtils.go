package maths

import (
	"errors"

	"dlmmGoSDK/types"

	"github.com/holiman/uint256"
)

// ErrMulDivOverflow indicates the quotient does not fit into 256 bits.
var ErrMulDivOverflow = errors.New("muldiv result exceeds 256 bits")

var (
	one     = uint256.NewInt(1)
	maxU256 = new(uint256.Int).SetAllOne()
	maxU128 = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 128)
)

// MulDiv computes x * y / denominator over a full 512-bit intermediate
// product, so operands close to 2^256 never silently overflow.
//
// A zero denominator is a caller bug and panics; a quotient that does not
// fit into 256 bits is reported as ErrMulDivOverflow.
func MulDiv(x, y, denominator *uint256.Int, rounding types.Rounding) (*uint256.Int, error) {
	if denominator.IsZero() {
		panic("maths: muldiv division by zero")
	}

	z, overflow := new(uint256.Int).MulDivOverflow(x, y, denominator)
	if overflow {
		return nil, ErrMulDivOverflow
	}

	if rounding == types.RoundingUp {
		if rem := new(uint256.Int).MulMod(x, y, denominator); !rem.IsZero() {
			if z.Eq(maxU256) {
				return nil, ErrMulDivOverflow
			}
			z.Add(z, one)
		}
	}
	return z, nil
}

// MulShift computes x * y >> offset with a 512-bit intermediate product.
func MulShift(x, y *uint256.Int, offset uint8, rounding types.Rounding) (*uint256.Int, error) {
	return MulDiv(x, y, new(uint256.Int).Lsh(one, uint(offset)), rounding)
}

// ShiftDiv computes (x << offset) / y with a 512-bit intermediate product.
func ShiftDiv(x *uint256.Int, offset uint8, y *uint256.Int, rounding types.Rounding) (*uint256.Int, error) {
	return MulDiv(x, new(uint256.Int).Lsh(one, uint(offset)), y, rounding)
}

// MulDivRoundDown
//  floor(x * y / denominator)
func MulDivRoundDown(x, y, denominator *uint256.Int) (*uint256.Int, error) {
	return MulDiv(x, y, denominator, types.RoundingDown)
}

// MulDivRoundUp
//  ceil(x * y / denominator)
func MulDivRoundUp(x, y, denominator *uint256.Int) (*uint256.Int, error) {
	return MulDiv(x, y, denominator, types.RoundingUp)
}

// MulShiftRoundDown
//  floor(x * y >> offset)
func MulShiftRoundDown(x, y *uint256.Int, offset uint8) (*uint256.Int, error) {
	return MulShift(x, y, offset, types.RoundingDown)
}

// MulShiftRoundUp
//  ceil(x * y >> offset)
func MulShiftRoundUp(x, y *uint256.Int, offset uint8) (*uint256.Int, error) {
	return MulShift(x, y, offset, types.RoundingUp)
}

// ShiftDivRoundDown
//  floor((x << offset) / y)
func ShiftDivRoundDown(x *uint256.Int, offset uint8, y *uint256.Int) (*uint256.Int, error) {
	return ShiftDiv(x, offset, y, types.RoundingDown)
}

// ShiftDivRoundUp
//  ceil((x << offset) / y)
func ShiftDivRoundUp(x *uint256.Int, offset uint8, y *uint256.Int) (*uint256.Int, error) {
	return ShiftDiv(x, offset, y, types.RoundingUp)
}
