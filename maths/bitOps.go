package maths

import (
	"errors"
	"math/bits"

	"github.com/holiman/uint256"
)

// ErrNoSetBit is returned by the closest-bit queries when no set bit exists
// on the requested side. It is a recoverable condition; the caller decides
// what an empty direction means.
var ErrNoSetBit = errors.New("no set bit in the requested direction")

// MostSignificantBit returns the index (0-255) of the highest set bit of x.
// A zero word is a caller bug and panics.
func MostSignificantBit(x *uint256.Int) uint8 {
	if x.IsZero() {
		panic("maths: most significant bit of zero word")
	}
	return uint8(x.BitLen() - 1)
}

// LeastSignificantBit returns the index (0-255) of the lowest set bit of x.
// A zero word is a caller bug and panics.
func LeastSignificantBit(x *uint256.Int) uint8 {
	if x.IsZero() {
		panic("maths: least significant bit of zero word")
	}
	for i := 0; i < 4; i++ {
		if x[i] != 0 {
			return uint8(i*64 + bits.TrailingZeros64(x[i]))
		}
	}
	// x is nonzero, one of the limbs matched above.
	return 0
}

// SignificantBit returns the most significant bit when scanning from the
// left end of the word, the least significant bit otherwise.
func SignificantBit(x *uint256.Int, fromLeft bool) uint8 {
	if fromLeft {
		return MostSignificantBit(x)
	}
	return LeastSignificantBit(x)
}

// ClosestBitRight returns the highest set-bit index of x at or below bit,
// or ErrNoSetBit when that sub-range of the word is empty.
func ClosestBitRight(x *uint256.Int, bit uint8) (uint8, error) {
	shift := uint(255 - bit)
	masked := new(uint256.Int).Lsh(x, shift)
	if masked.IsZero() {
		return 0, ErrNoSetBit
	}
	return MostSignificantBit(masked) - uint8(shift), nil
}

// ClosestBitLeft returns the lowest set-bit index of x at or above bit,
// or ErrNoSetBit when that sub-range of the word is empty.
func ClosestBitLeft(x *uint256.Int, bit uint8) (uint8, error) {
	masked := new(uint256.Int).Rsh(x, uint(bit))
	if masked.IsZero() {
		return 0, ErrNoSetBit
	}
	return LeastSignificantBit(masked) + bit, nil
}

// ClosestBit scans downward from bit when fromLeft is set, upward
// otherwise.
func ClosestBit(x *uint256.Int, bit uint8, fromLeft bool) (uint8, error) {
	if fromLeft {
		return ClosestBitRight(x, bit)
	}
	return ClosestBitLeft(x, bit)
}
