package maths

import (
	"errors"
	"fmt"

	"dlmmGoSDK/constants"

	"github.com/holiman/uint256"
)

var (
	// ErrPriceOverflow indicates the bin price does not fit into 256 bits.
	ErrPriceOverflow = errors.New("bin price exceeds 256 bits")

	// ErrPriceUnderflow indicates the bin price rounded down to zero.
	ErrPriceUnderflow = errors.New("bin price underflows to zero")

	// ErrPriceOutOfRange indicates no bin id maps to the given price.
	ErrPriceOutOfRange = errors.New("price below the lowest bin of the pair")
)

// GetPriceFromID returns the price of a bin in 128.128 fixed point:
//
//	price = (1 + binStep / 10_000) ^ (id - 2^23)
//
// computed by square-and-multiply so the cost stays bounded for exponents
// up to the edges of the 24-bit id space.
func GetPriceFromID(id uint32, binStep uint16) (*uint256.Int, error) {
	if id > constants.MaxBinID {
		panic(fmt.Sprintf("maths: bin id %d out of the 24-bit id space", id))
	}
	return pow(baseFromBinStep(binStep), int32(id)-constants.RealIDShift)
}

// GetIDFromPrice is the inverse of GetPriceFromID: the largest id whose bin
// price does not exceed price, found by binary search over the id space.
// The search is deterministic and runs in at most 24 probes.
func GetIDFromPrice(price *uint256.Int, binStep uint16) (uint32, error) {
	lowest, err := GetPriceFromID(0, binStep)
	if err != nil && !errors.Is(err, ErrPriceUnderflow) {
		return 0, err
	}
	if err == nil && price.Lt(lowest) {
		return 0, ErrPriceOutOfRange
	}

	lo, hi := uint32(0), uint32(constants.MaxBinID)
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		p, err := GetPriceFromID(mid, binStep)
		switch {
		case errors.Is(err, ErrPriceOverflow):
			// price(mid) is beyond 256 bits, so beyond the target.
			hi = mid - 1
		case errors.Is(err, ErrPriceUnderflow):
			lo = mid
		case err != nil:
			return 0, err
		case p.Gt(price):
			hi = mid - 1
		default:
			lo = mid
		}
	}
	return lo, nil
}

// baseFromBinStep
//  base = 1 + binStep / 10_000, in 128.128 fixed point
func baseFromBinStep(binStep uint16) *uint256.Int {
	step := new(uint256.Int).Lsh(uint256.NewInt(uint64(binStep)), constants.ScaleOffset)
	step.Div(step, uint256.NewInt(constants.BasisPointMax))
	return step.Add(step, constants.Scale)
}

// pow raises a 128.128 fixed-point base to a signed integer exponent,
// rounding down on every intermediate step. Bases above 1 are folded
// through max/x so the squaring chain only ever multiplies values below 1,
// and the inversion is undone once at the end.
func pow(x *uint256.Int, y int32) (*uint256.Int, error) {
	if y == 0 {
		return constants.Scale.Clone(), nil
	}

	invert := false
	absY := uint32(y)
	if y < 0 {
		absY = uint32(-int64(y))
		invert = true
	}

	squared := x.Clone()
	if x.Gt(maxU128) {
		squared.Div(maxU256, x)
		invert = !invert
	}

	result := constants.Scale.Clone()
	for ; absY != 0; absY >>= 1 {
		if absY&1 != 0 {
			r, overflow := new(uint256.Int).MulDivOverflow(result, squared, constants.Scale)
			if overflow {
				return nil, ErrPriceOverflow
			}
			result = r
		}
		sq, overflow := new(uint256.Int).MulDivOverflow(squared, squared, constants.Scale)
		if overflow {
			return nil, ErrPriceOverflow
		}
		squared = sq
	}

	if result.IsZero() {
		// The accumulated value fell below 2^-128. If it was due to be
		// inverted the true price is beyond 256 bits instead.
		if invert {
			return nil, ErrPriceOverflow
		}
		return nil, ErrPriceUnderflow
	}
	if invert {
		result = new(uint256.Int).Div(maxU256, result)
	}
	return result, nil
}
