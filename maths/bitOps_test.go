package maths_test

import (
	"testing"

	"dlmmGoSDK/maths"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignificantBits(t *testing.T) {
	maxWord := new(uint256.Int).SetAllOne()

	assert.Equal(t, uint8(0), maths.MostSignificantBit(uint256.NewInt(1)))
	assert.Equal(t, uint8(1), maths.MostSignificantBit(uint256.NewInt(2)))
	assert.Equal(t, uint8(7), maths.MostSignificantBit(uint256.NewInt(212)))
	assert.Equal(t, uint8(255), maths.MostSignificantBit(maxWord))

	assert.Equal(t, uint8(0), maths.LeastSignificantBit(uint256.NewInt(1)))
	assert.Equal(t, uint8(1), maths.LeastSignificantBit(uint256.NewInt(2)))
	assert.Equal(t, uint8(2), maths.LeastSignificantBit(uint256.NewInt(212)))
	assert.Equal(t, uint8(0), maths.LeastSignificantBit(maxWord))

	t.Run("dispatch", func(t *testing.T) {
		x := uint256.NewInt(0b10111101)
		assert.Equal(t, uint8(7), maths.SignificantBit(x, true))
		assert.Equal(t, uint8(0), maths.SignificantBit(x, false))
	})

	t.Run("upper limbs", func(t *testing.T) {
		x := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
		assert.Equal(t, uint8(200), maths.MostSignificantBit(x))
		assert.Equal(t, uint8(200), maths.LeastSignificantBit(x))
	})

	t.Run("zero word panics", func(t *testing.T) {
		assert.Panics(t, func() { maths.MostSignificantBit(new(uint256.Int)) })
		assert.Panics(t, func() { maths.LeastSignificantBit(new(uint256.Int)) })
	})
}

func TestClosestBit(t *testing.T) {
	maxWord := new(uint256.Int).SetAllOne()

	b, err := maths.ClosestBitRight(uint256.NewInt(0b00000101), 6)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), b)

	b, err = maths.ClosestBitRight(uint256.NewInt(0b10111101), 5)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), b)

	b, err = maths.ClosestBitLeft(maxWord, 50)
	require.NoError(t, err)
	assert.Equal(t, uint8(50), b)

	b, err = maths.ClosestBitLeft(uint256.NewInt(0b10111101), 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), b)

	t.Run("no set bit on the requested side", func(t *testing.T) {
		_, err := maths.ClosestBit(uint256.NewInt(0b10111101), 50, false)
		assert.ErrorIs(t, err, maths.ErrNoSetBit)

		_, err = maths.ClosestBitRight(new(uint256.Int).Lsh(uint256.NewInt(1), 100), 99)
		assert.ErrorIs(t, err, maths.ErrNoSetBit)

		_, err = maths.ClosestBitLeft(uint256.NewInt(1), 1)
		assert.ErrorIs(t, err, maths.ErrNoSetBit)
	})

	t.Run("dispatch", func(t *testing.T) {
		// scanning downward from 50 finds bit 7
		b, err := maths.ClosestBit(uint256.NewInt(0b10111101), 50, true)
		require.NoError(t, err)
		assert.Equal(t, uint8(7), b)
	})

	t.Run("boundaries", func(t *testing.T) {
		b, err := maths.ClosestBitRight(maxWord, 0)
		require.NoError(t, err)
		assert.Equal(t, uint8(0), b)

		b, err = maths.ClosestBitLeft(maxWord, 255)
		require.NoError(t, err)
		assert.Equal(t, uint8(255), b)
	})
}
