package svint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitInvert(t *testing.T) {
	assert.Equal(t, Bit1, Bit0.Invert())
	assert.Equal(t, Bit0, Bit1.Invert())
	assert.Equal(t, BitX, BitX.Invert())
	assert.Equal(t, BitX, BitZ.Invert())
}

func TestBitRuneAndString(t *testing.T) {
	cases := map[Bit]rune{Bit0: '0', Bit1: '1', BitX: 'x', BitZ: 'z'}
	for b, r := range cases {
		assert.Equal(t, r, b.Rune())
		assert.Equal(t, string(r), b.String())
	}
}

func TestBitIsUnknown(t *testing.T) {
	assert.False(t, Bit0.IsUnknown())
	assert.False(t, Bit1.IsUnknown())
	assert.True(t, BitX.IsUnknown())
	assert.True(t, BitZ.IsUnknown())
}

func TestDecodeBitRoundTrip(t *testing.T) {
	for _, b := range []Bit{Bit0, Bit1, BitX, BitZ} {
		v, u := b.planes()
		assert.Equal(t, b, decodeBit(v, u))
	}
}

func TestCombineLattice(t *testing.T) {
	assert.Equal(t, Bit0, combine(Bit0, Bit0))
	assert.Equal(t, Bit1, combine(Bit1, Bit1))
	assert.Equal(t, BitX, combine(Bit0, Bit1))
	assert.Equal(t, BitX, combine(BitX, Bit0))
	// Any unknown-plane bit forces X, even when the other operand is a
	// matching known value.
	assert.Equal(t, BitX, combine(BitZ, Bit1))
	assert.Equal(t, BitX, combine(Bit0, BitZ))
	// Two equal Z bits still collapse to X, not Z.
	assert.Equal(t, BitX, combine(BitZ, BitZ))
	assert.Equal(t, BitX, combine(BitX, BitX))
}
