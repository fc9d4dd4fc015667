package svint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInlineAndHeap(t *testing.T) {
	v := New(8, 0xFF, false)
	assert.True(t, v.isSingleWord())
	assert.Equal(t, uint32(8), v.BitWidth())
	assert.False(t, v.HasUnknown())

	w := New(128, 1, true)
	assert.False(t, w.isSingleWord())
	assert.Equal(t, uint32(128), w.BitWidth())
	assert.True(t, w.IsSigned())
}

func TestNewTruncatesToWidth(t *testing.T) {
	v := New(4, 0xFF, false)
	got, ok := As[uint8](v)
	require.True(t, ok)
	assert.Equal(t, uint8(0xF), got)
}

func TestCreateFillXAndZ(t *testing.T) {
	x := CreateFillX(16, false)
	assert.True(t, x.HasUnknown())
	for i := int64(0); i < 16; i++ {
		b, ok := x.Bit(i)
		require.True(t, ok)
		assert.Equal(t, BitX, b)
	}

	z := CreateFillZ(130, true)
	for i := int64(0); i < 130; i++ {
		b, ok := z.Bit(i)
		require.True(t, ok)
		assert.Equal(t, BitZ, b)
	}
}

func TestIsNegative(t *testing.T) {
	neg := New(8, 0xFF, true)
	assert.True(t, neg.IsNegative())

	pos := New(8, 0x7F, true)
	assert.False(t, pos.IsNegative())

	unsigned := New(8, 0xFF, false)
	assert.False(t, unsigned.IsNegative())
}

func TestGetActiveBits(t *testing.T) {
	assert.Equal(t, uint32(0), New(8, 0, false).GetActiveBits())
	assert.Equal(t, uint32(1), New(8, 1, false).GetActiveBits())
	assert.Equal(t, uint32(8), New(8, 0xFF, false).GetActiveBits())
	assert.Equal(t, uint32(65), New(128, 0, false).Add(New(128, 1, false).Shl(New(8, 64, false))).GetActiveBits())
}

func TestCountPopulationAndLeading(t *testing.T) {
	v := New(8, 0x0F, false)
	assert.Equal(t, uint32(4), v.CountPopulation())
	assert.Equal(t, uint32(4), v.CountLeadingZeros())
	assert.Equal(t, uint32(4), New(8, 0xF0, false).CountLeadingOnes())
}

func TestAsOverflow(t *testing.T) {
	v := New(16, 0xFFFF, false)
	_, ok := As[uint8](v)
	assert.False(t, ok)

	_, ok = As[uint16](CreateFillX(16, false))
	assert.False(t, ok)
}

func TestAsSignedNarrowing(t *testing.T) {
	v := New(8, 0xFF, true) // -1 as 8-bit signed
	got, ok := As[int8](v)
	require.True(t, ok)
	assert.Equal(t, int8(-1), got)

	got32, ok := As[int32](v)
	require.True(t, ok)
	assert.Equal(t, int32(-1), got32)
}

func TestSetSignedDoesNotChangeBits(t *testing.T) {
	v := New(8, 0x80, false)
	signed := v.SetSigned(true)
	assert.True(t, signed.IsSigned())
	assert.True(t, signed.Equals(New(8, 0x80, true)))
}
