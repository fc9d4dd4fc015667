package svint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualsIgnoresWidthDifference(t *testing.T) {
	a := New(8, 5, false)
	b := New(16, 5, false)
	assert.True(t, a.Equals(b))
}

func TestEqualsFalseOnUnknown(t *testing.T) {
	a := CreateFillX(8, false)
	b := CreateFillX(8, false)
	assert.False(t, a.Equals(b))
}

func TestCompareSigned(t *testing.T) {
	neg := New(8, 0xFF, true)  // -1
	pos := New(8, 1, true)
	assert.Equal(t, -1, neg.Compare(pos))
	assert.Equal(t, 1, pos.Compare(neg))
	assert.Equal(t, 0, pos.Compare(New(8, 1, true)))
}

func TestCompareUnsignedLargeBeatsSignedNegative(t *testing.T) {
	// Same bit pattern: 0xFF is -1 signed, 255 unsigned.
	a := New(8, 0xFF, false)
	b := New(8, 1, false)
	assert.Equal(t, 1, a.Compare(b))
}

func TestExactlyEqualTreatsMatchingUnknownsAsEqual(t *testing.T) {
	a := CreateFillX(4, false)
	b := CreateFillX(4, false)
	assert.True(t, a.ExactlyEqual(b))
	assert.False(t, a.Equals(b))
}

func TestExactlyEqualDistinguishesXFromZ(t *testing.T) {
	x := CreateFillX(4, false)
	z := CreateFillZ(4, false)
	assert.False(t, x.ExactlyEqual(z))
}

func TestWildcardEqualTreatsRightSideUnknownAsDontCare(t *testing.T) {
	concrete := New(4, 0b1101, false)
	pattern, _ := FromDigits(4, false, LiteralBinary, "1x0x")
	assert.Equal(t, Bit1, concrete.WildcardEqual(pattern))

	mismatch := New(4, 0b0101, false)
	assert.Equal(t, Bit0, mismatch.WildcardEqual(pattern))
}

func TestWildcardEqualLeftSideUnknownIsAlwaysUndecided(t *testing.T) {
	lhs, _ := FromDigits(4, false, LiteralBinary, "x011")
	rhs := New(4, 0b0011, false)
	assert.Equal(t, BitX, lhs.WildcardEqual(rhs))
}

func TestConditionalKnownSelectsBranch(t *testing.T) {
	truthy := New(1, 1, false)
	falsy := New(1, 0, false)
	a := New(8, 10, false)
	b := New(8, 20, false)
	assert.True(t, Conditional(truthy, a, b).Equals(a))
	assert.True(t, Conditional(falsy, a, b).Equals(b))
}

func TestConditionalUnknownMergesBranches(t *testing.T) {
	cond := CreateFillX(1, false)
	a := New(4, 0b1100, false)
	b := New(4, 0b1010, false)
	merged := Conditional(cond, a, b)
	assert.True(t, merged.HasUnknown())
	// Bits where a and b agree should stay known; bit 3 (both 1) must
	// remain known 1, bit 0 (both 0) must remain known 0.
	bit3, _ := merged.Bit(3)
	bit0, _ := merged.Bit(0)
	assert.Equal(t, Bit1, bit3)
	assert.Equal(t, Bit0, bit0)
}

func TestConditionalUnknownWithMatchingZStaysX(t *testing.T) {
	// A Z bit on both branches in the same position must not be mistaken
	// for agreement: the merge still collapses to X, never Z, and a Z
	// paired against a matching known value also yields X rather than
	// that known value.
	cond := CreateFillX(1, false)
	a, _ := FromDigits(2, false, LiteralBinary, "z1")
	b, _ := FromDigits(2, false, LiteralBinary, "z0")
	merged := Conditional(cond, a, b)
	top, _ := merged.Bit(1)
	assert.Equal(t, BitX, top)

	c, _ := FromDigits(1, false, LiteralBinary, "z")
	d := New(1, 1, false)
	assert.Equal(t, BitX, combine(mustBit(c, 0), mustBit(d, 0)))
}

func mustBit(v SVInt, i int64) Bit {
	b, _ := v.Bit(i)
	return b
}
