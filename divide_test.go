package svint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivRemSingleWord(t *testing.T) {
	a := New(16, 100, false)
	b := New(16, 7, false)
	q := a.Div(b)
	r := a.Rem(b)
	qv, ok := As[uint16](q)
	require.True(t, ok)
	rv, ok := As[uint16](r)
	require.True(t, ok)
	assert.Equal(t, uint16(14), qv)
	assert.Equal(t, uint16(2), rv)
}

func TestDivRemMultiWord(t *testing.T) {
	a := New(128, 0, false).Add(New(128, 1, false).Shl(New(8, 70, false))) // 2**70
	b := New(128, 3, false)
	q := a.Div(b)
	r := a.Rem(b)
	reconstructed := q.Mul(b).Add(r)
	assert.True(t, reconstructed.Equals(a))
}

func TestDivByZeroIsX(t *testing.T) {
	a := New(8, 5, false)
	zero := New(8, 0, false)
	q := a.Div(zero)
	assert.True(t, q.HasUnknown())
}

func TestSignedDivTruncatesTowardZero(t *testing.T) {
	a := New(8, 0xFB, true) // -5
	b := New(8, 2, true)
	q := a.Div(b)
	got, ok := As[int8](q)
	require.True(t, ok)
	assert.Equal(t, int8(-2), got)

	r := a.Rem(b)
	gotR, ok := As[int8](r)
	require.True(t, ok)
	assert.Equal(t, int8(-1), gotR)
}

func TestDivUnknownOperandIsX(t *testing.T) {
	a := CreateFillX(8, false)
	b := New(8, 2, false)
	assert.True(t, a.Div(b).HasUnknown())
	assert.True(t, a.Rem(b).HasUnknown())
}
