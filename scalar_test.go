package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarEqRequiresSameKind(t *testing.T) {
	b := NewByte(5)
	s := NewShort(5)
	require.False(t, Eq(b, s), "Byte(5) must not equal Short(5): eq requires same kind, not just equal value")
	require.True(t, Eq(NewByte(5), NewByte(5)))
}

func TestScalarUpdateRejectsMismatchedKind(t *testing.T) {
	b := NewByte(1)
	err := Update(b, NewShort(1))
	require.Error(t, err)
}

func TestScalarUpdateReplacesValue(t *testing.T) {
	i := NewInt(1)
	require.NoError(t, Update(i, NewInt(99)))
	require.Equal(t, int32(99), i.Value)
}

func TestScalarIssubsetIsEquality(t *testing.T) {
	require.True(t, IsSubset(NewDouble(1.5), NewDouble(1.5)))
	require.False(t, IsSubset(NewDouble(1.5), NewDouble(2.5)))
}

func TestEqNilHandling(t *testing.T) {
	require.True(t, Eq(nil, nil))
	require.False(t, Eq(NewByte(1), nil))
	require.True(t, Ne(NewByte(1), nil))
}

func TestUpdateNilReturnsSentinel(t *testing.T) {
	err := Update(nil, NewByte(1))
	require.Error(t, err)
	require.Equal(t, errNilUpdate.Error(), err.Error())
}
