package nbt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUIDIntArrayRoundTrip(t *testing.T) {
	u := uuid.New()
	arr := UUIDToIntArray("UUID", u)
	require.Equal(t, KindIntArray, arr.Kind())
	require.Len(t, arr.Value, 4)

	got, err := arr.UUID()
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestUUIDRejectsWrongLength(t *testing.T) {
	arr := NewIntArray("UUID", []uint32{1, 2, 3})
	_, err := arr.UUID()
	require.Error(t, err)
}

func TestUUIDIntArraySurvivesBinaryRoundTrip(t *testing.T) {
	u := uuid.New()
	root := NewCompound("")
	require.NoError(t, root.Insert(UUIDToIntArray("UUID", u)))

	b, err := EncodeBytes(root)
	require.NoError(t, err)
	decoded, err := DecodeBytes(b)
	require.NoError(t, err)

	got, ok := decoded.Get("UUID")
	require.True(t, ok)
	roundTripped, err := got.(*IntArray).UUID()
	require.NoError(t, err)
	require.Equal(t, u, roundTripped)
}
