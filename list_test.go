package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListAdoptsKindFromFirstElement(t *testing.T) {
	l := NewList("Pos")
	require.NoError(t, l.Append(NewDouble(1.5)))
	require.Equal(t, KindDouble, l.ElemKind())
	require.NoError(t, l.Append(NewDouble(-2.5)))
	err := l.Append(NewByte(1))
	require.Error(t, err, "a List must reject an element of a different kind once one has been established")
}

func TestListAppendClearsElementName(t *testing.T) {
	l := NewList("")
	v := NewByte(1)
	v.setName("should-be-dropped")
	require.NoError(t, l.Append(v))
	require.Equal(t, "", l.At(0).Name())
}

func TestListEqRequiresPairwiseOrder(t *testing.T) {
	a := NewList("")
	a.Append(NewByte(1))
	a.Append(NewByte(2))

	b := NewList("")
	b.Append(NewByte(2))
	b.Append(NewByte(1))

	require.False(t, Eq(a, b), "List equality is order-sensitive")
}

func TestListIssubsetIsExistential(t *testing.T) {
	a := NewList("")
	a.Append(NewByte(1))

	b := NewList("")
	b.Append(NewByte(2))
	b.Append(NewByte(1))

	require.True(t, IsSubset(a, b))
	require.False(t, IsSubset(b, a))
}

func TestListUpdateReplacesItemsWithClones(t *testing.T) {
	dst := NewList("")
	dst.Append(NewByte(1))

	src := NewList("")
	src.Append(NewShort(7))

	require.NoError(t, Update(dst, src))
	require.Equal(t, KindShort, dst.ElemKind())
	require.Equal(t, int16(7), dst.At(0).(*Short).Value)

	src.At(0).(*Short).Value = 99
	require.Equal(t, int16(7), dst.At(0).(*Short).Value, "update must clone src's elements")
}
