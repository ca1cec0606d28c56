package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompoundInsertRejectsEmptyName(t *testing.T) {
	c := NewCompound("")
	err := c.Insert(NewByte(1))
	require.Error(t, err)
}

func TestCompoundInsertOverwritesByDefault(t *testing.T) {
	c := NewCompound("")
	require.NoError(t, c.Insert(NewString("x", "first")))
	require.NoError(t, c.Insert(NewString("x", "second")))

	all := c.GetAll("x")
	require.Len(t, all, 1)
	require.Equal(t, "second", all[0].(*String).Value)
}

func TestCompoundAllowDuplicateKeys(t *testing.T) {
	c := NewCompound("")
	c.AllowDuplicateKeys = true
	require.NoError(t, c.Insert(NewString("x", "first")))
	require.NoError(t, c.Insert(NewString("x", "second")))

	require.Len(t, c.GetAll("x"), 2)
	require.Len(t, c.Keys(), 1, "Keys must still de-duplicate names even with duplicates stored")
}

func TestCompoundDelete(t *testing.T) {
	c := NewCompound("")
	c.Insert(NewByte(1).withName("a"))
	c.Insert(NewByte(2).withName("b"))
	c.Delete("a")
	require.False(t, c.Has("a"))
	require.True(t, c.Has("b"))
}

func TestCompoundEqRequiresSameKeysAndSize(t *testing.T) {
	a := NewCompound("")
	a.Insert(NewByte(1).withName("x"))

	b := NewCompound("")
	b.Insert(NewByte(1).withName("x"))
	b.Insert(NewString("y", "hi"))

	require.False(t, Eq(a, b))
}

// Subset scenario from the package's test scenarios: a = {x:1b}, b = {x:1b,
// y:"hi"}. a.issubset(b) is true, b.issubset(a) is false, a.eq(b) is false.
func TestCompoundIssubsetScenario(t *testing.T) {
	a := NewCompound("")
	a.Insert(NewByte(1).withName("x"))

	b := NewCompound("")
	b.Insert(NewByte(1).withName("x"))
	b.Insert(NewString("", "hi").withName("y"))

	require.True(t, IsSubset(a, b))
	require.False(t, IsSubset(b, a))
	require.False(t, Eq(a, b))
}

func TestCompoundUpdateRecursesIntoSharedKeys(t *testing.T) {
	dst := NewCompound("")
	inner := NewCompound("").withName("inner")
	inner.Insert(NewByte(1).withName("a"))
	dst.Insert(inner)

	src := NewCompound("")
	srcInner := NewCompound("").withName("inner")
	srcInner.Insert(NewByte(2).withName("a"))
	srcInner.Insert(NewByte(3).withName("b"))
	src.Insert(srcInner)
	src.Insert(NewString("new", "value").withName("fresh"))

	require.NoError(t, Update(dst, src))

	gotInner, ok := dst.Get("inner")
	require.True(t, ok)
	a, _ := gotInner.(*Compound).Get("a")
	require.Equal(t, int8(2), a.(*Byte).Value)
	bTag, ok := gotInner.(*Compound).Get("b")
	require.True(t, ok)
	require.Equal(t, int8(3), bTag.(*Byte).Value)

	_, ok = dst.Get("fresh")
	require.True(t, ok)
}

func TestCompoundUpdateIsIdempotent(t *testing.T) {
	dst := NewCompound("")
	dst.Insert(NewByte(1).withName("x"))

	src := NewCompound("")
	src.Insert(NewByte(2).withName("x"))
	src.Insert(NewString("added", "y").withName("y"))

	require.NoError(t, Update(dst, src))
	once := Pretty(dst)
	require.NoError(t, Update(dst, src))
	twice := Pretty(dst)
	require.Equal(t, once, twice)
}

// withName is a tiny test helper: the scalar constructors (NewByte, NewInt,
// ...) return unnamed tags and the scalar types have no exported name
// setter, while Compound.Insert requires a name; tests frequently need a
// named tag before insertion.
func (t *Byte) withName(name string) *Byte {
	t.name = name
	return t
}

func (t *String) withName(name string) *String {
	t.name = name
	return t
}

func (t *Compound) withName(name string) *Compound {
	t.name = name
	return t
}
