package nbt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPrettyNil(t *testing.T) {
	require.Equal(t, "<nil>", Pretty(nil))
}

func TestPrettyScalar(t *testing.T) {
	require.Equal(t, "TAG_Byte(42)", Pretty(NewByte(42)))
}

func TestPrettyCompoundIsMultiline(t *testing.T) {
	c := NewCompound("")
	c.Insert(NewByte(1).withName("x"))
	out := Pretty(c)
	require.True(t, strings.HasPrefix(out, "TAG_Compound({\n"))
	require.Contains(t, out, `"x": TAG_Byte(1)`)
	require.True(t, strings.HasSuffix(out, "})"))
}

func TestPrettyListNesting(t *testing.T) {
	l := NewList("")
	l.Append(NewInt(1))
	l.Append(NewInt(2))
	out := Pretty(l)
	require.True(t, strings.HasPrefix(out, "TAG_List([\n"))
	require.Contains(t, out, "TAG_Int(1)")
	require.Contains(t, out, "TAG_Int(2)")
}

// Golden-output diff: a nested tree's pretty-print is exact, not just
// substring-matched, so a stray field reordering or bracket change shows up
// as a line-level diff instead of a bare boolean failure.
func TestPrettyNestedTreeGoldenOutput(t *testing.T) {
	root := NewCompound("")
	root.Insert(NewByte(1).withName("flag"))
	inner := NewList("items")
	inner.Append(NewInt(10))
	inner.Append(NewInt(20))
	root.Insert(inner)

	want := "TAG_Compound({\n" +
		"  \"flag\": TAG_Byte(1),\n" +
		"  \"items\": TAG_List([\n" +
		"    TAG_Int(10),\n" +
		"    TAG_Int(20),\n" +
		"  ]),\n" +
		"})"

	got := Pretty(root)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pretty() golden output mismatch (-want +got):\n%s", diff)
	}
}
