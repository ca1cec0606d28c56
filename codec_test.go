package nbt

import (
	"bytes"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/require"
)

func TestCodecDefaultsToBigEndian(t *testing.T) {
	c := NewCodec()
	root := NewCompound("Root")
	require.NoError(t, root.Insert(NewByte(42).withName("x")))

	got, err := c.EncodeBytes(root)
	require.NoError(t, err)
	want, err := EncodeEndian(root, BigEndian)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCodecWithEndianOverridesDefault(t *testing.T) {
	c := NewCodec(WithEndian(LittleEndian))
	root := NewCompound("Root")
	require.NoError(t, root.Insert(NewByte(42).withName("x")))

	got, err := c.EncodeBytes(root)
	require.NoError(t, err)
	want, err := EncodeEndian(root, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCodecWithAllowDuplicateKeys(t *testing.T) {
	raw := []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 0x78, 0x01, // x = 1
		0x01, 0x00, 0x01, 0x78, 0x02, // x = 2 (duplicate)
		0x00,
	}

	strict := NewCodec()
	comp, err := strict.DecodeBytes(raw)
	require.NoError(t, err)
	require.Len(t, comp.GetAll("x"), 1)

	lenient := NewCodec(WithAllowDuplicateKeys(true))
	comp, err = lenient.DecodeBytes(raw)
	require.NoError(t, err)
	require.Len(t, comp.GetAll("x"), 2)
}

func TestCodecSaveLoadRoundTrip(t *testing.T) {
	c := NewCodec(WithLogger(log.NewNopLogger()))
	root := NewCompound("Root")
	require.NoError(t, root.Insert(NewInt(99).withName("n")))

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf, root, true))

	loaded, err := c.Load(&buf)
	require.NoError(t, err)
	require.True(t, Eq(root, loaded))
}

func TestCodecJSONAndParseJSON(t *testing.T) {
	c := NewCodec()
	root := NewCompound("")
	root.Insert(NewByte(1).withName("a"))

	text := c.JSON(root, InsertionOrder())
	reparsed, err := c.ParseJSON(text)
	require.NoError(t, err)
	require.True(t, Eq(root, reparsed))
}
