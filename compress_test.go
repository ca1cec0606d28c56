package nbt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGzipRoundTrip(t *testing.T) {
	data := []byte("hello, NBT")
	gz, err := gzipBytes(data)
	require.NoError(t, err)
	require.NotEqual(t, data, gz)

	out, err := Gunzip(gz)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestTryGunzipFallsBackOnNonGzip(t *testing.T) {
	plain := []byte{0x0A, 0x00, 0x00, 0x00}
	require.Equal(t, plain, TryGunzip(plain))
}

func TestLoadSaveCompressedRoundTrip(t *testing.T) {
	root := NewCompound("Root")
	require.NoError(t, root.Insert(NewString("greeting", "hi").withName("greeting")))

	var buf bytes.Buffer
	require.NoError(t, root.Save(&buf, true))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.True(t, Eq(root, loaded), "gzip round trip must preserve the tree (spec.md §8 law 4)")
}

func TestLoadSaveUncompressedRoundTrip(t *testing.T) {
	root := NewCompound("Root")
	require.NoError(t, root.Insert(NewInt(7).withName("n")))

	var buf bytes.Buffer
	require.NoError(t, root.Save(&buf, false))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.True(t, Eq(root, loaded))
}
