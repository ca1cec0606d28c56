package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianNBTScopeNests(t *testing.T) {
	require.Equal(t, BigEndian, currentEndian())

	restoreOuter := LittleEndianNBT()
	require.Equal(t, LittleEndian, currentEndian())

	restoreInner := LittleEndianNBT()
	require.Equal(t, LittleEndian, currentEndian())

	restoreInner()
	require.Equal(t, LittleEndian, currentEndian(), "popping the inner scope must restore the outer scope's value, not the absolute default")

	restoreOuter()
	require.Equal(t, BigEndian, currentEndian())
}

func TestLittleEndianNBTRestoreIsIdempotent(t *testing.T) {
	restore := LittleEndianNBT()
	restore()
	restore()
	require.Equal(t, BigEndian, currentEndian(), "calling restore twice must not pop an unrelated scope")
}

func TestEndianString(t *testing.T) {
	require.Equal(t, "big-endian", BigEndian.String())
	require.Equal(t, "little-endian", LittleEndian.String())
}
