package nbt

import (
	"github.com/google/uuid"

	"github.com/pkg/errors"
)

// UUIDToIntArray packs u into a named TAG_Int_Array the way Minecraft
// represents entity/player UUIDs on disk: four big-endian 32-bit words
// carved out of the 16-byte UUID.
func UUIDToIntArray(name string, u uuid.UUID) *IntArray {
	b := u[:]
	out := make([]uint32, 4)
	for i := range out {
		out[i] = uint32(b[i*4])<<24 | uint32(b[i*4+1])<<16 | uint32(b[i*4+2])<<8 | uint32(b[i*4+3])
	}
	return NewIntArray(name, out)
}

// UUID reconstructs a uuid.UUID from a 4-element TAG_Int_Array, the inverse
// of UUIDToIntArray. Returns an error if the array isn't exactly 4 elements.
func (t *IntArray) UUID() (uuid.UUID, error) {
	if len(t.Value) != 4 {
		return uuid.UUID{}, errors.Errorf("nbt: UUID requires a 4-element TAG_Int_Array, got %d elements", len(t.Value))
	}
	var u uuid.UUID
	for i, word := range t.Value {
		u[i*4] = byte(word >> 24)
		u[i*4+1] = byte(word >> 16)
		u[i*4+2] = byte(word >> 8)
		u[i*4+3] = byte(word)
	}
	return u, nil
}
