package nbt

import (
	"encoding/binary"
	"sync"
)

// Endian selects the byte order used for string lengths, primitive
// payloads, and array lengths/elements. BigEndian is the default wire
// format; LittleEndian is Pocket Edition's "Pocket" variant.
//
// Every decode/encode operation threads an explicit Endian value through a private cursor or
// writer rather than consulting a mutable global mid-operation. The
// process-wide default below exists only so the scoped LittleEndianNBT API
// can mirror the source library's ergonomics; new call sites should prefer
// DecodeEndian/EncodeEndian or a Codec built with WithEndian.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

func (e Endian) byteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (e Endian) String() string {
	if e == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

var (
	endianMu      sync.Mutex
	endianDefault = BigEndian
	endianStack   []Endian
)

func currentEndian() Endian {
	endianMu.Lock()
	defer endianMu.Unlock()
	return endianDefault
}

// LittleEndianNBT scopes the process-wide default endian profile to
// LittleEndian until the returned restore function is called. Nested scopes
// behave as a stack: each call saves the prior default and the matching
// restore call pops it back, regardless of whether the scope exits normally
// or via a panic recovered higher up — callers should always pair this with
// defer:
//
//	restore := nbt.LittleEndianNBT()
//	defer restore()
//
// Only package-level entry points that read the default at call start
// (Load, Save, Decode, Encode, and their *Bytes variants) observe this
// scope; DecodeEndian/EncodeEndian and a Codec built with WithEndian bypass
// it entirely.
func LittleEndianNBT() func() {
	endianMu.Lock()
	endianStack = append(endianStack, endianDefault)
	endianDefault = LittleEndian
	endianMu.Unlock()

	popped := false
	return func() {
		endianMu.Lock()
		defer endianMu.Unlock()
		if popped || len(endianStack) == 0 {
			return
		}
		n := len(endianStack) - 1
		endianDefault = endianStack[n]
		endianStack = endianStack[:n]
		popped = true
	}
}
