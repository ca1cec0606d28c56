// Package nbt implements the Named Binary Tag format used throughout the
// Minecraft ecosystem: a compact, typed, self-describing tree serialization,
// together with a bidirectional bridge to the command-JSON textual form used
// in commands and data tags.
//
// A Tag is a tagged union over twelve kinds (Byte, Short, Int, Long, Float,
// Double, ByteArray, String, List, Compound, IntArray, LongArray). Every tag
// optionally carries a name; names are only meaningful for direct children
// of a Compound. The root of a tree is always a *Compound.
//
//	root, err := nbt.Load(r)
//	root.Insert(nbt.NewString("id", "minecraft:diamond_pickaxe"))
//	err = root.Save(w, true)
//
// Pocket Edition's little-endian variant is supported either by the
// explicit-endian entry points (DecodeEndian/EncodeEndian) or, for parity
// with the reference tool this package is modeled on, a scoped override:
//
//	restore := nbt.LittleEndianNBT()
//	defer restore()
//	root, err := nbt.Load(r)
package nbt
