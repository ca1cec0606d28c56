package nbt

import (
	"fmt"
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Decode reads a complete NBT stream from r and returns the root Compound,
// using the process-wide default endian profile (see LittleEndianNBT).
func Decode(r io.Reader) (*Compound, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a complete NBT buffer using the process-wide default
// endian profile.
func DecodeBytes(b []byte) (*Compound, error) {
	return decodeRoot(b, currentEndian(), false, nil)
}

// DecodeEndian decodes a complete NBT buffer using an explicit endian
// profile, bypassing the process-wide default entirely (the redesign
// spec.md §9 prefers over the scoped global).
func DecodeEndian(b []byte, e Endian) (*Compound, error) {
	return decodeRoot(b, e, false, nil)
}

// decodeRoot implements spec.md §4.3: the first byte must be TAG_Compound
// (10); its name follows; the payload is decoded recursively.
func decodeRoot(b []byte, e Endian, allowDup bool, logger log.Logger) (*Compound, error) {
	if len(b) == 0 {
		return nil, newFormatError(0, "asked to load a root tag of zero length")
	}
	c := &cursor{data: b, endian: e, logger: logger}
	id, err := c.readByte()
	if err != nil {
		return nil, err
	}
	if Kind(id) != KindCompound {
		return nil, newFormatError(0, fmt.Sprintf("not an NBT stream with a root TAG_Compound: first byte is 0x%02X", id))
	}
	name, err := c.readString()
	if err != nil {
		return nil, err
	}
	root, err := decodeCompoundPayload(c, allowDup)
	if err != nil {
		return nil, err
	}
	root.name = name
	return root, nil
}

// decodeTag dispatches on kind and decodes one payload (the tag-ID byte and,
// for Compound children, the name, have already been consumed by the
// caller).
func decodeTag(c *cursor, kind Kind, allowDup bool) (Tag, error) {
	switch kind {
	case KindByte:
		v, err := c.readInt8()
		if err != nil {
			return nil, err
		}
		return NewByte(v), nil
	case KindShort:
		v, err := c.readInt16()
		if err != nil {
			return nil, err
		}
		return NewShort(v), nil
	case KindInt:
		v, err := c.readInt32()
		if err != nil {
			return nil, err
		}
		return NewInt(v), nil
	case KindLong:
		v, err := c.readInt64()
		if err != nil {
			return nil, err
		}
		return NewLong(v), nil
	case KindFloat:
		v, err := c.readFloat32()
		if err != nil {
			return nil, err
		}
		return NewFloat(v), nil
	case KindDouble:
		v, err := c.readFloat64()
		if err != nil {
			return nil, err
		}
		return NewDouble(v), nil
	case KindByteArray:
		return decodeByteArray(c)
	case KindString:
		s, err := c.readString()
		if err != nil {
			return nil, err
		}
		return NewString("", s), nil
	case KindList:
		return decodeList(c, allowDup)
	case KindCompound:
		return decodeCompoundPayload(c, allowDup)
	case KindIntArray:
		return decodeIntArray(c)
	case KindLongArray:
		return decodeLongArray(c)
	default:
		return nil, newFormatError(c.offset, "unknown tag ID")
	}
}

func decodeArrayLen(c *cursor) (int, error) {
	n, err := c.readInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, newFormatError(c.offset, "negative array/list length")
	}
	return int(n), nil
}

func decodeByteArray(c *cursor) (Tag, error) {
	n, err := decodeArrayLen(c)
	if err != nil {
		return nil, err
	}
	raw, err := c.readBytes(n)
	if err != nil {
		return nil, err
	}
	return NewByteArray("", append([]byte(nil), raw...)), nil
}

func decodeIntArray(c *cursor) (Tag, error) {
	n, err := decodeArrayLen(c)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := c.readUint32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewIntArray("", out), nil
}

func decodeLongArray(c *cursor) (Tag, error) {
	n, err := decodeArrayLen(c)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		v, err := c.readUint64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewLongArray("", out), nil
}

func decodeList(c *cursor, allowDup bool) (Tag, error) {
	elemID, err := c.readByte()
	if err != nil {
		return nil, err
	}
	n, err := decodeArrayLen(c)
	if err != nil {
		return nil, err
	}
	list := &List{elemKind: Kind(elemID)}
	for i := 0; i < n; i++ {
		item, err := decodeTag(c, Kind(elemID), allowDup)
		if err != nil {
			return nil, err
		}
		list.items = append(list.items, item)
	}
	return list, nil
}

// decodeCompoundPayload reads named children until the terminator byte
// (spec.md §4.3). Children are attached by wire order; duplicate names are
// deduplicated (last wins) unless allowDup is set, matching Insert's
// default policy.
func decodeCompoundPayload(c *cursor, allowDup bool) (*Compound, error) {
	comp := &Compound{AllowDuplicateKeys: allowDup}
	for {
		id, err := c.readByte()
		if err != nil {
			return nil, err
		}
		if Kind(id) == KindEnd {
			break
		}
		name, err := c.readString()
		if err != nil {
			return nil, err
		}
		child, err := decodeTag(c, Kind(id), allowDup)
		if err != nil {
			return nil, err
		}
		child.setName(name)
		if !allowDup && comp.Has(name) {
			level.Debug(c.log()).Log("msg", "duplicate compound key overwritten", "key", name)
		}
		comp.store(child)
	}
	return comp, nil
}
