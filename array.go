package nbt

import "strconv"

// ByteArray is a length-prefixed sequence of unsigned 8-bit integers
// (TAG_Byte_Array). Length is counted in elements; on the wire it is a
// signed 32-bit integer (spec.md §3 invariant 5).
type ByteArray struct {
	name  string
	Value []byte
}

func NewByteArray(name string, value []byte) *ByteArray { return &ByteArray{name: name, Value: value} }

func (t *ByteArray) Kind() Kind       { return KindByteArray }
func (t *ByteArray) Name() string     { return t.name }
func (t *ByteArray) setName(n string) { t.name = n }
func (t *ByteArray) clone() Tag {
	c := *t
	c.Value = append([]byte(nil), t.Value...)
	return &c
}

func (t *ByteArray) encodePayload(w *writer) error {
	if err := w.writeInt32(int32(len(t.Value))); err != nil {
		return err
	}
	_, err := w.buf.Write(t.Value)
	return err
}

func (t *ByteArray) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString("[B;")
	for i, v := range t.Value {
		if i > 0 {
			b.sb.WriteByte(',')
		}
		b.sb.WriteString(strconv.FormatInt(int64(int8(v)), 10))
		b.sb.WriteByte('b')
	}
	b.sb.WriteByte(']')
}

func (t *ByteArray) writePretty(b *prettyBuilder, _ int) { b.scalar(KindByteArray, t.Value) }

func (t *ByteArray) eq(other Tag) bool {
	o, ok := other.(*ByteArray)
	if !ok || len(t.Value) != len(o.Value) {
		return false
	}
	for i := range t.Value {
		if t.Value[i] != o.Value[i] {
			return false
		}
	}
	return true
}
func (t *ByteArray) issubset(other Tag) bool { return t.eq(other) }
func (t *ByteArray) update(src Tag) error {
	o, ok := src.(*ByteArray)
	if !ok {
		return newTextFormatError("cannot update TAG_Byte_Array from a different kind")
	}
	t.Value = append([]byte(nil), o.Value...)
	return nil
}

// IntArray is a length-prefixed sequence of unsigned 32-bit integers
// (TAG_Int_Array).
type IntArray struct {
	name  string
	Value []uint32
}

func NewIntArray(name string, value []uint32) *IntArray { return &IntArray{name: name, Value: value} }

func (t *IntArray) Kind() Kind       { return KindIntArray }
func (t *IntArray) Name() string     { return t.name }
func (t *IntArray) setName(n string) { t.name = n }
func (t *IntArray) clone() Tag {
	c := *t
	c.Value = append([]uint32(nil), t.Value...)
	return &c
}

func (t *IntArray) encodePayload(w *writer) error {
	if err := w.writeInt32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.writeUint32(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *IntArray) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString("[I;")
	for i, v := range t.Value {
		if i > 0 {
			b.sb.WriteByte(',')
		}
		b.sb.WriteString(strconv.FormatInt(int64(int32(v)), 10))
	}
	b.sb.WriteByte(']')
}

func (t *IntArray) writePretty(b *prettyBuilder, _ int) { b.scalar(KindIntArray, t.Value) }

func (t *IntArray) eq(other Tag) bool {
	o, ok := other.(*IntArray)
	if !ok || len(t.Value) != len(o.Value) {
		return false
	}
	for i := range t.Value {
		if t.Value[i] != o.Value[i] {
			return false
		}
	}
	return true
}
func (t *IntArray) issubset(other Tag) bool { return t.eq(other) }
func (t *IntArray) update(src Tag) error {
	o, ok := src.(*IntArray)
	if !ok {
		return newTextFormatError("cannot update TAG_Int_Array from a different kind")
	}
	t.Value = append([]uint32(nil), o.Value...)
	return nil
}

// LongArray is a length-prefixed sequence of unsigned 64-bit integers
// (TAG_Long_Array).
type LongArray struct {
	name  string
	Value []uint64
}

func NewLongArray(name string, value []uint64) *LongArray {
	return &LongArray{name: name, Value: value}
}

func (t *LongArray) Kind() Kind       { return KindLongArray }
func (t *LongArray) Name() string     { return t.name }
func (t *LongArray) setName(n string) { t.name = n }
func (t *LongArray) clone() Tag {
	c := *t
	c.Value = append([]uint64(nil), t.Value...)
	return &c
}

func (t *LongArray) encodePayload(w *writer) error {
	if err := w.writeInt32(int32(len(t.Value))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.writeUint64(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *LongArray) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString("[L;")
	for i, v := range t.Value {
		if i > 0 {
			b.sb.WriteByte(',')
		}
		b.sb.WriteString(strconv.FormatInt(int64(v), 10))
		b.sb.WriteByte('l')
	}
	b.sb.WriteByte(']')
}

func (t *LongArray) writePretty(b *prettyBuilder, _ int) { b.scalar(KindLongArray, t.Value) }

func (t *LongArray) eq(other Tag) bool {
	o, ok := other.(*LongArray)
	if !ok || len(t.Value) != len(o.Value) {
		return false
	}
	for i := range t.Value {
		if t.Value[i] != o.Value[i] {
			return false
		}
	}
	return true
}
func (t *LongArray) issubset(other Tag) bool { return t.eq(other) }
func (t *LongArray) update(src Tag) error {
	o, ok := src.(*LongArray)
	if !ok {
		return newTextFormatError("cannot update TAG_Long_Array from a different kind")
	}
	t.Value = append([]uint64(nil), o.Value...)
	return nil
}
