package nbt

import "strconv"

// Byte is a signed 8-bit integer tag (TAG_Byte). Booleans in the textual
// form are represented as a Byte carrying 0 or 1 (spec.md §6).
type Byte struct {
	name  string
	Value int8
}

// NewByte constructs an unnamed Byte tag. Byte has no exported name
// setter, and (*Compound).Insert rejects unnamed tags, so a Byte built here
// can be appended to a List but not inserted into a Compound.
func NewByte(value int8) *Byte { return &Byte{Value: value} }

func (t *Byte) Kind() Kind        { return KindByte }
func (t *Byte) Name() string      { return t.name }
func (t *Byte) setName(n string)  { t.name = n }
func (t *Byte) clone() Tag        { c := *t; return &c }

func (t *Byte) encodePayload(w *writer) error { return w.writeInt8(t.Value) }

func (t *Byte) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString(strconv.FormatInt(int64(t.Value), 10))
	b.sb.WriteByte('b')
}

func (t *Byte) writePretty(b *prettyBuilder, _ int) { b.scalar(KindByte, t.Value) }

func (t *Byte) eq(other Tag) bool {
	o, ok := other.(*Byte)
	return ok && t.Value == o.Value
}
func (t *Byte) issubset(other Tag) bool { return t.eq(other) }
func (t *Byte) update(src Tag) error {
	o, ok := src.(*Byte)
	if !ok {
		return newTextFormatError("cannot update TAG_Byte from a different kind")
	}
	t.Value = o.Value
	return nil
}

// Short is a signed 16-bit integer tag (TAG_Short).
type Short struct {
	name  string
	Value int16
}

func NewShort(value int16) *Short { return &Short{Value: value} }

func (t *Short) Kind() Kind       { return KindShort }
func (t *Short) Name() string     { return t.name }
func (t *Short) setName(n string) { t.name = n }
func (t *Short) clone() Tag       { c := *t; return &c }

func (t *Short) encodePayload(w *writer) error { return w.writeInt16(t.Value) }

func (t *Short) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString(strconv.FormatInt(int64(t.Value), 10))
	b.sb.WriteByte('s')
}

func (t *Short) writePretty(b *prettyBuilder, _ int) { b.scalar(KindShort, t.Value) }

func (t *Short) eq(other Tag) bool {
	o, ok := other.(*Short)
	return ok && t.Value == o.Value
}
func (t *Short) issubset(other Tag) bool { return t.eq(other) }
func (t *Short) update(src Tag) error {
	o, ok := src.(*Short)
	if !ok {
		return newTextFormatError("cannot update TAG_Short from a different kind")
	}
	t.Value = o.Value
	return nil
}

// Int is a signed 32-bit integer tag (TAG_Int). Int is the only scalar that
// emits with no type suffix in the textual form.
type Int struct {
	name  string
	Value int32
}

func NewInt(value int32) *Int { return &Int{Value: value} }

func (t *Int) Kind() Kind       { return KindInt }
func (t *Int) Name() string     { return t.name }
func (t *Int) setName(n string) { t.name = n }
func (t *Int) clone() Tag       { c := *t; return &c }

func (t *Int) encodePayload(w *writer) error { return w.writeInt32(t.Value) }

func (t *Int) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString(strconv.FormatInt(int64(t.Value), 10))
}

func (t *Int) writePretty(b *prettyBuilder, _ int) { b.scalar(KindInt, t.Value) }

func (t *Int) eq(other Tag) bool {
	o, ok := other.(*Int)
	return ok && t.Value == o.Value
}
func (t *Int) issubset(other Tag) bool { return t.eq(other) }
func (t *Int) update(src Tag) error {
	o, ok := src.(*Int)
	if !ok {
		return newTextFormatError("cannot update TAG_Int from a different kind")
	}
	t.Value = o.Value
	return nil
}

// Long is a signed 64-bit integer tag (TAG_Long).
type Long struct {
	name  string
	Value int64
}

func NewLong(value int64) *Long { return &Long{Value: value} }

func (t *Long) Kind() Kind       { return KindLong }
func (t *Long) Name() string     { return t.name }
func (t *Long) setName(n string) { t.name = n }
func (t *Long) clone() Tag       { c := *t; return &c }

func (t *Long) encodePayload(w *writer) error { return w.writeInt64(t.Value) }

func (t *Long) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString(strconv.FormatInt(t.Value, 10))
	b.sb.WriteByte('l')
}

func (t *Long) writePretty(b *prettyBuilder, _ int) { b.scalar(KindLong, t.Value) }

func (t *Long) eq(other Tag) bool {
	o, ok := other.(*Long)
	return ok && t.Value == o.Value
}
func (t *Long) issubset(other Tag) bool { return t.eq(other) }
func (t *Long) update(src Tag) error {
	o, ok := src.(*Long)
	if !ok {
		return newTextFormatError("cannot update TAG_Long from a different kind")
	}
	t.Value = o.Value
	return nil
}

// Float is an IEEE-754 32-bit floating point tag (TAG_Float).
type Float struct {
	name  string
	Value float32
}

func NewFloat(value float32) *Float { return &Float{Value: value} }

func (t *Float) Kind() Kind       { return KindFloat }
func (t *Float) Name() string     { return t.name }
func (t *Float) setName(n string) { t.name = n }
func (t *Float) clone() Tag       { c := *t; return &c }

func (t *Float) encodePayload(w *writer) error { return w.writeFloat32(t.Value) }

func (t *Float) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString(formatFloat32(t.Value))
	b.sb.WriteByte('f')
}

func (t *Float) writePretty(b *prettyBuilder, _ int) { b.scalar(KindFloat, t.Value) }

func (t *Float) eq(other Tag) bool {
	o, ok := other.(*Float)
	return ok && t.Value == o.Value
}
func (t *Float) issubset(other Tag) bool { return t.eq(other) }
func (t *Float) update(src Tag) error {
	o, ok := src.(*Float)
	if !ok {
		return newTextFormatError("cannot update TAG_Float from a different kind")
	}
	t.Value = o.Value
	return nil
}

// Double is an IEEE-754 64-bit floating point tag (TAG_Double).
type Double struct {
	name  string
	Value float64
}

func NewDouble(value float64) *Double { return &Double{Value: value} }

func (t *Double) Kind() Kind       { return KindDouble }
func (t *Double) Name() string     { return t.name }
func (t *Double) setName(n string) { t.name = n }
func (t *Double) clone() Tag       { c := *t; return &c }

func (t *Double) encodePayload(w *writer) error { return w.writeFloat64(t.Value) }

func (t *Double) writeJSON(b *jsonBuilder, _ KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteString(formatFloat64(t.Value))
	b.sb.WriteByte('d')
}

func (t *Double) writePretty(b *prettyBuilder, _ int) { b.scalar(KindDouble, t.Value) }

func (t *Double) eq(other Tag) bool {
	o, ok := other.(*Double)
	return ok && t.Value == o.Value
}
func (t *Double) issubset(other Tag) bool { return t.eq(other) }
func (t *Double) update(src Tag) error {
	o, ok := src.(*Double)
	if !ok {
		return newTextFormatError("cannot update TAG_Double from a different kind")
	}
	t.Value = o.Value
	return nil
}
