package nbt

// List is a homogeneous ordered container of unnamed tags (TAG_List). An
// empty list's element kind defaults to Byte; appending the first element
// to an empty list adopts that element's kind (spec.md §3 invariants 2-3).
// Appending clears the appended tag's name (invariant 4): list elements
// never carry names on the wire.
type List struct {
	name     string
	elemKind Kind
	items    []Tag
}

// NewList constructs an empty, optionally-named list. Its element kind defaults to
// Byte until the first element is appended.
func NewList(name string) *List {
	return &List{name: name, elemKind: KindByte}
}

func (t *List) Kind() Kind       { return KindList }
func (t *List) Name() string     { return t.name }
func (t *List) setName(n string) { t.name = n }

// ElemKind reports the list's declared element kind.
func (t *List) ElemKind() Kind { return t.elemKind }

// Len reports the number of elements.
func (t *List) Len() int { return len(t.items) }

// At returns the element at index i.
func (t *List) At(i int) Tag { return t.items[i] }

// Items returns the list's elements in order. The returned slice aliases
// internal storage and must not be mutated.
func (t *List) Items() []Tag { return t.items }

// Append adds value to the end of the list. If the list is currently
// empty, the list's element kind is adopted from value; otherwise value
// must already match the list's element kind. value's name is cleared,
// since list elements are always unnamed on the wire.
func (t *List) Append(value Tag) error {
	if len(t.items) == 0 {
		t.elemKind = value.Kind()
	} else if value.Kind() != t.elemKind {
		return newTextFormatError("cannot append " + value.Kind().String() + " to a TAG_List of " + t.elemKind.String())
	}
	value.setName("")
	t.items = append(t.items, value)
	return nil
}

func (t *List) clone() Tag {
	c := &List{name: t.name, elemKind: t.elemKind, items: make([]Tag, len(t.items))}
	for i, v := range t.items {
		c.items[i] = v.clone()
	}
	return c
}

func (t *List) encodePayload(w *writer) error {
	if err := w.writeByte(byte(t.elemKind)); err != nil {
		return err
	}
	if err := w.writeInt32(int32(len(t.items))); err != nil {
		return err
	}
	for _, item := range t.items {
		if err := item.encodePayload(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *List) writeJSON(b *jsonBuilder, order KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteByte('[')
	for i, item := range t.items {
		if i > 0 {
			b.sb.WriteByte(',')
		}
		item.writeJSON(b, order)
	}
	b.sb.WriteByte(']')
}

func (t *List) writePretty(b *prettyBuilder, indent int) {
	b.sb.WriteString("TAG_List([\n")
	for _, item := range t.items {
		b.writeIndent(indent + 1)
		item.writePretty(b, indent+1)
		b.sb.WriteString(",\n")
	}
	b.writeIndent(indent)
	b.sb.WriteString("])")
}

func (t *List) eq(other Tag) bool {
	o, ok := other.(*List)
	if !ok || len(t.items) != len(o.items) {
		return false
	}
	for i := range t.items {
		if !t.items[i].eq(o.items[i]) {
			return false
		}
	}
	return true
}

func (t *List) issubset(other Tag) bool {
	o, ok := other.(*List)
	if !ok {
		return false
	}
	for _, item := range t.items {
		matched := false
		for _, candidate := range o.items {
			if item.issubset(candidate) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func (t *List) update(src Tag) error {
	o, ok := src.(*List)
	if !ok {
		return newTextFormatError("cannot update TAG_List from a different kind")
	}
	items := make([]Tag, len(o.items))
	for i, v := range o.items {
		items[i] = v.clone()
	}
	t.elemKind = o.elemKind
	t.items = items
	return nil
}
