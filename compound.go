package nbt

// Compound is a keyed container of named tags (TAG_Compound). Names are
// unique within a Compound by default: inserting a tag under a name removes
// any prior tag with that name (spec.md §3 invariant 1). Setting
// AllowDuplicateKeys disables that removal, in which case Get returns the
// first match and GetAll returns every match.
type Compound struct {
	name             string
	children         []Tag
	AllowDuplicateKeys bool
}

// NewCompound constructs an empty, optionally-named Compound.
func NewCompound(name string) *Compound {
	return &Compound{name: name}
}

func (t *Compound) Kind() Kind       { return KindCompound }
func (t *Compound) Name() string     { return t.name }
func (t *Compound) setName(n string) { t.name = n }

// SetName renames the tag. Exported because a root Compound's name is
// meaningful and callers frequently set it after construction (the wire
// root itself may carry a name, unlike an ordinary un-nested tag).
func (t *Compound) SetName(n string) { t.name = n }

// Len reports the number of children, counting duplicates if
// AllowDuplicateKeys permitted more than one tag under the same name.
func (t *Compound) Len() int { return len(t.children) }

// Keys returns the compound's key names in the order of each name's first
// occurrence among the children, with no duplicates (even in
// AllowDuplicateKeys mode, each name is listed once). In the default mode a
// re-inserted key moves to the end, since Insert removes the old child.
func (t *Compound) Keys() []string {
	seen := make(map[string]bool, len(t.children))
	keys := make([]string, 0, len(t.children))
	for _, c := range t.children {
		if !seen[c.Name()] {
			seen[c.Name()] = true
			keys = append(keys, c.Name())
		}
	}
	return keys
}

// Children returns the compound's children in wire/insertion order. The
// returned slice aliases internal storage and must not be mutated.
func (t *Compound) Children() []Tag { return t.children }

// Has reports whether key names a child.
func (t *Compound) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Get returns the first child named key.
func (t *Compound) Get(key string) (Tag, bool) {
	for _, c := range t.children {
		if c.Name() == key {
			return c, true
		}
	}
	return nil, false
}

// GetAll returns every child named key, in insertion order. Ordinarily this
// has at most one element; more than one implies AllowDuplicateKeys was
// set when the duplicates were inserted (spec.md §8 invariant).
func (t *Compound) GetAll(key string) []Tag {
	var out []Tag
	for _, c := range t.children {
		if c.Name() == key {
			out = append(out, c)
		}
	}
	return out
}

// Insert attaches value under its own name. value.Name() must be non-empty
// (spec.md §3 invariant 4). Unless AllowDuplicateKeys is set, any existing
// child with the same name is removed first.
func (t *Compound) Insert(value Tag) error {
	if value.Name() == "" {
		return newTextFormatError("a tag needs a non-empty name to be inserted into a TAG_Compound")
	}
	t.store(value)
	return nil
}

// store appends value, honoring AllowDuplicateKeys, without validating that
// value carries a name. Used internally by the decoder, which must tolerate
// whatever the wire actually contains.
func (t *Compound) store(value Tag) {
	if !t.AllowDuplicateKeys {
		t.Delete(value.Name())
	}
	t.children = append(t.children, value)
}

// Delete removes every child named key.
func (t *Compound) Delete(key string) {
	out := t.children[:0]
	for _, c := range t.children {
		if c.Name() != key {
			out = append(out, c)
		}
	}
	t.children = out
}

func (t *Compound) clone() Tag {
	c := &Compound{name: t.name, AllowDuplicateKeys: t.AllowDuplicateKeys, children: make([]Tag, len(t.children))}
	for i, v := range t.children {
		c.children[i] = v.clone()
	}
	return c
}

func (t *Compound) encodePayload(w *writer) error {
	for _, child := range t.children {
		if err := encodeNamedTag(w, child); err != nil {
			return err
		}
	}
	return w.writeByte(byte(KindEnd))
}

func (t *Compound) writeJSON(b *jsonBuilder, order KeyOrder) {
	b.namePrefix(t.name)
	b.sb.WriteByte('{')
	for i, key := range compoundKeyOrder(t, order) {
		if i > 0 {
			b.sb.WriteByte(',')
		}
		child, _ := t.Get(key)
		child.writeJSON(b, order)
	}
	b.sb.WriteByte('}')
}

func (t *Compound) writePretty(b *prettyBuilder, indent int) {
	b.sb.WriteString("TAG_Compound({\n")
	for _, key := range t.Keys() {
		child, _ := t.Get(key)
		b.writeIndent(indent + 1)
		b.sb.WriteByte('"')
		b.sb.WriteString(key)
		b.sb.WriteString("\": ")
		child.writePretty(b, indent+1)
		b.sb.WriteString(",\n")
	}
	b.writeIndent(indent)
	b.sb.WriteString("})")
}

func (t *Compound) eq(other Tag) bool {
	o, ok := other.(*Compound)
	if !ok || len(t.Keys()) != len(o.Keys()) {
		return false
	}
	for _, key := range t.Keys() {
		a, _ := t.Get(key)
		b, ok := o.Get(key)
		if !ok || !a.eq(b) {
			return false
		}
	}
	return true
}

func (t *Compound) issubset(other Tag) bool {
	o, ok := other.(*Compound)
	if !ok {
		return false
	}
	for _, key := range t.Keys() {
		a, _ := t.Get(key)
		b, ok := o.Get(key)
		if !ok || !a.issubset(b) {
			return false
		}
	}
	return true
}

func (t *Compound) update(src Tag) error {
	o, ok := src.(*Compound)
	if !ok {
		return newTextFormatError("cannot update TAG_Compound from a different kind")
	}
	for _, key := range o.Keys() {
		srcChild, _ := o.Get(key)
		if dstChild, ok := t.Get(key); ok {
			if err := dstChild.update(srcChild); err != nil {
				return err
			}
			continue
		}
		t.store(srcChild.clone())
	}
	return nil
}
