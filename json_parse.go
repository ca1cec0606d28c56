package nbt

import (
	"strconv"
	"strings"
	"unicode"
)

// pendingNative holds the not-yet-classified token text accumulated since
// the last separator: either a bare run of characters, or (once a matching
// closing quote is seen) the full quoted span including the quote marks.
type pendingNative struct {
	has bool
	val string
}

// jsonParser is the character-driven state machine described in spec.md
// §4.7: a container stack seeded with an empty root Compound, a pending
// name, a pending native value, a string-literal flag, a backslash flag,
// and a countdown that skips the two characters following '[' when a typed
// array prefix ("B;", "I;", "L;") is consumed.
type jsonParser struct {
	src   []rune
	pos   int
	stack []Tag

	name   string
	native pendingNative

	inString   bool
	quoteStart int
	backslash  bool
	skipN      int

	// depth counts open containers including the implicit root, which is
	// seeded onto stack before its opening '{' is seen and is therefore
	// never itself pushed/popped. depth reaching 0 after a close means the
	// root just closed; going negative means an extra, unmatched close.
	depth int
}

// ParseJSON reconstructs a tag tree from Minecraft's command-JSON textual
// form (the output of JSON), tolerating the whitespace-between-tokens and
// leading-quoted-list cases spec.md §9 leaves as resolved Open Questions:
// insignificant whitespace outside string literals is treated as a
// between-token separator, and a '"' immediately after '[' opens the first
// list element rather than being misread as a stray value.
func ParseJSON(s string) (*Compound, error) {
	root := NewCompound("")
	p := &jsonParser{src: []rune(s), stack: []Tag{root}}

	for p.pos < len(p.src) {
		if err := p.step(p.src[p.pos]); err != nil {
			return nil, err
		}
		p.pos++
	}
	if err := p.storeValue(); err != nil {
		return nil, err
	}
	if p.depth != 0 {
		return nil, newTextFormatError("unbalanced container: missing closing bracket or brace")
	}
	return root, nil
}

func (p *jsonParser) step(c rune) error {
	switch {
	case p.skipN > 0:
		p.skipN--
		return nil

	case p.backslash:
		// Previous character was '\': this character is escaped and does
		// not end a string literal even if it is a quote.
		p.backslash = false
		return nil

	case c == '\\':
		p.backslash = true
		return nil

	case c == '"':
		if p.inString {
			p.native = pendingNative{has: true, val: string(p.src[p.quoteStart : p.pos+1])}
			p.inString = false
		} else {
			p.inString = true
			p.quoteStart = p.pos
		}
		return nil

	case p.inString:
		return nil

	case c == '{':
		if p.depth == 0 {
			p.depth = 1
			return nil
		}
		p.depth++
		return p.pushContainer(NewCompound(""))

	case c == '[':
		p.depth++
		prefix := ""
		if p.pos+3 <= len(p.src) {
			prefix = string(p.src[p.pos+1 : p.pos+3])
		}
		switch prefix {
		case "B;":
			p.skipN = 2
			return p.pushContainer(&ByteArray{})
		case "I;":
			p.skipN = 2
			return p.pushContainer(&IntArray{})
		case "L;":
			p.skipN = 2
			return p.pushContainer(&LongArray{})
		default:
			return p.pushContainer(NewList(""))
		}

	case c == ']' || c == '}':
		p.depth--
		if p.depth < 0 {
			return newTextFormatError("unbalanced closing bracket or brace")
		}
		if p.depth == 0 {
			// Closing the implicit root, which was never pushed.
			return p.storeValue()
		}
		return p.exitContainer()

	case c == ':':
		raw := p.native.val
		p.native = pendingNative{}
		if p.name == "" {
			p.name = raw
		} else {
			p.name = p.name + ":" + raw
		}
		return nil

	case c == ',':
		return p.storeValue()

	case unicode.IsSpace(c):
		// Resolved Open Question: insignificant whitespace between tokens
		// is swallowed rather than appended to a pending scalar buffer.
		return nil

	default:
		p.native.val += string(c)
		p.native.has = true
		return nil
	}
}

// pushContainer finalizes tag's name from the currently pending name
// buffer, inserts it into the container on top of the stack, and pushes it
// as the new top of stack.
func (p *jsonParser) pushContainer(tag Tag) error {
	tag.setName(finalizeName(p.name))
	p.name = ""
	if err := p.insertIntoParent(tag); err != nil {
		return err
	}
	p.stack = append(p.stack, tag)
	return nil
}

// storeValue finalizes any pending bare/quoted token into a concrete Tag
// and inserts it into the container on top of the stack. A no-op if there
// is no pending value (e.g. two separators in a row).
func (p *jsonParser) storeValue() error {
	if !p.native.has {
		return nil
	}
	raw := p.native.val
	p.native = pendingNative{}

	tag, err := classifyToken(raw)
	if err != nil {
		return err
	}
	tag.setName(finalizeName(p.name))
	p.name = ""
	return p.insertIntoParent(tag)
}

// exitContainer flushes any pending value into the currently open nested
// container, then pops it off the stack. Not called for the root: the root
// is never pushed, so closing it only needs the storeValue flush (see
// step's depth == 0 branch).
func (p *jsonParser) exitContainer() error {
	if err := p.storeValue(); err != nil {
		return err
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// insertIntoParent routes tag into the container on top of the stack,
// dispatching on the parent's container kind (spec.md §9's "container
// trait" note: Compound and List are distinct container variants with
// different insertion constraints, not subclasses of one interface).
func (p *jsonParser) insertIntoParent(tag Tag) error {
	switch parent := p.stack[len(p.stack)-1].(type) {
	case *Compound:
		if tag.Name() == "" {
			return newTextFormatError("an unnamed tag cannot be inserted into a TAG_Compound")
		}
		parent.store(tag)
		return nil
	case *List:
		return parent.Append(tag)
	case *ByteArray:
		v, ok := scalarAsInt64(tag)
		if !ok {
			return newTextFormatError("TAG_Byte_Array elements must be numeric")
		}
		parent.Value = append(parent.Value, byte(v))
		return nil
	case *IntArray:
		v, ok := scalarAsInt64(tag)
		if !ok {
			return newTextFormatError("TAG_Int_Array elements must be numeric")
		}
		parent.Value = append(parent.Value, uint32(v))
		return nil
	case *LongArray:
		v, ok := scalarAsInt64(tag)
		if !ok {
			return newTextFormatError("TAG_Long_Array elements must be numeric")
		}
		parent.Value = append(parent.Value, uint64(v))
		return nil
	default:
		return newTextFormatError("invalid tag container type")
	}
}

func scalarAsInt64(tag Tag) (int64, bool) {
	switch t := tag.(type) {
	case *Byte:
		return int64(t.Value), true
	case *Short:
		return int64(t.Value), true
	case *Int:
		return int64(t.Value), true
	case *Long:
		return t.Value, true
	case *Float:
		return int64(t.Value), true
	case *Double:
		return int64(t.Value), true
	default:
		return 0, false
	}
}

// finalizeName strips a wrapping pair of quotes (and unescapes) from a
// fully-quoted pending name, and passes an unquoted name (including one
// that literally contains colons, per spec.md §4.7 item 5) through as-is.
func finalizeName(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return unescapeJSONString(raw[1 : len(raw)-1])
	}
	return raw
}

// classifyToken implements storeValue's bare-token classification rules
// from spec.md §4.7: trailing-suffix dispatch with string fallback on parse
// failure, quoted strings, and the bare "true"/"false" rewrite.
func classifyToken(raw string) (Tag, error) {
	switch strings.ToLower(raw) {
	case "true":
		raw = "1b"
	case "false":
		raw = "0b"
	}

	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return NewString("", unescapeJSONString(raw[1:len(raw)-1])), nil
	}

	tail := raw[len(raw)-1]
	body := raw[:len(raw)-1]
	switch tail {
	case 'b', 'B':
		if v, err := strconv.ParseInt(body, 10, 8); err == nil {
			return NewByte(int8(v)), nil
		}
		return NewString("", raw), nil
	case 's', 'S':
		if v, err := strconv.ParseInt(body, 10, 16); err == nil {
			return NewShort(int16(v)), nil
		}
		return NewString("", raw), nil
	case 'l', 'L':
		if v, err := strconv.ParseInt(body, 10, 64); err == nil {
			return NewLong(v), nil
		}
		return NewString("", raw), nil
	case 'f', 'F':
		if v, err := strconv.ParseFloat(body, 32); err == nil {
			return NewFloat(float32(v)), nil
		}
		return NewString("", raw), nil
	case 'd', 'D':
		if v, err := strconv.ParseFloat(body, 64); err == nil {
			return NewDouble(v), nil
		}
		return NewString("", raw), nil
	}

	if strings.Contains(raw, ".") {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return NewDouble(v), nil
		}
		return NewString("", raw), nil
	}

	if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return NewInt(int32(v)), nil
	}
	return NewString("", raw), nil
}
