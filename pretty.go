package nbt

import (
	"fmt"
	"strings"
)

type prettyBuilder struct {
	sb     strings.Builder
	indent string
}

// Pretty renders t as a human-debuggable nested dump: Compounds as
// TAG_Compound({ "name": rendered, ... }), Lists as TAG_List([ ... ]), and
// scalars as KindName(value). Not a round-trippable format (spec.md §4.8).
func Pretty(t Tag) string {
	if t == nil {
		return "<nil>"
	}
	b := &prettyBuilder{indent: "  "}
	t.writePretty(b, 0)
	return b.sb.String()
}

func (b *prettyBuilder) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		b.sb.WriteString(b.indent)
	}
}

func (b *prettyBuilder) scalar(kind Kind, value interface{}) {
	fmt.Fprintf(&b.sb, "%s(%v)", kind, value)
}
