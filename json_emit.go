package nbt

import (
	"sort"
	"strconv"
	"strings"
)

type keyOrderMode int

const (
	orderInsertion keyOrderMode = iota
	orderPriority
	orderSorted
)

// KeyOrder selects how Compound keys are ordered in the JSON text emitted
// by JSON. The default, InsertionOrder, emits keys in the order they were
// last inserted. PriorityOrder emits the given keys (in the given order,
// skipping any absent from the compound) first, then the remaining keys
// sorted. SortedOrder emits every key sorted.
type KeyOrder struct {
	mode     keyOrderMode
	priority []string
}

// InsertionOrder emits Compound keys in insertion order (the default).
func InsertionOrder() KeyOrder { return KeyOrder{mode: orderInsertion} }

// SortedOrder emits Compound keys in sorted order.
func SortedOrder() KeyOrder { return KeyOrder{mode: orderSorted} }

// PriorityOrder emits keys listed in priority first (in that order, skipping
// keys the compound doesn't have), then the rest of the compound's keys
// sorted.
func PriorityOrder(priority []string) KeyOrder {
	return KeyOrder{mode: orderPriority, priority: priority}
}

type jsonBuilder struct {
	sb strings.Builder
}

// JSON renders t as Minecraft's command-JSON textual form (spec.md §4.6):
// scalars with a one-character type suffix (Int is bare), quoted/escaped
// strings, {}/[]/[B;…]/[I;…]/[L;…] containers, and a "name:" prefix for
// named tags. order controls Compound key ordering; see KeyOrder.
func JSON(t Tag, order KeyOrder) string {
	if t == nil {
		return ""
	}
	b := &jsonBuilder{}
	t.writeJSON(b, order)
	return b.sb.String()
}

func (b *jsonBuilder) namePrefix(name string) {
	if name != "" {
		b.sb.WriteString(name)
		b.sb.WriteByte(':')
	}
}

func escapeJSONString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// compoundKeyOrder resolves the concrete key sequence a Compound should
// emit for the given order, implementing the three modes from spec.md
// §4.6.
func compoundKeyOrder(c *Compound, order KeyOrder) []string {
	switch order.mode {
	case orderSorted:
		keys := append([]string(nil), c.Keys()...)
		sort.Strings(keys)
		return keys
	case orderPriority:
		seen := make(map[string]bool, len(order.priority))
		out := make([]string, 0, len(c.Keys()))
		for _, k := range order.priority {
			if c.Has(k) && !seen[k] {
				out = append(out, k)
				seen[k] = true
			}
		}
		rest := make([]string, 0)
		for _, k := range c.Keys() {
			if !seen[k] {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		return append(out, rest...)
	default:
		return c.Keys()
	}
}

// formatFloat32/64 render floating-point scalars the way Python's str()
// does for the values this library actually emits: the shortest round-trip
// decimal, but never bare-integer-looking (3.0, not 3), matching scenario 4
// in spec.md §8 ("3.0d").
func formatFloat32(v float32) string {
	return ensureDecimalPoint(strconv.FormatFloat(float64(v), 'f', -1, 32))
}

func formatFloat64(v float64) string {
	return ensureDecimalPoint(strconv.FormatFloat(v, 'f', -1, 64))
}

func ensureDecimalPoint(s string) string {
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}
