package nbt

import "io"

// Encode writes root to w as a complete NBT stream, using the process-wide
// default endian profile (see LittleEndianNBT).
func Encode(w io.Writer, root *Compound) error {
	b, err := EncodeBytes(root)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// EncodeBytes encodes root using the process-wide default endian profile
// and returns the resulting bytes.
func EncodeBytes(root *Compound) ([]byte, error) {
	return encodeRoot(root, currentEndian())
}

// EncodeEndian encodes root using an explicit endian profile, bypassing the
// process-wide default entirely.
func EncodeEndian(root *Compound, e Endian) ([]byte, error) {
	return encodeRoot(root, e)
}

// encodeRoot implements spec.md §4.4: a top-level Compound writes its own
// tag-ID byte, name, and payload, exactly like any other named tag.
func encodeRoot(root *Compound, e Endian) ([]byte, error) {
	w := &writer{endian: e}
	if err := encodeNamedTag(w, root); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// encodeNamedTag writes one tag as it appears nested inside a Compound:
// tag-ID byte, length-prefixed name, then the kind-specific payload.
func encodeNamedTag(w *writer, t Tag) error {
	if err := w.writeByte(byte(t.Kind())); err != nil {
		return err
	}
	if err := w.writeString(t.Name()); err != nil {
		return err
	}
	return t.encodePayload(w)
}
