package nbt

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/go-kit/kit/log"
)

// cursor is a read-only view over a byte buffer used by the decoder. All
// multi-byte reads honor the active endian profile, including string and
// array length prefixes (spec.md §4.2). logger traces recoverable decode
// situations (e.g. a duplicate compound key overwriting a prior one); a nil
// logger is treated as a no-op sink.
type cursor struct {
	data   []byte
	offset int
	endian Endian
	logger log.Logger
}

func (c *cursor) log() log.Logger {
	if c.logger == nil {
		return log.NewNopLogger()
	}
	return c.logger
}

func (c *cursor) remaining() int {
	return len(c.data) - c.offset
}

func (c *cursor) need(n int) error {
	if n < 0 || c.remaining() < n {
		return newFormatError(c.offset, fmt.Sprintf("need %d more bytes, have %d", n, c.remaining()))
	}
	return nil
}

func (c *cursor) readByte() (byte, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	b := c.data[c.offset]
	c.offset++
	return b, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.offset : c.offset+n]
	c.offset += n
	return b, nil
}

func (c *cursor) readInt8() (int8, error) {
	b, err := c.readByte()
	return int8(b), err
}

func (c *cursor) readInt16() (int16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(c.endian.byteOrder().Uint16(b)), nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return c.endian.byteOrder().Uint16(b), nil
}

func (c *cursor) readInt32() (int32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(c.endian.byteOrder().Uint32(b)), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return c.endian.byteOrder().Uint32(b), nil
}

func (c *cursor) readInt64() (int64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(c.endian.byteOrder().Uint64(b)), nil
}

func (c *cursor) readUint64() (uint64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return c.endian.byteOrder().Uint64(b), nil
}

func (c *cursor) readFloat32() (float32, error) {
	u, err := c.readUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func (c *cursor) readFloat64() (float64, error) {
	u, err := c.readUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// readString reads a 16-bit-unsigned-length-prefixed UTF-8 string (spec.md
// §4.1/§3 invariant 6), validating the decoded bytes as UTF-8.
func (c *cursor) readString() (string, error) {
	n, err := c.readUint16()
	if err != nil {
		return "", err
	}
	b, err := c.readBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newFormatError(c.offset-int(n), "invalid UTF-8 in string payload")
	}
	return string(b), nil
}

// writer is a growable byte buffer used by the encoder. Like cursor, every
// multi-byte write honors the active endian profile.
type writer struct {
	buf    bytes.Buffer
	endian Endian
}

func (w *writer) writeByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *writer) writeInt8(v int8) error {
	return w.buf.WriteByte(byte(v))
}

func (w *writer) writeInt16(v int16) error {
	return w.writeUint16(uint16(v))
}

func (w *writer) writeUint16(v uint16) error {
	var b [2]byte
	w.endian.byteOrder().PutUint16(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

func (w *writer) writeInt32(v int32) error {
	return w.writeUint32(uint32(v))
}

func (w *writer) writeUint32(v uint32) error {
	var b [4]byte
	w.endian.byteOrder().PutUint32(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

func (w *writer) writeInt64(v int64) error {
	return w.writeUint64(uint64(v))
}

func (w *writer) writeUint64(v uint64) error {
	var b [8]byte
	w.endian.byteOrder().PutUint64(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

func (w *writer) writeFloat32(v float32) error {
	return w.writeUint32(math.Float32bits(v))
}

func (w *writer) writeFloat64(v float64) error {
	return w.writeUint64(math.Float64bits(v))
}

// writeString writes a 16-bit-unsigned-length-prefixed UTF-8 string. Per
// the redesign noted in spec.md §9 ("String-length asymmetry"), this always
// writes the same unsigned-16 prefix readString expects, rather than the
// source's signed-16 emitter quirk.
func (w *writer) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return newFormatError(w.buf.Len(), fmt.Sprintf("string of %d bytes exceeds 65535-byte limit", len(s)))
	}
	if err := w.writeUint16(uint16(len(s))); err != nil {
		return err
	}
	_, err := w.buf.WriteString(s)
	return err
}
