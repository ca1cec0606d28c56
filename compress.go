package nbt

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gunzip decompresses a gzip-framed (RFC 1952) buffer.
func Gunzip(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// TryGunzip attempts gzip decompression and falls back to returning b
// unchanged if b isn't a gzip stream (spec.md §4.9, mirroring the source's
// try_gunzip). Decompression failure is recovered locally and never
// surfaced as an error.
func TryGunzip(b []byte) []byte {
	out, err := Gunzip(b)
	if err != nil {
		return b
	}
	return out
}

// gzipBytes wraps b in a gzip (RFC 1952) envelope.
func gzipBytes(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads a complete NBT stream from r, transparently gunzipping it if
// it is gzip-framed (spec.md §4.9). Uses the process-wide default endian
// profile.
func Load(r io.Reader) (*Compound, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// LoadBytes is Load over an in-memory buffer.
func LoadBytes(b []byte) (*Compound, error) {
	return decodeRoot(TryGunzip(b), currentEndian(), false, nil)
}

// Save serializes root to w, using the process-wide default endian
// profile, optionally gzipping the output.
func (t *Compound) Save(w io.Writer, compressed bool) error {
	b, err := t.SaveBytes(compressed)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// SaveBytes is Save over an in-memory buffer.
func (t *Compound) SaveBytes(compressed bool) ([]byte, error) {
	data, err := EncodeBytes(t)
	if err != nil {
		return nil, err
	}
	if !compressed {
		return data, nil
	}
	return gzipBytes(data)
}
