package nbt

import (
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Codec bundles the configuration the package-level functions otherwise
// take from the process-wide default (endian profile, duplicate-key
// policy) plus a logger for tracing recoverable situations, grounded on
// kolide-launcher/control's Client/Option pattern.
type Codec struct {
	endian             Endian
	logger             log.Logger
	allowDuplicateKeys bool
}

// NewCodec builds a Codec with sensible defaults (big-endian, no logging,
// no duplicate keys), then applies opts.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		endian: BigEndian,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads a complete NBT stream from r, transparently gunzipping it if
// gzip-framed, using the codec's configured endian profile.
func (c *Codec) Load(r io.Reader) (*Compound, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return c.LoadBytes(data)
}

// LoadBytes is Load over an in-memory buffer.
func (c *Codec) LoadBytes(b []byte) (*Compound, error) {
	raw := TryGunzip(b)
	if len(raw) != len(b) {
		level.Debug(c.logger).Log("msg", "gunzipped NBT stream", "compressed_bytes", len(b), "bytes", len(raw))
	}
	return decodeRoot(raw, c.endian, c.allowDuplicateKeys, c.logger)
}

// Decode decodes a complete (already-decompressed) NBT stream from r.
func (c *Codec) Decode(r io.Reader) (*Compound, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeRoot(data, c.endian, c.allowDuplicateKeys, c.logger)
}

// DecodeBytes is Decode over an in-memory buffer.
func (c *Codec) DecodeBytes(b []byte) (*Compound, error) {
	return decodeRoot(b, c.endian, c.allowDuplicateKeys, c.logger)
}

// Save serializes root to w under the codec's configured endian profile,
// optionally gzipping the output.
func (c *Codec) Save(w io.Writer, root *Compound, compressed bool) error {
	b, err := c.SaveBytes(root, compressed)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// SaveBytes is Save over an in-memory buffer.
func (c *Codec) SaveBytes(root *Compound, compressed bool) ([]byte, error) {
	data, err := encodeRoot(root, c.endian)
	if err != nil {
		return nil, err
	}
	if !compressed {
		return data, nil
	}
	level.Debug(c.logger).Log("msg", "gzipping NBT stream", "bytes", len(data))
	return gzipBytes(data)
}

// Encode serializes root to w under the codec's configured endian profile,
// uncompressed.
func (c *Codec) Encode(w io.Writer, root *Compound) error {
	return c.Save(w, root, false)
}

// EncodeBytes is Encode over an in-memory buffer.
func (c *Codec) EncodeBytes(root *Compound) ([]byte, error) {
	return c.SaveBytes(root, false)
}

// JSON renders root in command-JSON textual form using order.
func (c *Codec) JSON(root *Compound, order KeyOrder) string {
	return JSON(root, order)
}

// ParseJSON reconstructs a tag tree from command-JSON textual form.
func (c *Codec) ParseJSON(s string) (*Compound, error) {
	return ParseJSON(s)
}
