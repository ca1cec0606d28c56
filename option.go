package nbt

import "github.com/go-kit/kit/log"

// Option configures a Codec (grounded on kolide-launcher/control's
// functional-options pattern for its Client type).
type Option func(*Codec)

// WithLogger attaches a structured logger the Codec uses for debug-level
// traces (a gzip-framed input gunzipped on load, gzip on save, a duplicate
// compound key overwritten during decode).
// The default is log.NewNopLogger.
func WithLogger(logger log.Logger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// WithEndian sets the wire endian profile the Codec decodes and encodes
// with, bypassing the process-wide default entirely.
func WithEndian(e Endian) Option {
	return func(c *Codec) {
		c.endian = e
	}
}

// WithAllowDuplicateKeys controls whether decoded Compounds retain
// duplicate-named children instead of last-wins deduplication.
func WithAllowDuplicateKeys(allow bool) Option {
	return func(c *Codec) {
		c.allowDuplicateKeys = allow
	}
}
