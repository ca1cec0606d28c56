package nbt

import "github.com/pkg/errors"

// sentinel is a lightweight string-based error, in the style of
// dsnet-compress's brotli.Error: cheap to construct, comparable, and usable
// as a wrapped-error target via errors.Is.
type sentinel string

func (e sentinel) Error() string { return string(e) }

var errNilUpdate = sentinel("nbt: update requires non-nil tags")

// FormatError reports a malformed binary NBT stream: a bad root tag, an
// unrecognized tag ID, a truncated payload, a length prefix that runs past
// the end of the buffer, or invalid UTF-8 in a string payload.
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return errors.Wrapf(sentinel(e.Reason), "nbt: format error at offset %d", e.Offset).Error()
}

func newFormatError(offset int, reason string) error {
	return &FormatError{Offset: offset, Reason: reason}
}

// TextFormatError reports a malformed command-JSON textual form: unbalanced
// brackets/braces, a tag inserted into a container of an incompatible kind,
// an unnamed tag inserted into a Compound, or a numeric token that could not
// be parsed and had no valid string fallback.
type TextFormatError struct {
	Reason string
}

func (e *TextFormatError) Error() string {
	return errors.Wrap(sentinel(e.Reason), "nbt: textual format error").Error()
}

func newTextFormatError(reason string) error {
	return &TextFormatError{Reason: reason}
}
