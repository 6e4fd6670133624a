// Package tson implements TSON, a compact binary interchange format
// for JSON-shaped data with a richer type set: null, booleans,
// integers of arbitrary magnitude, floats, strings, blobs, arrays,
// key-sorted documents, millisecond timestamps, durations and
// geographic coordinates.
//
// A TSON message is exactly one encoded value: no header, no magic
// number, no version byte. Repeated strings and repeated document keys
// within one message are deduplicated through back-references.
package tson

import (
	"github.com/cockroachdb/errors"

	"github.com/tsonio/tson/internal/encoding"
	"github.com/tsonio/tson/types"
)

// Marshal returns the TSON encoding of v.
func Marshal(v types.Value) ([]byte, error) {
	return encoding.EncodeValue(nil, v)
}

// Append appends the TSON encoding of v to dst and returns the
// extended buffer.
func Append(dst []byte, v types.Value) ([]byte, error) {
	return encoding.EncodeValue(dst, v)
}

// Unmarshal decodes one TSON value from b. Trailing bytes after the
// value are an error.
func Unmarshal(b []byte) (types.Value, error) {
	v, n, err := encoding.DecodeValue(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, errors.Errorf("%d trailing bytes after value", len(b)-n)
	}

	return v, nil
}
