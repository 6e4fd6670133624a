package encoding

import (
	"github.com/cockroachdb/errors"
)

// Decode errors. They are wrapped with the byte offset at which the
// problem was detected; use errors.Is to test for a kind.
var (
	// ErrTruncated is returned when the input ends before a required
	// byte or sequence was read. Short float payloads report it too.
	ErrTruncated = errors.New("unexpected end of input")

	// ErrInvalidOpcode is returned for opcode bytes the format does
	// not define.
	ErrInvalidOpcode = errors.New("invalid opcode")

	// ErrReservedOpcode is returned for opcode bytes in one of the
	// reserved ranges.
	ErrReservedOpcode = errors.New("reserved opcode")

	// ErrBadDurationUnit is returned when the low 7 bits of a duration
	// unit byte select no known unit.
	ErrBadDurationUnit = errors.New("invalid duration unit")

	// ErrBadBackref is returned when a string or key back-reference
	// index is outside the current table.
	ErrBadBackref = errors.New("back-reference out of range")

	// ErrInvalidUTF8 is returned when a string or key payload is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")

	// ErrOutOfRange is returned when a varuint is syntactically valid
	// but too large for the field it belongs to, such as a blob length
	// or a timestamp delta.
	ErrOutOfRange = errors.New("value out of range")
)

// Encode errors.
var (
	// ErrNonFinite is returned when asked to encode a NaN or infinite
	// double; the format has no representation for them.
	ErrNonFinite = errors.New("cannot encode non-finite double")
)
