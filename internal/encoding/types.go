package encoding

// Opcodes of the TSON wire format. Each value starts with a one byte
// opcode. Every opcode is <= 0x7F so that the high bit of a document
// entry's first byte is free to mark the entry's key as a
// back-reference into the key table.
// Short opcodes are spent on small, common values: integers 0-63,
// strings of 1-24 bytes and containers of 1-4 elements carry their
// size in the opcode itself.
const (
	// Documents and arrays. The large forms are terminated by 0x00.
	DocumentValue byte = 0x01
	ArrayValue    byte = 0x02

	// Blob: varuint length followed by raw bytes.
	BlobValue byte = 0x03

	// Timestamps: varuint milliseconds relative to the epoch,
	// one opcode per sign.
	TimestampValue    byte = 0x04
	NegTimestampValue byte = 0x08

	TrueValue  byte = 0x05
	FalseValue byte = 0x06
	NullValue  byte = 0x07

	// Coordinate pair: varuint of the 50-bit interleaved geohash.
	LatLonValue byte = 0x09

	// 0x0A to 0x0D are reserved

	// Text: 0x0E is the 0x00-terminated form used for empty strings
	// and strings longer than 24 bytes. 0x0F is a back-reference into
	// the string table. 0x10 to 0x27 carry 1 to 24 bytes inline,
	// length = opcode - 0x0F.
	TextValue      byte = 0x0E
	TextRefValue   byte = 0x0F
	TextSmallValue byte = 0x10

	// Small containers: 1 to 4 entries/elements, no terminator.
	DocumentSmallValue byte = 0x28
	ArraySmallValue    byte = 0x2C

	// 0x30 to 0x36 are reserved

	// Duration: unit byte then varuint magnitude.
	DurationValue byte = 0x37

	// 0x38 and 0x39 are reserved

	// Integers beyond the small range, one opcode per sign, varuint
	// magnitude.
	UintValue byte = 0x3A
	NintValue byte = 0x3B

	// Floats, IEEE-754 little-endian.
	Float32Value byte = 0x3C
	Float64Value byte = 0x3D

	// 0x3E and 0x3F are reserved

	// Contiguous block of 64 integers. Opcodes 0x40 to 0x7F represent
	// values 0 to 63.
	IntSmallValue byte = 0x40
)

const (
	// keyRefFlag marks a document entry whose key is a back-reference.
	keyRefFlag byte = 0x80

	textSmallMax      = 24
	containerSmallMax = 4
	intSmallMax       = 63
)

func isReserved(op byte) bool {
	switch {
	case op >= 0x0A && op <= 0x0D:
		return true
	case op >= 0x30 && op <= 0x36:
		return true
	case op == 0x38 || op == 0x39:
		return true
	case op == 0x3E || op == 0x3F:
		return true
	}

	return false
}
