package encoding

import (
	"bytes"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/tsonio/tson/types"
)

// decoder is a cursor over one encoded message. The string and key
// tables are populated in the order back-referenceable items are first
// read; index n refers to the (n+1)-th such item.
type decoder struct {
	b   []byte
	pos int

	strings []string
	keys    []string
}

// DecodeValue decodes one value from the start of b. It returns the
// value and the number of bytes consumed.
func DecodeValue(b []byte) (types.Value, int, error) {
	d := decoder{b: b}

	v, err := d.decodeValue()
	if err != nil {
		return nil, d.pos, err
	}

	return v, d.pos, nil
}

func (d *decoder) decodeValue() (types.Value, error) {
	op, err := d.readByte()
	if err != nil {
		return nil, err
	}
	if op&keyRefFlag != 0 {
		return nil, errors.Wrapf(ErrInvalidOpcode, "0x%02X at offset %d", op, d.pos-1)
	}

	return d.decodeOp(op)
}

func (d *decoder) decodeOp(op byte) (types.Value, error) {
	switch op {
	case NullValue:
		return types.NewNullValue(), nil
	case TrueValue:
		return types.NewBooleanValue(true), nil
	case FalseValue:
		return types.NewBooleanValue(false), nil
	case UintValue:
		return d.decodeInt(false)
	case NintValue:
		return d.decodeInt(true)
	case Float32Value:
		return d.decodeFloat32()
	case Float64Value:
		return d.decodeFloat64()
	case BlobValue:
		return d.decodeBlob()
	case TextValue:
		s, err := d.readTerminatedString()
		if err != nil {
			return nil, err
		}
		d.strings = append(d.strings, s)
		return types.NewTextValue(s), nil
	case TextRefValue:
		off := d.pos
		i, err := d.readUvarint()
		if err != nil {
			return nil, err
		}
		if i >= uint64(len(d.strings)) {
			return nil, errors.Wrapf(ErrBadBackref, "string index %d at offset %d, table size %d", i, off, len(d.strings))
		}
		return types.NewTextValue(d.strings[i]), nil
	case TimestampValue:
		return d.decodeTimestamp(false)
	case NegTimestampValue:
		return d.decodeTimestamp(true)
	case DurationValue:
		return d.decodeDuration()
	case LatLonValue:
		return d.decodeLatLon()
	case ArrayValue:
		return d.decodeArray(-1)
	case DocumentValue:
		return d.decodeDocument(-1)
	}

	switch {
	case op >= IntSmallValue:
		// IntSmallValue..0x7F, the caller has rejected anything higher
		return types.NewIntegerValue(int64(op - IntSmallValue)), nil
	case op >= TextSmallValue && op < TextSmallValue+textSmallMax:
		return d.decodeSmallText(int(op - TextRefValue))
	case op >= DocumentSmallValue && op < DocumentSmallValue+containerSmallMax:
		return d.decodeDocument(int(op-DocumentSmallValue) + 1)
	case op >= ArraySmallValue && op < ArraySmallValue+containerSmallMax:
		return d.decodeArray(int(op-ArraySmallValue) + 1)
	case isReserved(op):
		return nil, errors.Wrapf(ErrReservedOpcode, "0x%02X at offset %d", op, d.pos-1)
	}

	return nil, errors.Wrapf(ErrInvalidOpcode, "0x%02X at offset %d", op, d.pos-1)
}

func (d *decoder) decodeInt(neg bool) (types.Value, error) {
	u, x, err := d.readUvarintAny()
	if err != nil {
		return nil, err
	}

	if x == nil {
		if !neg {
			if u <= math.MaxInt64 {
				return types.NewIntegerValue(int64(u)), nil
			}
			return types.NewBigintValue(new(big.Int).SetUint64(u)), nil
		}
		if u <= 1<<63 {
			if u == 0 {
				return types.NewIntegerValue(0), nil
			}
			return types.NewIntegerValue(-int64(u-1) - 1), nil
		}
		x = new(big.Int).SetUint64(u)
	}

	if neg {
		x.Neg(x)
	}

	return types.NewBigintValue(x), nil
}

func (d *decoder) decodeFloat32() (types.Value, error) {
	b, err := d.readN(4)
	if err != nil {
		return nil, err
	}

	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return types.NewDoubleValue(float64(math.Float32frombits(bits))), nil
}

func (d *decoder) decodeFloat64() (types.Value, error) {
	b, err := d.readN(8)
	if err != nil {
		return nil, err
	}

	bits := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
	return types.NewDoubleValue(math.Float64frombits(bits)), nil
}

func (d *decoder) decodeBlob() (types.Value, error) {
	n, err := d.readUvarint()
	if err != nil {
		return nil, err
	}
	if n > uint64(len(d.b)-d.pos) {
		return nil, errors.Wrapf(ErrTruncated, "blob of %d bytes at offset %d", n, d.pos)
	}

	b, err := d.readN(int(n))
	if err != nil {
		return nil, err
	}

	blob := make([]byte, len(b))
	copy(blob, b)
	return types.NewBlobValue(blob), nil
}

func (d *decoder) decodeSmallText(n int) (types.Value, error) {
	b, err := d.readN(n)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, errors.Wrapf(ErrInvalidUTF8, "string at offset %d", d.pos-n)
	}

	s := string(b)
	d.strings = append(d.strings, s)
	return types.NewTextValue(s), nil
}

func (d *decoder) decodeTimestamp(neg bool) (types.Value, error) {
	off := d.pos
	u, err := d.readUvarint()
	if err != nil {
		return nil, err
	}

	if neg {
		if u > 1<<63 {
			return nil, errors.Wrapf(ErrOutOfRange, "timestamp %d ms before epoch at offset %d", u, off)
		}
		var delta int64
		if u > 0 {
			delta = -int64(u-1) - 1
		}
		return types.NewTimestampValue(timestampFromDelta(delta)), nil
	}

	if u > maxTimestampDelta {
		return nil, errors.Wrapf(ErrOutOfRange, "timestamp %d ms after epoch at offset %d", u, off)
	}

	return types.NewTimestampValue(timestampFromDelta(int64(u))), nil
}

func (d *decoder) decodeDuration() (types.Value, error) {
	unitByte, err := d.readByte()
	if err != nil {
		return nil, err
	}

	unit, ok := unitFromCode(unitByte &^ durationNegFlag)
	if !ok {
		return nil, errors.Wrapf(ErrBadDurationUnit, "unit code %d at offset %d", unitByte&^durationNegFlag, d.pos-1)
	}

	off := d.pos
	m, err := d.readUvarint()
	if err != nil {
		return nil, err
	}

	if unitByte&durationNegFlag != 0 {
		if m > 1<<63 {
			return nil, errors.Wrapf(ErrOutOfRange, "duration magnitude %d at offset %d", m, off)
		}
		var amount int64
		if m > 0 {
			amount = -int64(m-1) - 1
		}
		return types.NewDurationValue(amount, unit), nil
	}

	if m > math.MaxInt64 {
		return nil, errors.Wrapf(ErrOutOfRange, "duration magnitude %d at offset %d", m, off)
	}

	return types.NewDurationValue(int64(m), unit), nil
}

func (d *decoder) decodeLatLon() (types.Value, error) {
	h, err := d.readUvarint()
	if err != nil {
		return nil, err
	}

	lat, lon := DecodeLatLon(h)
	return types.NewLatLonValue(lat, lon), nil
}

func (d *decoder) decodeArray(count int) (types.Value, error) {
	var a types.ArrayValue

	if count >= 0 {
		for i := 0; i < count; i++ {
			v, err := d.decodeValue()
			if err != nil {
				return nil, err
			}
			a = append(a, v)
		}
		return a, nil
	}

	for {
		c, err := d.peekByte()
		if err != nil {
			return nil, err
		}
		if c == 0x00 {
			d.pos++
			return a, nil
		}

		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
}

func (d *decoder) decodeDocument(count int) (types.Value, error) {
	doc := types.NewDocumentValue()

	if count >= 0 {
		for i := 0; i < count; i++ {
			if err := d.decodeEntry(doc); err != nil {
				return nil, err
			}
		}
		return doc, nil
	}

	for {
		c, err := d.peekByte()
		if err != nil {
			return nil, err
		}
		if c == 0x00 {
			d.pos++
			return doc, nil
		}

		if err := d.decodeEntry(doc); err != nil {
			return nil, err
		}
	}
}

// decodeEntry reads one document entry: the value, whose first opcode
// byte may carry the stolen key back-reference bit, then the key.
func (d *decoder) decodeEntry(doc *types.DocumentValue) error {
	op, err := d.readByte()
	if err != nil {
		return err
	}

	backref := op&keyRefFlag != 0
	v, err := d.decodeOp(op &^ keyRefFlag)
	if err != nil {
		return err
	}

	var k string
	if backref {
		off := d.pos
		i, err := d.readUvarint()
		if err != nil {
			return err
		}
		if i >= uint64(len(d.keys)) {
			return errors.Wrapf(ErrBadBackref, "key index %d at offset %d, table size %d", i, off, len(d.keys))
		}
		k = d.keys[i]
	} else {
		k, err = d.readTerminatedString()
		if err != nil {
			return err
		}
		d.keys = append(d.keys, k)
	}

	doc.Set(k, v)
	return nil
}

func (d *decoder) readByte() (byte, error) {
	if d.pos >= len(d.b) {
		return 0, errors.Wrapf(ErrTruncated, "at offset %d", d.pos)
	}

	c := d.b[d.pos]
	d.pos++
	return c, nil
}

func (d *decoder) peekByte() (byte, error) {
	if d.pos >= len(d.b) {
		return 0, errors.Wrapf(ErrTruncated, "at offset %d", d.pos)
	}

	return d.b[d.pos], nil
}

func (d *decoder) readN(n int) ([]byte, error) {
	if len(d.b)-d.pos < n {
		return nil, errors.Wrapf(ErrTruncated, "need %d bytes at offset %d", n, d.pos)
	}

	b := d.b[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// readTerminatedString reads bytes up to and consuming the first 0x00.
func (d *decoder) readTerminatedString() (string, error) {
	i := bytes.IndexByte(d.b[d.pos:], 0x00)
	if i < 0 {
		return "", errors.Wrapf(ErrTruncated, "unterminated string at offset %d", d.pos)
	}

	b := d.b[d.pos : d.pos+i]
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidUTF8, "string at offset %d", d.pos)
	}

	d.pos += i + 1
	return string(b), nil
}

func (d *decoder) readUvarint() (uint64, error) {
	u, n, err := Uvarint(d.b[d.pos:])
	if err != nil {
		return 0, errors.Wrapf(err, "varuint at offset %d", d.pos)
	}

	d.pos += n
	return u, nil
}

func (d *decoder) readUvarintAny() (uint64, *big.Int, error) {
	u, x, n, err := uvarintAny(d.b[d.pos:])
	if err != nil {
		return 0, nil, errors.Wrapf(err, "varuint at offset %d", d.pos)
	}

	d.pos += n
	return u, x, nil
}
