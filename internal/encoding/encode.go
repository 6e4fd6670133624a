package encoding

import (
	"math"
	"math/big"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/tsonio/tson/types"
)

// encoder holds the per-message state: the string and key
// back-reference tables. Both assign indices in first-emission order
// and are shared by the whole value tree of one EncodeValue call.
type encoder struct {
	strings map[string]int
	keys    map[string]int
}

// EncodeValue appends the encoding of one value to dst and returns the
// extended buffer.
func EncodeValue(dst []byte, v types.Value) ([]byte, error) {
	e := encoder{
		strings: make(map[string]int),
		keys:    make(map[string]int),
	}

	return e.encodeValue(dst, v)
}

func (e *encoder) encodeValue(dst []byte, v types.Value) ([]byte, error) {
	if types.IsNull(v) {
		return append(dst, NullValue), nil
	}

	switch v.Type() {
	case types.TypeBoolean:
		if types.AsBool(v) {
			return append(dst, TrueValue), nil
		}
		return append(dst, FalseValue), nil
	case types.TypeInteger:
		return appendInt(dst, types.AsInt64(v)), nil
	case types.TypeBigint:
		return appendBigInt(dst, types.AsBigInt(v)), nil
	case types.TypeDouble:
		return e.encodeDouble(dst, types.AsFloat64(v))
	case types.TypeText:
		return e.encodeText(dst, types.AsString(v)), nil
	case types.TypeBlob:
		b := types.AsByteSlice(v)
		dst = append(dst, BlobValue)
		dst = AppendUvarint(dst, uint64(len(b)))
		return append(dst, b...), nil
	case types.TypeArray:
		return e.encodeArray(dst, types.AsArray(v))
	case types.TypeDocument:
		return e.encodeDocument(dst, types.AsDocument(v))
	case types.TypeTimestamp:
		return e.encodeTimestamp(dst, types.AsTime(v)), nil
	case types.TypeDuration:
		return e.encodeDuration(dst, v.(types.DurationValue)), nil
	case types.TypeLatLon:
		return e.encodeLatLon(dst, v.(types.LatLonValue))
	}

	return nil, errors.Errorf("unsupported value type %s", v.Type())
}

func appendInt(dst []byte, n int64) []byte {
	if n >= 0 && n <= intSmallMax {
		return append(dst, IntSmallValue+byte(n))
	}

	if n < 0 {
		dst = append(dst, NintValue)
		return AppendUvarint(dst, negMagnitude(n))
	}

	dst = append(dst, UintValue)
	return AppendUvarint(dst, uint64(n))
}

// negMagnitude returns |n| for negative n without overflowing on
// MinInt64.
func negMagnitude(n int64) uint64 {
	return uint64(-(n + 1)) + 1
}

func appendBigInt(dst []byte, x *big.Int) []byte {
	if x.IsInt64() {
		return appendInt(dst, x.Int64())
	}

	if x.Sign() < 0 {
		dst = append(dst, NintValue)
		return AppendBigUvarint(dst, new(big.Int).Neg(x))
	}

	dst = append(dst, UintValue)
	return AppendBigUvarint(dst, x)
}

func (e *encoder) encodeDouble(dst []byte, x float64) ([]byte, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, ErrNonFinite
	}

	// whole doubles collapse to the integer encoding
	if math.RoundToEven(x) == x {
		i, _ := big.NewFloat(x).Int(nil)
		return appendBigInt(dst, i), nil
	}

	if f32 := float32(x); float64(f32) == x {
		bits := math.Float32bits(f32)
		return append(dst, Float32Value,
			byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24)), nil
	}

	bits := math.Float64bits(x)
	return append(dst, Float64Value,
		byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24),
		byte(bits>>32), byte(bits>>40), byte(bits>>48), byte(bits>>56)), nil
}

func (e *encoder) encodeText(dst []byte, s string) []byte {
	if i, ok := e.strings[s]; ok {
		dst = append(dst, TextRefValue)
		return AppendUvarint(dst, uint64(i))
	}
	e.strings[s] = len(e.strings)

	if n := len(s); n >= 1 && n <= textSmallMax {
		dst = append(dst, TextRefValue+byte(n))
		return append(dst, s...)
	}

	dst = append(dst, TextValue)
	dst = append(dst, s...)
	return append(dst, 0x00)
}

func (e *encoder) encodeArray(dst []byte, a types.ArrayValue) ([]byte, error) {
	var err error

	if n := a.Len(); n >= 1 && n <= containerSmallMax {
		dst = append(dst, ArraySmallValue+byte(n)-1)
		for _, elem := range a {
			dst, err = e.encodeValue(dst, elem)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}

	dst = append(dst, ArrayValue)
	for _, elem := range a {
		dst, err = e.encodeValue(dst, elem)
		if err != nil {
			return nil, err
		}
	}

	return append(dst, 0x00), nil
}

func (e *encoder) encodeDocument(dst []byte, d *types.DocumentValue) ([]byte, error) {
	fields := d.SortedFields()

	var err error
	if n := len(fields); n >= 1 && n <= containerSmallMax {
		dst = append(dst, DocumentSmallValue+byte(n)-1)
		for _, f := range fields {
			dst, err = e.encodeEntry(dst, f.K, f.V)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}

	dst = append(dst, DocumentValue)
	for _, f := range fields {
		dst, err = e.encodeEntry(dst, f.K, f.V)
		if err != nil {
			return nil, err
		}
	}

	return append(dst, 0x00), nil
}

// encodeEntry writes one document entry: the value first, then the
// key. A key already in the key table is written as a back-reference,
// signalled by setting the high bit of the value's first opcode byte.
// Every opcode is <= 0x7F, so that bit is always free.
func (e *encoder) encodeEntry(dst []byte, k string, v types.Value) ([]byte, error) {
	off := len(dst)
	dst, err := e.encodeValue(dst, v)
	if err != nil {
		return nil, err
	}

	if i, ok := e.keys[k]; ok {
		dst[off] |= keyRefFlag
		return AppendUvarint(dst, uint64(i)), nil
	}

	e.keys[k] = len(e.keys)
	dst = append(dst, k...)
	return append(dst, 0x00), nil
}

func (e *encoder) encodeTimestamp(dst []byte, t time.Time) []byte {
	delta := timestampDelta(t)
	if delta >= 0 {
		dst = append(dst, TimestampValue)
		return AppendUvarint(dst, uint64(delta))
	}

	dst = append(dst, NegTimestampValue)
	return AppendUvarint(dst, negMagnitude(delta))
}

func (e *encoder) encodeDuration(dst []byte, v types.DurationValue) []byte {
	amount, unit := CanonicalDuration(v.Amount, v.Unit)

	unitByte := unitCode(unit)
	magnitude := uint64(amount)
	if amount < 0 {
		unitByte |= durationNegFlag
		magnitude = negMagnitude(amount)
	}

	dst = append(dst, DurationValue, unitByte)
	return AppendUvarint(dst, magnitude)
}

func (e *encoder) encodeLatLon(dst []byte, v types.LatLonValue) ([]byte, error) {
	if v.Lat < -90 || v.Lat > 90 || v.Lon < -180 || v.Lon > 180 {
		return nil, errors.Wrapf(ErrOutOfRange, "coordinate (%v, %v)", v.Lat, v.Lon)
	}

	dst = append(dst, LatLonValue)
	return AppendUvarint(dst, EncodeLatLon(v.Lat, v.Lon)), nil
}
