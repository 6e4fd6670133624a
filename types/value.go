package types

import (
	"math"
	"math/big"
	"time"
)

// Value is one node of a TSON value tree.
type Value interface {
	// V returns the backing Go value.
	V() any

	Type() Type

	String() string

	MarshalJSON() ([]byte, error)
}

func AsBool(v Value) bool {
	return v.V().(bool)
}

func AsInt64(v Value) int64 {
	iv, ok := v.(IntegerValue)
	if ok {
		return int64(iv)
	}

	if bv, ok := v.(BigintValue); ok {
		if !bv.Int().IsInt64() {
			panic("bigint value out of range for int64")
		}
		return bv.Int().Int64()
	}

	return v.V().(int64)
}

// AsBigInt widens any integer value to a big.Int. The returned value
// must not be mutated.
func AsBigInt(v Value) *big.Int {
	if bv, ok := v.(BigintValue); ok {
		return bv.Int()
	}

	return big.NewInt(AsInt64(v))
}

func AsFloat64(v Value) float64 {
	dv, ok := v.(DoubleValue)
	if ok {
		return float64(dv)
	}

	switch v.Type() {
	case TypeInteger:
		return float64(AsInt64(v))
	case TypeBigint:
		f, _ := new(big.Float).SetInt(AsBigInt(v)).Float64()
		return f
	}

	return v.V().(float64)
}

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if !ok {
		return v.V().(string)
	}

	return string(tv)
}

func AsByteSlice(v Value) []byte {
	bv, ok := v.(BlobValue)
	if !ok {
		return v.V().([]byte)
	}

	return []byte(bv)
}

func AsTime(v Value) time.Time {
	tv, ok := v.(TimestampValue)
	if !ok {
		return v.V().(time.Time)
	}

	return time.Time(tv)
}

func AsArray(v Value) ArrayValue {
	return v.(ArrayValue)
}

func AsDocument(v Value) *DocumentValue {
	return v.(*DocumentValue)
}

// IsNull reports whether v is nil or the null value.
func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}

// Equal reports deep equality between two values. Numeric values
// compare by magnitude across the integer, bigint and double variants,
// so a double that collapsed to an integer on the wire still compares
// equal to its source.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}

	at, bt := a.Type(), b.Type()
	if at.IsNumber() && bt.IsNumber() {
		return numericEqual(a, b)
	}

	if at != bt {
		return false
	}

	switch at {
	case TypeNull:
		return true
	case TypeBoolean:
		return AsBool(a) == AsBool(b)
	case TypeText:
		return AsString(a) == AsString(b)
	case TypeBlob:
		x, y := AsByteSlice(a), AsByteSlice(b)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case TypeTimestamp:
		return AsTime(a).Equal(AsTime(b))
	case TypeDuration:
		da, db := a.(DurationValue), b.(DurationValue)
		return da == db
	case TypeLatLon:
		la, lb := a.(LatLonValue), b.(LatLonValue)
		return la == lb
	case TypeArray:
		x, y := AsArray(a), AsArray(b)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case TypeDocument:
		x, y := AsDocument(a), AsDocument(b)
		if x.Len() != y.Len() {
			return false
		}
		eq := true
		_ = x.Iterate(func(k string, v Value) error {
			other, ok := y.Get(k)
			if !ok || !Equal(v, other) {
				eq = false
			}
			return nil
		})
		return eq
	}

	return false
}

func numericEqual(a, b Value) bool {
	if a.Type() == TypeDouble || b.Type() == TypeDouble {
		fa, fb := AsFloat64(a), AsFloat64(b)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return false
		}
		return fa == fb
	}

	return AsBigInt(a).Cmp(AsBigInt(b)) == 0
}
