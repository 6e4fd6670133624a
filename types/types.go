package types

import (
	"fmt"
)

// Type represents a type supported by the TSON wire format.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeInteger
	TypeBigint
	TypeDouble
	TypeText
	TypeBlob
	TypeArray
	TypeDocument
	TypeTimestamp
	TypeDuration
	TypeLatLon
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeBigint:
		return "bigint"
	case TypeDouble:
		return "double"
	case TypeText:
		return "text"
	case TypeBlob:
		return "blob"
	case TypeArray:
		return "array"
	case TypeDocument:
		return "document"
	case TypeTimestamp:
		return "timestamp"
	case TypeDuration:
		return "duration"
	case TypeLatLon:
		return "latlon"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsNumber reports whether the type carries a numeric payload.
func (t Type) IsNumber() bool {
	return t == TypeInteger || t == TypeBigint || t == TypeDouble
}
