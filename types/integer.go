package types

import (
	"strconv"
)

var _ Value = NewIntegerValue(0)

type IntegerValue int64

// NewIntegerValue returns a TSON integer value.
func NewIntegerValue(x int64) IntegerValue {
	return IntegerValue(x)
}

func (v IntegerValue) V() any {
	return int64(v)
}

func (v IntegerValue) Type() Type {
	return TypeInteger
}

func (v IntegerValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v IntegerValue) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}
