package types

import (
	"math/big"
)

var _ Value = NewBigintValue(new(big.Int))

// BigintValue holds integers whose magnitude does not fit in an int64.
// The decoder only produces it for such values; smaller integers always
// decode as IntegerValue.
type BigintValue struct {
	x *big.Int
}

// NewBigintValue returns a TSON integer value backed by x. The caller
// must not mutate x afterwards.
func NewBigintValue(x *big.Int) BigintValue {
	return BigintValue{x: x}
}

func (v BigintValue) V() any {
	return v.x
}

func (v BigintValue) Type() Type {
	return TypeBigint
}

// Int returns the backing big.Int. It must not be mutated.
func (v BigintValue) Int() *big.Int {
	return v.x
}

func (v BigintValue) String() string {
	return v.x.String()
}

func (v BigintValue) MarshalJSON() ([]byte, error) {
	return []byte(v.x.String()), nil
}
