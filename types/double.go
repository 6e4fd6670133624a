package types

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

var errNonFiniteJSON = errors.New("NaN and Inf have no JSON representation")

var _ Value = NewDoubleValue(0)

type DoubleValue float64

// NewDoubleValue returns a TSON double value.
func NewDoubleValue(x float64) DoubleValue {
	return DoubleValue(x)
}

func (v DoubleValue) V() any {
	return float64(v)
}

func (v DoubleValue) Type() Type {
	return TypeDouble
}

func (v DoubleValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v DoubleValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNonFiniteJSON
	}

	// add a decimal point to distinguish whole doubles from integers
	abs := math.Abs(f)
	if f == math.Trunc(f) && abs < 1e21 {
		return strconv.AppendFloat(nil, f, 'f', 1, 64), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}
