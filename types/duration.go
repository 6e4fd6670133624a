package types

import (
	"fmt"
	"strconv"
	"time"
)

// DurationUnit is the unit a duration amount is expressed in.
type DurationUnit uint8

const (
	UnitHour DurationUnit = iota
	UnitMinute
	UnitSecond
	UnitMillisecond
	UnitMicrosecond
	UnitNanosecond
)

func (u DurationUnit) String() string {
	switch u {
	case UnitHour:
		return "h"
	case UnitMinute:
		return "m"
	case UnitSecond:
		return "s"
	case UnitMillisecond:
		return "ms"
	case UnitMicrosecond:
		return "us"
	case UnitNanosecond:
		return "ns"
	}

	panic(fmt.Sprintf("unsupported duration unit %#v", u))
}

var _ Value = NewDurationValue(0, UnitSecond)

// DurationValue is a signed amount of time in an explicit unit.
type DurationValue struct {
	Amount int64
	Unit   DurationUnit
}

// NewDurationValue returns a TSON duration value.
func NewDurationValue(amount int64, unit DurationUnit) DurationValue {
	return DurationValue{Amount: amount, Unit: unit}
}

// NewDurationFromStd converts a time.Duration, keeping nanosecond
// granularity. The encoder promotes it to the coarsest exact unit.
func NewDurationFromStd(d time.Duration) DurationValue {
	return DurationValue{Amount: d.Nanoseconds(), Unit: UnitNanosecond}
}

func (v DurationValue) V() any {
	return v
}

func (v DurationValue) Type() Type {
	return TypeDuration
}

func (v DurationValue) String() string {
	return strconv.FormatInt(v.Amount, 10) + v.Unit.String()
}

func (v DurationValue) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}
