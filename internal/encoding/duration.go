package encoding

import (
	"github.com/tsonio/tson/types"
)

// durationNegFlag marks a negative amount in the unit byte; the low 7
// bits select the unit.
const durationNegFlag byte = 0x80

// Wire codes for duration units.
const (
	unitSecond      byte = 1
	unitMinute      byte = 2
	unitMillisecond byte = 3
	unitHour        byte = 4
	unitMicrosecond byte = 6
	unitNanosecond  byte = 9
)

func unitCode(u types.DurationUnit) byte {
	switch u {
	case types.UnitSecond:
		return unitSecond
	case types.UnitMinute:
		return unitMinute
	case types.UnitMillisecond:
		return unitMillisecond
	case types.UnitHour:
		return unitHour
	case types.UnitMicrosecond:
		return unitMicrosecond
	case types.UnitNanosecond:
		return unitNanosecond
	}

	panic("unsupported duration unit")
}

func unitFromCode(c byte) (types.DurationUnit, bool) {
	switch c {
	case unitSecond:
		return types.UnitSecond, true
	case unitMinute:
		return types.UnitMinute, true
	case unitMillisecond:
		return types.UnitMillisecond, true
	case unitHour:
		return types.UnitHour, true
	case unitMicrosecond:
		return types.UnitMicrosecond, true
	case unitNanosecond:
		return types.UnitNanosecond, true
	}

	return 0, false
}

// CanonicalDuration promotes (amount, unit) to the coarsest unit that
// still represents the amount exactly: nanoseconds through seconds by
// factors of 1000, then minutes and hours by factors of 60. Runs
// before encoding; the wire always carries the canonical form.
func CanonicalDuration(amount int64, unit types.DurationUnit) (int64, types.DurationUnit) {
	for {
		factor, next, ok := promoteUnit(unit)
		if !ok || amount%factor != 0 {
			return amount, unit
		}
		amount /= factor
		unit = next
	}
}

func promoteUnit(u types.DurationUnit) (factor int64, next types.DurationUnit, ok bool) {
	switch u {
	case types.UnitNanosecond:
		return 1000, types.UnitMicrosecond, true
	case types.UnitMicrosecond:
		return 1000, types.UnitMillisecond, true
	case types.UnitMillisecond:
		return 1000, types.UnitSecond, true
	case types.UnitSecond:
		return 60, types.UnitMinute, true
	case types.UnitMinute:
		return 60, types.UnitHour, true
	}

	return 0, u, false
}
