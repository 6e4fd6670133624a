package encoding_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsonio/tson/internal/encoding"
	"github.com/tsonio/tson/types"
)

func TestCanonicalDuration(t *testing.T) {
	tests := []struct {
		amount   int64
		unit     types.DurationUnit
		wantAmt  int64
		wantUnit types.DurationUnit
	}{
		{500, types.UnitMinute, 500, types.UnitMinute},
		{-60, types.UnitSecond, -1, types.UnitMinute},
		{8000, types.UnitMillisecond, 8, types.UnitSecond},
		{3600, types.UnitSecond, 1, types.UnitHour},
		{1500, types.UnitMillisecond, 1500, types.UnitMillisecond},
		{7_200_000_000_000, types.UnitNanosecond, 2, types.UnitHour},
		{1001, types.UnitNanosecond, 1001, types.UnitNanosecond},
		{-90, types.UnitMinute, -90, types.UnitMinute},
		{42, types.UnitHour, 42, types.UnitHour},
		{0, types.UnitNanosecond, 0, types.UnitHour},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d%s", test.amount, test.unit), func(t *testing.T) {
			amt, unit := encoding.CanonicalDuration(test.amount, test.unit)
			require.Equal(t, test.wantAmt, amt)
			require.Equal(t, test.wantUnit, unit)
		})
	}
}

func TestDurationWireForm(t *testing.T) {
	tests := []struct {
		input types.DurationValue
		want  []byte
	}{
		{types.NewDurationValue(500, types.UnitMinute), []byte{0x37, 0x02, 0xF4, 0x03}},
		{types.NewDurationValue(-60, types.UnitSecond), []byte{0x37, 0x82, 0x01}},
		{types.NewDurationValue(8000, types.UnitMillisecond), []byte{0x37, 0x01, 0x08}},
		{types.NewDurationValue(0, types.UnitNanosecond), []byte{0x37, 0x04, 0x00}},
	}

	for _, test := range tests {
		t.Run(test.input.String(), func(t *testing.T) {
			got, err := encoding.EncodeValue(nil, test.input)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestDecodeDurationKeepsWireUnit(t *testing.T) {
	// the wire form is already canonical; decode does not re-canonicalize
	v, n, err := encoding.DecodeValue([]byte{0x37, 0x82, 0x01})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, types.NewDurationValue(-1, types.UnitMinute), v)
}
