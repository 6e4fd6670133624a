package types_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsonio/tson/types"
)

func TestNumericEqualAcrossVariants(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Value
		want bool
	}{
		{"integer vs double", types.NewIntegerValue(200), types.NewDoubleValue(200.0), true},
		{"integer vs double mismatch", types.NewIntegerValue(200), types.NewDoubleValue(200.5), false},
		{"integer vs bigint", types.NewIntegerValue(42), types.NewBigintValue(big.NewInt(42)), true},
		{"bigint vs bigint", types.NewBigintValue(big.NewInt(7)), types.NewBigintValue(big.NewInt(7)), true},
		{"negative zero double vs zero", types.NewDoubleValue(math.Copysign(0, -1)), types.NewIntegerValue(0), true},
		{"integer vs text", types.NewIntegerValue(1), types.NewTextValue("1"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, types.Equal(test.a, test.b))
			require.Equal(t, test.want, types.Equal(test.b, test.a))
		})
	}
}

func TestDocumentSetReplaces(t *testing.T) {
	d := types.NewDocumentValue()
	d.Set("a", types.NewIntegerValue(1))
	d.Set("b", types.NewIntegerValue(2))
	d.Set("a", types.NewIntegerValue(3))

	require.Equal(t, 2, d.Len())

	v, ok := d.Get("a")
	require.True(t, ok)
	require.Equal(t, int64(3), types.AsInt64(v))

	_, ok = d.Get("missing")
	require.False(t, ok)
}

func TestDocumentSortedFields(t *testing.T) {
	d := types.NewDocumentValue(
		types.Field{K: "b", V: types.NewIntegerValue(2)},
		types.Field{K: "a", V: types.NewIntegerValue(1)},
		types.Field{K: "ab", V: types.NewIntegerValue(3)},
	)

	fields := d.SortedFields()
	require.Equal(t, []string{"a", "ab", "b"}, []string{fields[0].K, fields[1].K, fields[2].K})
}

func TestDeepEqual(t *testing.T) {
	a := types.NewDocumentValue(
		types.Field{K: "tags", V: types.NewArrayValue(types.NewTextValue("x"), types.NewNullValue())},
		types.Field{K: "blob", V: types.NewBlobValue([]byte{1, 2})},
	)
	b := types.NewDocumentValue(
		types.Field{K: "blob", V: types.NewBlobValue([]byte{1, 2})},
		types.Field{K: "tags", V: types.NewArrayValue(types.NewTextValue("x"), types.NewNullValue())},
	)

	require.True(t, types.Equal(a, b))

	b.Set("blob", types.NewBlobValue([]byte{1, 3}))
	require.False(t, types.Equal(a, b))
}
