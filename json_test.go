package tson_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsonio/tson"
	"github.com/tsonio/tson/types"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Value
	}{
		{"null", `null`, types.NewNullValue()},
		{"boolean", `true`, types.NewBooleanValue(true)},
		{"integer", `-2000`, types.NewIntegerValue(-2000)},
		{"double", `0.25`, types.NewDoubleValue(0.25)},
		{"huge number", `18446744073709551616`, types.NewDoubleValue(18446744073709551616)},
		{"string", `"hello"`, types.NewTextValue("hello")},
		{"escapes", `"a\nb"`, types.NewTextValue("a\nb")},
		{"array", `[1, "two", null]`, types.NewArrayValue(
			types.NewIntegerValue(1),
			types.NewTextValue("two"),
			types.NewNullValue(),
		)},
		{"object", `{"b": 2, "a": 1}`, types.NewDocumentValue(
			types.Field{K: "a", V: types.NewIntegerValue(1)},
			types.Field{K: "b", V: types.NewIntegerValue(2)},
		)},
		{"nested", `{"a": {"b": [1, 2]}}`, types.NewDocumentValue(
			types.Field{K: "a", V: types.NewDocumentValue(
				types.Field{K: "b", V: types.NewArrayValue(
					types.NewIntegerValue(1),
					types.NewIntegerValue(2),
				)},
			)},
		)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := tson.FromJSON([]byte(test.input))
			require.NoError(t, err)
			require.True(t, types.Equal(test.want, got), "got %s, want %s", got, test.want)
		})
	}
}

func TestFromJSONInvalid(t *testing.T) {
	for _, input := range []string{``, `{`, `[1,`, `"unterminated`} {
		_, err := tson.FromJSON([]byte(input))
		require.Error(t, err, "input %q", input)
	}
}

func TestJSONRoundTripThroughWire(t *testing.T) {
	input := []byte(`{"name": "walla walla", "population": 33339, "rainy": false, "scores": [1, 2.5, null]}`)

	v, err := tson.FromJSON(input)
	require.NoError(t, err)

	enc, err := tson.Marshal(v)
	require.NoError(t, err)

	got, err := tson.Unmarshal(enc)
	require.NoError(t, err)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, `{"name": "walla walla", "population": 33339, "rainy": false, "scores": [1, 2.5, null]}`, string(out))
}

func TestDocumentMarshalsInKeyOrder(t *testing.T) {
	v, err := tson.FromJSON([]byte(`{"c": 3, "a": 1, "b": 2}`))
	require.NoError(t, err)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"a": 1, "b": 2, "c": 3}`, string(out))
}
