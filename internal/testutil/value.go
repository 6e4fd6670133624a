package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tsonio/tson"
	"github.com/tsonio/tson/types"
)

// MakeValue builds a value from JSON text.
func MakeValue(t testing.TB, jsonText string) types.Value {
	t.Helper()

	v, err := tson.FromJSON([]byte(jsonText))
	require.NoError(t, err)
	return v
}

// MakeDocument builds a document from JSON text.
func MakeDocument(t testing.TB, jsonText string) *types.DocumentValue {
	t.Helper()

	v := MakeValue(t, jsonText)
	d, ok := v.(*types.DocumentValue)
	require.True(t, ok, "expected a document, got %s", v.Type())
	return d
}

// MakeArray builds an array from JSON text.
func MakeArray(t testing.TB, jsonText string) types.ArrayValue {
	t.Helper()

	v := MakeValue(t, jsonText)
	a, ok := v.(types.ArrayValue)
	require.True(t, ok, "expected an array, got %s", v.Type())
	return a
}

// RequireValueEqual asserts deep equality between two values, numeric
// across the integer/bigint/double variants and within 1e-5 degrees
// per axis for coordinates.
func RequireValueEqual(t testing.TB, want, got types.Value) {
	t.Helper()

	require.True(t, valueEqual(want, got), "values differ:\nwant %s\ngot  %s\ndiff: %s",
		want, got, cmp.Diff(render(want), render(got)))
}

func valueEqual(a, b types.Value) bool {
	if a == nil || b == nil || a.Type() != b.Type() {
		return types.Equal(a, b)
	}

	switch a.Type() {
	case types.TypeLatLon:
		la, lb := a.(types.LatLonValue), b.(types.LatLonValue)
		return math.Abs(la.Lat-lb.Lat) < 1e-5 && math.Abs(la.Lon-lb.Lon) < 1e-5
	case types.TypeArray:
		x, y := types.AsArray(a), types.AsArray(b)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case types.TypeDocument:
		x, y := types.AsDocument(a), types.AsDocument(b)
		eq := x.Len() == y.Len()
		_ = x.Iterate(func(k string, v types.Value) error {
			other, ok := y.Get(k)
			eq = eq && ok && valueEqual(v, other)
			return nil
		})
		return eq
	}

	return types.Equal(a, b)
}

// render flattens a value into comparable plain data for cmp.Diff
// output.
func render(v types.Value) any {
	if types.IsNull(v) {
		return nil
	}

	switch v.Type() {
	case types.TypeArray:
		var out []any
		for _, e := range types.AsArray(v) {
			out = append(out, render(e))
		}
		return out
	case types.TypeDocument:
		out := make(map[string]any)
		_ = types.AsDocument(v).Iterate(func(k string, e types.Value) error {
			out[k] = render(e)
			return nil
		})
		return out
	default:
		return v.String()
	}
}
