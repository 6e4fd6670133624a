package tson

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"

	"github.com/tsonio/tson/types"
)

// FromJSON builds a value tree from JSON text. Numbers become integers
// when they parse as int64 and doubles otherwise; objects become
// documents, with later duplicate keys overwriting earlier ones.
func FromJSON(data []byte) (types.Value, error) {
	v, t, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid json")
	}

	return parseJSONValue(t, v)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// if it's too big to fit in an int64, let's try parsing this as a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}

			return types.NewDoubleValue(f), nil
		}

		return types.NewIntegerValue(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case jsonparser.Array:
		var a types.ArrayValue
		var innerErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			if innerErr != nil {
				return
			}
			if err != nil {
				innerErr = err
				return
			}

			v, err := parseJSONValue(dataType, value)
			if err != nil {
				innerErr = err
				return
			}
			a = append(a, v)
		})
		if err != nil {
			return nil, err
		}
		if innerErr != nil {
			return nil, innerErr
		}

		return a, nil
	case jsonparser.Object:
		doc := types.NewDocumentValue()
		err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
			v, err := parseJSONValue(dataType, value)
			if err != nil {
				return err
			}

			doc.Set(string(key), v)
			return nil
		})
		if err != nil {
			return nil, err
		}

		return doc, nil
	}

	return nil, errors.Errorf("unsupported json value type %s", dataType)
}
