package types

import (
	"bytes"
)

var _ Value = NewArrayValue()

type ArrayValue []Value

// NewArrayValue returns a TSON array value holding the given elements.
func NewArrayValue(elems ...Value) ArrayValue {
	return ArrayValue(elems)
}

func (v ArrayValue) V() any {
	return []Value(v)
}

func (v ArrayValue) Type() Type {
	return TypeArray
}

func (v ArrayValue) Len() int {
	return len(v)
}

// Iterate calls fn for each element in order. It stops and returns the
// first error fn returns.
func (v ArrayValue) Iterate(fn func(i int, value Value) error) error {
	for i, e := range v {
		if err := fn(i, e); err != nil {
			return err
		}
	}

	return nil
}

func (v ArrayValue) String() string {
	b, _ := v.MarshalJSON()
	return string(b)
}

func (v ArrayValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i, e := range v {
		if i > 0 {
			buf.WriteString(", ")
		}

		b, err := e.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}
