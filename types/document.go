package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

var _ Value = NewDocumentValue()

// Field is one key/value entry of a document.
type Field struct {
	K string
	V Value
}

// DocumentValue is a mapping from unique string keys to values. It
// preserves insertion order for iteration; the wire format orders
// entries by key bytes regardless.
type DocumentValue struct {
	fields []Field
}

// NewDocumentValue returns a document holding the given fields. Later
// duplicates overwrite earlier ones.
func NewDocumentValue(fields ...Field) *DocumentValue {
	d := DocumentValue{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		d.Set(f.K, f.V)
	}

	return &d
}

func (d *DocumentValue) V() any {
	return d.fields
}

func (d *DocumentValue) Type() Type {
	return TypeDocument
}

func (d *DocumentValue) Len() int {
	return len(d.fields)
}

// Set adds the field or replaces the value of an existing key.
func (d *DocumentValue) Set(k string, v Value) {
	for i := range d.fields {
		if d.fields[i].K == k {
			d.fields[i].V = v
			return
		}
	}

	d.fields = append(d.fields, Field{K: k, V: v})
}

// Get returns the value stored under k.
func (d *DocumentValue) Get(k string) (Value, bool) {
	for i := range d.fields {
		if d.fields[i].K == k {
			return d.fields[i].V, true
		}
	}

	return nil, false
}

// Iterate calls fn for each field in insertion order. It stops and
// returns the first error fn returns.
func (d *DocumentValue) Iterate(fn func(k string, v Value) error) error {
	for _, f := range d.fields {
		if err := fn(f.K, f.V); err != nil {
			return err
		}
	}

	return nil
}

// SortedFields returns a copy of the fields ordered by ascending key
// bytes, the order the wire format uses.
func (d *DocumentValue) SortedFields() []Field {
	fields := slices.Clone(d.fields)
	slices.SortFunc(fields, func(a, b Field) int {
		return bytes.Compare([]byte(a.K), []byte(b.K))
	})

	return fields
}

func (d *DocumentValue) String() string {
	b, _ := d.MarshalJSON()
	return string(b)
}

func (d *DocumentValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, f := range d.SortedFields() {
		if i > 0 {
			buf.WriteString(", ")
		}

		k, err := json.Marshal(f.K)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteString(": ")

		if f.V == nil {
			return nil, fmt.Errorf("field %q has no value", f.K)
		}

		v, err := f.V.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
