package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

var _ Value = NewBlobValue(nil)

type BlobValue []byte

// NewBlobValue returns a TSON blob value.
func NewBlobValue(x []byte) BlobValue {
	return BlobValue(x)
}

func (v BlobValue) V() any {
	return []byte(v)
}

func (v BlobValue) Type() Type {
	return TypeBlob
}

func (v BlobValue) String() string {
	return fmt.Sprintf("%x", []byte(v))
}

func (v BlobValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(v))
}
