package types

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
)

var _ Value = NewTimestampValue(time.Time{})

type TimestampValue time.Time

// NewTimestampValue returns a TSON timestamp value. The wire format
// carries millisecond precision; sub-millisecond components survive in
// memory but not across an encode.
func NewTimestampValue(x time.Time) TimestampValue {
	return TimestampValue(x.UTC())
}

// ParseTimestamp converts timestamp text to a timestamp value. It
// accepts the formats carbon understands, RFC 3339 included.
func ParseTimestamp(s string) (TimestampValue, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return TimestampValue{}, errors.Wrapf(c.Error, "cannot parse %q as timestamp", s)
	}

	return NewTimestampValue(c.ToStdTime()), nil
}

func (v TimestampValue) V() any {
	return time.Time(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v TimestampValue) String() string {
	return time.Time(v).Format("2006-01-02T15:04:05.000Z07:00")
}

func (v TimestampValue) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}
