package types

import (
	"strconv"
)

var _ Value = NewLatLonValue(0, 0)

// LatLonValue is a geographic coordinate pair. The wire format stores
// it at a fixed precision of roughly 1e-5 degrees per axis.
type LatLonValue struct {
	Lat float64
	Lon float64
}

// NewLatLonValue returns a TSON coordinate value.
func NewLatLonValue(lat, lon float64) LatLonValue {
	return LatLonValue{Lat: lat, Lon: lon}
}

func (v LatLonValue) V() any {
	return v
}

func (v LatLonValue) Type() Type {
	return TypeLatLon
}

func (v LatLonValue) String() string {
	return "(" + strconv.FormatFloat(v.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(v.Lon, 'f', -1, 64) + ")"
}

func (v LatLonValue) MarshalJSON() ([]byte, error) {
	lat := strconv.FormatFloat(v.Lat, 'f', -1, 64)
	lon := strconv.FormatFloat(v.Lon, 'f', -1, 64)
	return []byte("[" + lat + ", " + lon + "]"), nil
}
