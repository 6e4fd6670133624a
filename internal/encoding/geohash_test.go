package encoding_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsonio/tson/internal/encoding"
)

func TestLatLonRoundTrip(t *testing.T) {
	tests := []struct {
		lat, lon float64
	}{
		{0, 0},
		{46.083529, -118.283026},
		{-33.856784, 151.215297},
		{89.999999, 179.999999},
		{-89.999999, -179.999999},
		{90, 180},
		{-90, -180},
		{48.858222, 2.2945},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("(%v,%v)", test.lat, test.lon), func(t *testing.T) {
			h := encoding.EncodeLatLon(test.lat, test.lon)
			require.Less(t, h, uint64(1)<<50)

			lat, lon := encoding.DecodeLatLon(h)
			require.Less(t, math.Abs(lat-test.lat), 1e-5)
			require.Less(t, math.Abs(lon-test.lon), 1e-5)
		})
	}
}

func TestLatLonInterleaving(t *testing.T) {
	// the north-east quadrant sets both top decision bits
	h := encoding.EncodeLatLon(45, 90)
	require.NotZero(t, h&(1<<48), "latitude occupies the even positions")
	require.NotZero(t, h&(1<<49), "longitude occupies the odd positions")

	// the south-west quadrant sets neither
	h = encoding.EncodeLatLon(-45, -90)
	require.Zero(t, h&(1<<48))
	require.Zero(t, h&(1<<49))
}
