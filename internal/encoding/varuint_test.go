package encoding_test

import (
	"fmt"
	"math/big"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsonio/tson/internal/encoding"
)

func TestAppendUvarint(t *testing.T) {
	tests := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{63, []byte{0x3F}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{200, []byte{0xC8, 0x01}},
		{123456, []byte{0xC0, 0xC4, 0x07}},
		{1<<64 - 1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.n), func(t *testing.T) {
			got := encoding.AppendUvarint(nil, test.n)
			require.Equal(t, test.want, got)

			u, n, err := encoding.Uvarint(got)
			require.NoError(t, err)
			require.Equal(t, len(got), n)
			require.Equal(t, test.n, u)
		})
	}
}

func TestUvarintEncodedLength(t *testing.T) {
	for _, n := range []uint64{0, 1, 127, 128, 1 << 14, 1<<14 - 1, 1 << 21, 1 << 49, 1<<64 - 1} {
		got := encoding.AppendUvarint(nil, n)

		want := 1
		if n > 0 {
			want = (bits.Len64(n) + 6) / 7
		}
		require.Len(t, got, want, "n=%d", n)
	}
}

func TestUvarintNonMinimal(t *testing.T) {
	// decoders accept redundant leading groups
	u, n, err := encoding.Uvarint([]byte{0x80, 0x00})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, uint64(0), u)

	u, n, err = encoding.Uvarint([]byte{0xC8, 0x81, 0x80, 0x00})
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, uint64(200), u)
}

func TestUvarintTruncated(t *testing.T) {
	for _, b := range [][]byte{{}, {0x80}, {0xFF, 0xFF}} {
		_, _, err := encoding.Uvarint(b)
		require.ErrorIs(t, err, encoding.ErrTruncated)
	}
}

func TestAppendBigUvarint(t *testing.T) {
	x := new(big.Int).Lsh(big.NewInt(1), 100)

	got := encoding.AppendBigUvarint(nil, x)
	require.Len(t, got, (x.BitLen()+6)/7)

	// too large for the 64-bit reader
	_, _, err := encoding.Uvarint(got)
	require.ErrorIs(t, err, encoding.ErrOutOfRange)

	small := encoding.AppendBigUvarint(nil, big.NewInt(200))
	require.Equal(t, []byte{0xC8, 0x01}, small)
}
