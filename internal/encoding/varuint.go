package encoding

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// Varuints are base-128 little-endian: 7-bit groups, least significant
// first, high bit set on every byte but the last. Encoders emit the
// minimal form; decoders accept redundant leading groups.

// AppendUvarint appends the varuint encoding of n to dst.
func AppendUvarint(dst []byte, n uint64) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n)|0x80)
		n >>= 7
	}

	return append(dst, byte(n))
}

// AppendBigUvarint appends the varuint encoding of x, which must be
// nonnegative.
func AppendBigUvarint(dst []byte, x *big.Int) []byte {
	if x.Sign() < 0 {
		panic("cannot encode negative varuint")
	}
	if x.IsUint64() {
		return AppendUvarint(dst, x.Uint64())
	}

	n := new(big.Int).Set(x)
	group := new(big.Int)
	for {
		group.And(n, big7F)
		b := byte(group.Uint64())
		n.Rsh(n, 7)
		if n.Sign() == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

var big7F = big.NewInt(0x7F)

// Uvarint decodes a varuint from the start of b. It returns the value
// and the number of bytes read. Values beyond 64 bits return
// ErrOutOfRange; a missing final byte returns ErrTruncated.
func Uvarint(b []byte) (uint64, int, error) {
	u, x, n, err := uvarintAny(b)
	if err != nil {
		return 0, n, err
	}
	if x != nil {
		return 0, n, errors.Wrap(ErrOutOfRange, "varuint overflows 64 bits")
	}

	return u, n, nil
}

// uvarintAny decodes a varuint of any magnitude. The result is either
// the uint64 or, when it does not fit, a big.Int.
func uvarintAny(b []byte) (uint64, *big.Int, int, error) {
	var u uint64
	for i := 0; i < len(b); i++ {
		g := uint64(b[i] & 0x7F)
		shift := uint(7 * i)
		if g != 0 {
			if shift > 63 || g<<shift>>shift != g {
				x, n, err := uvarintBig(b)
				return 0, x, n, err
			}
			u |= g << shift
		}
		if b[i] < 0x80 {
			return u, nil, i + 1, nil
		}
	}

	return 0, nil, len(b), ErrTruncated
}

func uvarintBig(b []byte) (*big.Int, int, error) {
	x := new(big.Int)
	group := new(big.Int)
	for i := 0; i < len(b); i++ {
		if g := b[i] & 0x7F; g != 0 {
			group.SetUint64(uint64(g))
			group.Lsh(group, uint(7*i))
			x.Or(x, group)
		}
		if b[i] < 0x80 {
			return x, i + 1, nil
		}
	}

	return nil, len(b), ErrTruncated
}
