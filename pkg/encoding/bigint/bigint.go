// Package bigint implements the little-endian two's complement
// representation of big.Int used in token amounts and event payloads.
package bigint

import (
	"math/big"
)

// MaxBytesLen is the maximum length of a serialized integer accepted by
// FromBytes.
const MaxBytesLen = 33 // 256-bit signed integer

var bigOne = big.NewInt(1)

// FromBytes converts data in little-endian two's complement format to an
// integer.
func FromBytes(data []byte) *big.Int {
	if len(data) == 0 {
		return big.NewInt(0)
	}

	be := make([]byte, len(data))
	for i := range data {
		be[len(data)-1-i] = data[i]
	}

	n := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(bigOne, uint(8*len(data))))
	}
	return n
}

// ToBytes converts an integer to a minimal little-endian two's complement
// byte representation. Zero is represented by an empty slice.
func ToBytes(n *big.Int) []byte {
	sign := n.Sign()
	if sign == 0 {
		return []byte{}
	}

	if sign > 0 {
		b := reverse(n.Bytes())
		if b[len(b)-1]&0x80 != 0 {
			b = append(b, 0)
		}
		return b
	}

	l := (n.BitLen() + 7) / 8
	mod := new(big.Int).Lsh(bigOne, uint(8*l))
	v := new(big.Int).Add(mod, n)

	b := make([]byte, l)
	vb := v.Bytes()
	copy(b[l-len(vb):], vb)
	b = reverse(b)
	if b[len(b)-1]&0x80 == 0 {
		b = append(b, 0xff)
	}
	return b
}

func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i := range b {
		r[len(b)-1-i] = b[i]
	}
	return r
}
