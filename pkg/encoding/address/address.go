package address

import (
	"bytes"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/vela-chain/vela-go/pkg/crypto/hash"
	"github.com/vela-chain/vela-go/pkg/util"
)

// Prefix is the byte used to prepend to addresses when encoding them, it
// pins the network flavor of the textual form.
const Prefix = byte(0x45)

// Uint160ToString returns the textual (base58check) form of the given
// Uint160.
func Uint160ToString(u util.Uint160) string {
	// Don't forget to prepend the address version.
	b := append([]byte{Prefix}, u.BytesBE()...)
	b = append(b, hash.Checksum(b)...)
	return base58.Encode(b)
}

// StringToUint160 attempts to decode the given address string
// into a Uint160.
func StringToUint160(s string) (u util.Uint160, err error) {
	b, err := base58.Decode(s)
	if err != nil {
		return u, err
	}
	if len(b) != util.Uint160Size+5 {
		return u, errors.Errorf("invalid address length %d", len(b))
	}
	if !bytes.Equal(hash.Checksum(b[:util.Uint160Size+1]), b[util.Uint160Size+1:]) {
		return u, errors.New("invalid address checksum")
	}
	if b[0] != Prefix {
		return u, errors.Errorf("wrong address prefix %x", b[0])
	}
	return util.Uint160DecodeBytesBE(b[1 : util.Uint160Size+1])
}
