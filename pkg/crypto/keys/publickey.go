package keys

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
	"github.com/vela-chain/vela-go/pkg/crypto/hash"
	"github.com/vela-chain/vela-go/pkg/encoding/address"
	"github.com/vela-chain/vela-go/pkg/io"
	"github.com/vela-chain/vela-go/pkg/util"
)

// coordLen is the number of bytes in a serialized X coordinate, both
// supported curves are 256-bit ones.
const coordLen = 32

// PublicKeys is a list of public keys.
type PublicKeys []*PublicKey

func (keys PublicKeys) Len() int      { return len(keys) }
func (keys PublicKeys) Swap(i, j int) { keys[i], keys[j] = keys[j], keys[i] }
func (keys PublicKeys) Less(i, j int) bool {
	return keys[i].Cmp(keys[j]) == -1
}

// Contains checks whether the passed param is contained in PublicKeys.
func (keys PublicKeys) Contains(pKey *PublicKey) bool {
	for _, key := range keys {
		if key.Equal(pKey) {
			return true
		}
	}
	return false
}

// PublicKey represents a public key and provides a high level API around
// the X/Y point.
type PublicKey struct {
	X *big.Int
	Y *big.Int

	// Curve the key belongs to, P-256 unless constructed otherwise.
	Curve elliptic.Curve
}

// Equal returns true in case public keys are equal.
func (p *PublicKey) Equal(key *PublicKey) bool {
	return p.X.Cmp(key.X) == 0 && p.Y.Cmp(key.Y) == 0
}

// Cmp compares two keys.
func (p *PublicKey) Cmp(key *PublicKey) int {
	xCmp := p.X.Cmp(key.X)
	if xCmp != 0 {
		return xCmp
	}
	return p.Y.Cmp(key.Y)
}

// NewPublicKeyFromString returns a P-256 public key created from the
// given hex string.
func NewPublicKeyFromString(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return NewPublicKeyFromBytes(b, elliptic.P256())
}

// NewPublicKeyFromBytes returns a public key created from the given bytes
// on the given curve.
func NewPublicKeyFromBytes(b []byte, curve elliptic.Curve) (*PublicKey, error) {
	pubKey := &PublicKey{Curve: curve}
	r := io.NewBinReaderFromBuf(b)
	pubKey.DecodeBinary(r)
	if r.Err != nil {
		return nil, r.Err
	}
	// The rest of the buffer should be empty.
	if r.ReadB(); r.Err == nil {
		return nil, errors.New("extra data after public key")
	}
	return pubKey, nil
}

// Bytes returns the byte array representation of the public key in
// compressed form.
func (p *PublicKey) Bytes() []byte {
	if p.IsInfinity() {
		return []byte{0x00}
	}

	var (
		x       = p.X.Bytes()
		paddedX = append(bytes.Repeat([]byte{0x00}, coordLen-len(x)), x...)
		prefix  = byte(0x03)
	)

	if p.Y.Bit(0) == 0 {
		prefix = byte(0x02)
	}

	return append([]byte{prefix}, paddedX...)
}

// decodeCompressedY performs decompression of Y coordinate for the given X
// and Y's least significant bit.
func decodeCompressedY(x *big.Int, ylsb uint, curve elliptic.Curve) (*big.Int, error) {
	var three = big.NewInt(3)
	var a *big.Int
	switch curve.(type) {
	case *btcec.KoblitzCurve:
		a = big.NewInt(0)
	default:
		a = three
	}
	cp := curve.Params()
	xCubed := new(big.Int).Exp(x, three, cp.P)
	aX := new(big.Int).Mul(x, a)
	aX.Mod(aX, cp.P)
	ySquared := new(big.Int).Sub(xCubed, aX)
	ySquared.Add(ySquared, cp.B)
	ySquared.Mod(ySquared, cp.P)
	y := new(big.Int).ModSqrt(ySquared, cp.P)
	if y == nil {
		return nil, errors.New("error computing Y for compressed point")
	}
	if y.Bit(0) != ylsb {
		y.Neg(y)
		y.Mod(y, cp.P)
	}
	return y, nil
}

// DecodeBinary decodes a PublicKey from the given BinReader using the
// curve the key was initialized with (P-256 for a zero-value key).
func (p *PublicKey) DecodeBinary(r *io.BinReader) {
	var prefix = r.ReadB()
	if r.Err != nil {
		return
	}
	if p.Curve == nil {
		p.Curve = elliptic.P256()
	}

	var x, y *big.Int
	switch prefix {
	// Infinity
	case 0x00:
		p.X = nil
		p.Y = nil
		return
	// Compressed public keys
	case 0x02, 0x03:
		b := make([]byte, coordLen)
		r.ReadBytes(b)
		if r.Err != nil {
			return
		}
		x = new(big.Int).SetBytes(b)
		ylsb := uint(prefix & 0x1)
		y, r.Err = decodeCompressedY(x, ylsb, p.Curve)
		if r.Err != nil {
			return
		}
	// Uncompressed public keys
	case 0x04:
		xb := make([]byte, coordLen)
		yb := make([]byte, coordLen)
		r.ReadBytes(xb)
		r.ReadBytes(yb)
		if r.Err != nil {
			return
		}
		x = new(big.Int).SetBytes(xb)
		y = new(big.Int).SetBytes(yb)
		if !p.Curve.IsOnCurve(x, y) {
			r.Err = errors.New("encoded point is not on the curve")
			return
		}
	default:
		r.Err = errors.Errorf("invalid prefix %d", prefix)
		return
	}
	cp := p.Curve.Params()
	if x.Cmp(cp.P) != -1 || y.Cmp(cp.P) != -1 {
		r.Err = errors.New("encoded point is not correct (X or Y is bigger than P)")
		return
	}
	p.X, p.Y = x, y
}

// EncodeBinary encodes a PublicKey to the given BinWriter.
func (p *PublicKey) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(p.Bytes())
}

// GetScriptHash returns a Hash160 of the compressed key bytes, used as the
// key's on-chain address.
func (p *PublicKey) GetScriptHash() util.Uint160 {
	return hash.Hash160(p.Bytes())
}

// Address returns a base58-encoded string representation of the public key,
// the way addresses are rendered for users.
func (p *PublicKey) Address() string {
	return address.Uint160ToString(p.GetScriptHash())
}

// Verify returns true if the signature is valid and corresponds to the hash
// and public key.
func (p *PublicKey) Verify(signature []byte, hash []byte) bool {
	if p.X == nil || p.Y == nil || len(signature) != coordLen*2 {
		return false
	}
	publicKey := &ecdsa.PublicKey{
		Curve: p.Curve,
		X:     p.X,
		Y:     p.Y,
	}
	rBytes := new(big.Int).SetBytes(signature[0:coordLen])
	sBytes := new(big.Int).SetBytes(signature[coordLen : coordLen*2])
	return ecdsa.Verify(publicKey, hash, rBytes, sBytes)
}

// IsInfinity checks if the key is infinite (null, basically).
func (p *PublicKey) IsInfinity() bool {
	return p.X == nil && p.Y == nil
}

// String implements the Stringer interface.
func (p *PublicKey) String() string {
	if p.IsInfinity() {
		return "00"
	}
	bx := hex.EncodeToString(p.X.Bytes())
	by := hex.EncodeToString(p.Y.Bytes())
	return fmt.Sprintf("%s%s", bx, by)
}
