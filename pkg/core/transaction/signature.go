package transaction

import (
	"crypto/elliptic"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
	"github.com/vela-chain/vela-go/pkg/crypto/keys"
	"github.com/vela-chain/vela-go/pkg/io"
	"github.com/vela-chain/vela-go/pkg/util"
)

// SignatureKind is a signature scheme tag carried on the wire in front of
// every signature record.
type SignatureKind byte

// Supported signature schemes.
const (
	// SignatureECDSAP256 is an ECDSA signature over the NIST P-256 curve.
	SignatureECDSAP256 SignatureKind = 1
	// SignatureECDSASecp256k1 is an ECDSA signature over the secp256k1
	// curve.
	SignatureECDSASecp256k1 SignatureKind = 2
)

const (
	// signatureLen is the length of the r||s representation on either
	// supported curve.
	signatureLen = 64
	// keyMaxSize is the maximum serialized public key length
	// (an uncompressed point).
	keyMaxSize = 65
)

// ErrInvalidSignature is returned when a malformed signature record is
// attached to a transaction.
var ErrInvalidSignature = errors.New("invalid signature")

// Signature is a single signature record attached to a transaction. It
// carries the signing scheme and the public key, so that the signer address
// can be recovered without any extra context.
type Signature struct {
	Kind      SignatureKind
	PublicKey *keys.PublicKey
	Data      []byte
}

// curveForKind resolves a wire scheme tag into the curve keys live on.
func curveForKind(kind SignatureKind) (elliptic.Curve, error) {
	switch kind {
	case SignatureECDSAP256:
		return elliptic.P256(), nil
	case SignatureECDSASecp256k1:
		return btcec.S256(), nil
	default:
		return nil, errors.Errorf("unknown signature scheme %d", kind)
	}
}

// kindForCurve is the reverse of curveForKind, used when producing
// signatures from a private key.
func kindForCurve(curve elliptic.Curve) (SignatureKind, error) {
	switch curve {
	case elliptic.P256():
		return SignatureECDSAP256, nil
	case btcec.S256():
		return SignatureECDSASecp256k1, nil
	default:
		return 0, errors.Errorf("unsupported curve %s", curve.Params().Name)
	}
}

// isValid performs a shape check of the record, it doesn't verify
// authorship.
func (s *Signature) isValid() bool {
	if s.PublicKey == nil || s.PublicKey.IsInfinity() {
		return false
	}
	if len(s.Data) != signatureLen {
		return false
	}
	_, err := curveForKind(s.Kind)
	return err == nil
}

// Verify checks the record against the given message.
func (s *Signature) Verify(message []byte) bool {
	if !s.isValid() {
		return false
	}
	digest := sha256.Sum256(message)
	return s.PublicKey.Verify(s.Data, digest[:])
}

// Address returns the script hash of the signing key.
func (s *Signature) Address() util.Uint160 {
	return s.PublicKey.GetScriptHash()
}

// DecodeBinary implements the io.Serializable interface.
func (s *Signature) DecodeBinary(r *io.BinReader) {
	s.Kind = SignatureKind(r.ReadB())
	if r.Err != nil {
		return
	}
	curve, err := curveForKind(s.Kind)
	if err != nil {
		r.Err = err
		return
	}

	b := r.ReadVarBytes(keyMaxSize)
	if r.Err != nil {
		return
	}
	s.PublicKey, r.Err = keys.NewPublicKeyFromBytes(b, curve)
	if r.Err != nil {
		return
	}

	s.Data = r.ReadVarBytes(signatureLen)
	if r.Err == nil && len(s.Data) != signatureLen {
		r.Err = errors.Errorf("truncated signature data (%d bytes)", len(s.Data))
	}
}

// EncodeBinary implements the io.Serializable interface.
func (s *Signature) EncodeBinary(w *io.BinWriter) {
	w.WriteB(byte(s.Kind))
	w.WriteVarBytes(s.PublicKey.Bytes())
	w.WriteVarBytes(s.Data)
}
