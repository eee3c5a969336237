package transaction

import (
	"bytes"
	"compress/gzip"
	stdio "io"

	"github.com/pkg/errors"
	"github.com/vela-chain/vela-go/pkg/crypto/hash"
	"github.com/vela-chain/vela-go/pkg/crypto/keys"
	"github.com/vela-chain/vela-go/pkg/io"
	"github.com/vela-chain/vela-go/pkg/util"
)

// MaxScriptLength is the maximum length of the invocation script.
const MaxScriptLength = 1 << 20

// MaxSignatures is the maximum number of signature records a transaction
// can carry on the wire.
const MaxSignatures = 1024

var (
	// ErrEmptyScript is returned on an attempt to create a transaction
	// with no invocation script.
	ErrEmptyScript = errors.New("transaction script is empty")
	// ErrAlreadySigned is returned by Mine when the transaction carries
	// signatures already (mining would invalidate them).
	ErrAlreadySigned = errors.New("transaction already has signatures")
)

// Transaction is a single unit of work submitted to a chain: an invocation
// script bound to a target nexus/chain pair with an expiration time. It's
// identified by the SHA-256 digest of its signed surface and is considered
// immutable once signed.
type Transaction struct {
	// NexusName is the network namespace the transaction targets.
	NexusName string
	// ChainName is the ledger within the nexus the transaction targets.
	ChainName string
	// Script is the invocation bytecode, never empty.
	Script []byte
	// Expiration is the timestamp (seconds since the epoch) beyond which
	// the transaction is void.
	Expiration uint32
	// Payload is free-form data outside of the compressed envelope. The
	// miner repurposes it as a little-endian nonce counter.
	Payload []byte
	// Signatures attached to the transaction, in attachment order.
	Signatures []Signature

	hash util.Uint256
}

// New returns a new unsigned transaction and computes its initial hash.
func New(nexus string, chain string, script []byte, expiration uint32) (*Transaction, error) {
	if len(script) == 0 {
		return nil, ErrEmptyScript
	}
	t := &Transaction{
		NexusName:  nexus,
		ChainName:  chain,
		Script:     script,
		Expiration: expiration,
		Payload:    []byte{},
		Signatures: []Signature{},
	}
	if err := t.rehash(); err != nil {
		return nil, err
	}
	return t, nil
}

// Hash returns the content identifier of the transaction. It covers
// everything but the signatures, so attaching a signature never changes it,
// while mining (which mutates Payload) does.
func (t *Transaction) Hash() util.Uint256 {
	return t.hash
}

// IsValidFor checks that the transaction is bound to the given
// nexus/chain pair. No cryptography is involved, it's a pure equality
// check.
func (t *Transaction) IsValidFor(nexus string, chain string) bool {
	return t.NexusName == nexus && t.ChainName == chain
}

// writeUnsigned emits the pre-signature fields in wire order. This exact
// sequence, with the payload appended, is what gets hashed and signed.
func (t *Transaction) writeUnsigned(w *io.BinWriter) {
	w.WriteString(t.NexusName)
	w.WriteString(t.ChainName)
	w.WriteVarBytes(t.Script)
	w.WriteU32LE(t.Expiration)
}

// signedData returns the preimage used both for hashing and for signature
// generation. Signatures are never part of it.
func (t *Transaction) signedData() ([]byte, error) {
	buf := io.NewBufBinWriter()
	t.writeUnsigned(buf.BinWriter)
	buf.WriteVarBytes(t.Payload)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

// rehash recomputes the cached content hash, it must be called after every
// payload mutation.
func (t *Transaction) rehash() error {
	data, err := t.signedData()
	if err != nil {
		return err
	}
	t.hash = hash.Sha256(data)
	return nil
}

// Sign computes a signature over the transaction's signed surface with the
// given key and appends it to Signatures. Signing the same transaction with
// the same key twice produces two records, no deduplication is done.
func (t *Transaction) Sign(priv *keys.PrivateKey) error {
	kind, err := kindForCurve(priv.Curve)
	if err != nil {
		return err
	}
	data, err := t.signedData()
	if err != nil {
		return err
	}
	t.Signatures = append(t.Signatures, Signature{
		Kind:      kind,
		PublicKey: priv.PublicKey(),
		Data:      priv.Sign(data),
	})
	return nil
}

// AttachSignature appends an externally produced signature record. Only the
// shape of the record is checked, authorship is verified later via
// IsSignedBy.
func (t *Transaction) AttachSignature(sig Signature) error {
	if !sig.isValid() {
		return ErrInvalidSignature
	}
	t.Signatures = append(t.Signatures, sig)
	return nil
}

// IsSignedBy returns true iff at least one attached signature verifies
// against the transaction's signed surface for at least one of the given
// addresses. It's an any-of check, not a threshold one, and it's false for
// a transaction with no signatures at all.
func (t *Transaction) IsSignedBy(addrs ...util.Uint160) bool {
	if len(t.Signatures) == 0 || len(addrs) == 0 {
		return false
	}
	data, err := t.signedData()
	if err != nil {
		return false
	}
	for i := range t.Signatures {
		sig := &t.Signatures[i]
		if sig.PublicKey == nil {
			continue
		}
		signer := sig.Address()
		for _, addr := range addrs {
			if signer.Equals(addr) && sig.Verify(data) {
				return true
			}
		}
	}
	return false
}

// encodeEnvelope writes the full wire format: a varint with the
// uncompressed body length, the gzip-compressed body (pre-signature fields
// plus, optionally, the signature section) and the raw payload travelling
// outside of the compressed envelope.
func (t *Transaction) encodeEnvelope(w *io.BinWriter, withSignatures bool) {
	body := io.NewBufBinWriter()
	t.writeUnsigned(body.BinWriter)
	if withSignatures {
		body.WriteVarUint(uint64(len(t.Signatures)))
		for i := range t.Signatures {
			t.Signatures[i].EncodeBinary(body.BinWriter)
		}
	}
	if body.Err != nil {
		w.Err = body.Err
		return
	}
	raw := body.Bytes()

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(raw); err != nil {
		w.Err = err
		return
	}
	if err := zw.Close(); err != nil {
		w.Err = err
		return
	}

	w.WriteVarUint(uint64(len(raw)))
	w.WriteVarBytes(compressed.Bytes())
	w.WriteVarBytes(t.Payload)
}

// EncodeBinary implements the io.Serializable interface, serializing the
// transaction together with its signatures.
func (t *Transaction) EncodeBinary(w *io.BinWriter) {
	t.encodeEnvelope(w, true)
}

// DecodeBinary implements the io.Serializable interface.
//
// Decoding is deliberately lenient about the signature section: if the
// signature count or any record fails to parse (truncation, an unknown
// scheme), the transaction is decoded with zero signatures instead of
// failing. Callers that require signed transactions must check Signatures
// after decoding. Similarly, a body inflating past the declared length is
// clamped to that length rather than rejected: decompression stops at the
// declared byte count, so an over-expanding blob never gets materialized.
func (t *Transaction) DecodeBinary(r *io.BinReader) {
	declared := r.ReadVarUint()
	compressed := r.ReadVarBytes()
	payload := r.ReadVarBytes()
	if r.Err != nil {
		return
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		r.Err = errors.Wrap(err, "bad compressed body")
		return
	}
	limit := declared
	if limit > io.MaxArraySize {
		limit = io.MaxArraySize
	}
	raw, err := stdio.ReadAll(stdio.LimitReader(zr, int64(limit)))
	if err != nil {
		r.Err = errors.Wrap(err, "bad compressed body")
		return
	}

	body := io.NewBinReaderFromBuf(raw)
	t.NexusName = body.ReadString()
	t.ChainName = body.ReadString()
	t.Script = body.ReadVarBytes(MaxScriptLength)
	t.Expiration = body.ReadU32LE()
	if body.Err != nil {
		r.Err = body.Err
		return
	}
	t.Payload = payload
	t.Signatures = t.decodeSignatures(body)

	r.Err = t.rehash()
}

// decodeSignatures parses the optional signature section, falling back to
// an empty set on any parse failure.
func (t *Transaction) decodeSignatures(body *io.BinReader) []Signature {
	count := body.ReadVarUint()
	if body.Err != nil || count > MaxSignatures {
		return []Signature{}
	}
	sigs := make([]Signature, 0, count)
	for i := uint64(0); i < count; i++ {
		var sig Signature
		sig.DecodeBinary(body)
		if body.Err != nil {
			return []Signature{}
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

// Bytes returns the wire representation of the transaction with the
// signature section included.
func (t *Transaction) Bytes() ([]byte, error) {
	return t.bytes(true)
}

// UnsignedBytes returns the wire representation of the transaction without
// the signature section.
func (t *Transaction) UnsignedBytes() ([]byte, error) {
	return t.bytes(false)
}

func (t *Transaction) bytes(withSignatures bool) ([]byte, error) {
	buf := io.NewBufBinWriter()
	t.encodeEnvelope(buf.BinWriter, withSignatures)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Bytes(), nil
}

// NewTransactionFromBytes decodes a transaction from the given wire bytes.
func NewTransactionFromBytes(b []byte) (*Transaction, error) {
	t := &Transaction{}
	r := io.NewBinReaderFromBuf(b)
	t.DecodeBinary(r)
	if r.Err != nil {
		return nil, r.Err
	}
	if r.ReadB(); r.Err == nil {
		return nil, errors.New("additional data after the transaction")
	}
	return t, nil
}
