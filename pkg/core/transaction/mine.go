package transaction

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// MaxDifficulty is the highest proof-of-work target that can be requested,
// it matches the bit length of the transaction hash.
const MaxDifficulty = 256

var (
	// ErrInvalidDifficulty is returned by Mine for a target outside of
	// [0, MaxDifficulty].
	ErrInvalidDifficulty = errors.New("difficulty out of range")
	// ErrMiningExhausted is returned by Mine when the whole 32-bit nonce
	// space was searched without reaching the target.
	ErrMiningExhausted = errors.New("mining nonce space exhausted")
)

// Mine searches for a payload nonce that makes the transaction hash meet
// the given difficulty target (see util.Uint256.LeadingZeroBits for the
// scoring). The payload is treated as a 4-byte little-endian counter and
// the hash is recomputed on every attempt. Mining must happen before
// signing since it changes the signed surface; a zero target is a no-op.
// On exhaustion the payload is left at the last attempted nonce, but the
// call fails.
func (t *Transaction) Mine(difficulty int) error {
	if difficulty < 0 || difficulty > MaxDifficulty {
		return ErrInvalidDifficulty
	}
	if len(t.Signatures) > 0 {
		return ErrAlreadySigned
	}
	if difficulty == 0 {
		return nil
	}

	t.Payload = make([]byte, 4)
	for nonce := uint32(0); ; {
		nonce++
		binary.LittleEndian.PutUint32(t.Payload, nonce)
		if err := t.rehash(); err != nil {
			return err
		}
		if t.hash.LeadingZeroBits() >= difficulty {
			return nil
		}
		if nonce == math.MaxUint32 {
			return ErrMiningExhausted
		}
	}
}
