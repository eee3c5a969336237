package state

import (
	"github.com/vela-chain/vela-go/pkg/io"
	"github.com/vela-chain/vela-go/pkg/util"
)

// ValidatorStatus is the lifecycle state of a validator entry.
type ValidatorStatus byte

// Possible validator statuses.
const (
	// ValidatorInvalid is a zero status, it marks an unusable entry.
	ValidatorInvalid ValidatorStatus = iota
	// ValidatorActive is a validator eligible to produce blocks and
	// receive fee payouts.
	ValidatorActive
	// ValidatorInactive is a validator that's known, but currently out of
	// rotation (demoted or on hold).
	ValidatorInactive
)

// String implements the stringer interface.
func (s ValidatorStatus) String() string {
	switch s {
	case ValidatorActive:
		return "Active"
	case ValidatorInactive:
		return "Inactive"
	default:
		return "Invalid"
	}
}

// Validator is a block producer entry as seen by the consensus rules. It's
// owned and mutated by the chain state layer, this package only reads it.
type Validator struct {
	Address util.Uint160
	Status  ValidatorStatus
}

// IsActive tells whether the validator may currently produce blocks.
func (v *Validator) IsActive() bool {
	return v.Status == ValidatorActive
}

// DecodeBinary implements the io.Serializable interface.
func (v *Validator) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(v.Address[:])
	v.Status = ValidatorStatus(r.ReadB())
}

// EncodeBinary implements the io.Serializable interface.
func (v *Validator) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(v.Address[:])
	w.WriteB(byte(v.Status))
}
