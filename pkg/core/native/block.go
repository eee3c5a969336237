// Package native implements the consensus rules that gate block
// production: deterministic validator rotation over fixed time slots and
// the open/close block lifecycle with fee distribution.
package native

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/vela-chain/vela-go/pkg/core/runtime"
	"github.com/vela-chain/vela-go/pkg/core/state"
	"github.com/vela-chain/vela-go/pkg/crypto/hash"
	"github.com/vela-chain/vela-go/pkg/encoding/bigint"
	"github.com/vela-chain/vela-go/pkg/util"
	"go.uber.org/zap"
)

const (
	// blockContractName seeds the contract's fee-pool address.
	blockContractName = "block"

	// FuelSymbol is the token block fees are collected and paid out in.
	FuelSymbol = "GAS"

	// SlotDurationKey is the governance parameter holding the length of
	// a validator rotation slot in seconds.
	SlotDurationKey = "validator.rotation.time"

	// defaultSlotDuration is used when governance has no slot value yet
	// (bootstrap).
	defaultSlotDuration = 120
)

// Errors returned by the block lifecycle operations.
var (
	// ErrWitnessFailed means the caller didn't sign the transaction
	// driving the call.
	ErrWitnessFailed = errors.New("caller witness check failed")
	// ErrNotRootChain means a bootstrap block was attempted outside of
	// the nexus root chain.
	ErrNotRootChain = errors.New("genesis block requires the root chain")
	// ErrUnknownValidator means the caller is not in the validator list.
	ErrUnknownValidator = errors.New("caller is not a validator")
	// ErrWrongValidator means the caller is not the validator of the
	// current time slot.
	ErrWrongValidator = errors.New("not the current validator")
	// ErrNoActiveValidators means the close was attempted with an empty
	// active validator set.
	ErrNoActiveValidators = errors.New("no active validators")
	// ErrInsufficientFees means the collected fees can't be meaningfully
	// split between the active validators.
	ErrInsufficientFees = errors.New("insufficient fees to distribute")
	// ErrNoPayouts means every single fee transfer failed.
	ErrNoPayouts = errors.New("no validator could be paid")
)

// Block is the native contract owning the block open/close rules. Its
// address holds the accumulated block fees.
type Block struct {
	// Address of the contract, the fee pool.
	Address util.Uint160
}

// NewBlock returns the block native contract.
func NewBlock() *Block {
	return &Block{
		Address: hash.Hash160([]byte(blockContractName)),
	}
}

// slotDuration reads the governance slot length, falling back to the
// bootstrap default. The result is always positive.
func slotDuration(chain runtime.Ledger) int64 {
	d, ok := chain.GetGovernanceValue(SlotDurationKey)
	if !ok || d < 1 {
		return defaultSlotDuration
	}
	return d
}

// CurrentValidator returns the validator authorized to act in the current
// time slot. It's a deterministic function of the last block (or genesis
// for a fresh chain), the governance slot duration and the validator list,
// and it never fails: with no suitable validator found it falls back to
// the genesis address.
func (b *Block) CurrentValidator(ic *runtime.Context) util.Uint160 {
	chain := ic.Chain
	slot := slotDuration(chain)

	var (
		baseTime      int64
		baseValidator util.Uint160
	)
	if last := chain.LastBlock(); last != nil {
		baseTime = int64(last.Timestamp)
		baseValidator = last.Validator
	} else {
		baseTime = int64(chain.GenesisTime())
		if vals := chain.Validators(); len(vals) > 0 {
			baseValidator = vals[0].Address
		}
	}
	baseTime -= baseTime % slot

	elapsed := int64(chain.CurrentTime()) - baseTime
	if elapsed < slot {
		// Still inside the baseline validator's slot.
		return baseValidator
	}

	if active := chain.ActiveValidatorCount(); active > 0 {
		vals := chain.Validators()
		if n := len(vals); n > 0 {
			offset := int((elapsed / slot) % int64(active))
			for i := 0; i < n; i++ {
				v := vals[(offset+i)%n]
				if v.IsActive() && !v.Address.IsZero() {
					return v.Address
				}
			}
		}
	}
	return chain.GenesisAddress()
}

// OpenBlock checks that from may open a block at the current moment and
// emits the block-open event. On a chain with no active validators yet
// (nexus bootstrap) opening is only allowed on the root chain; otherwise
// the caller must be the validator of the current slot.
func (b *Block) OpenBlock(ic *runtime.Context, from util.Uint160) error {
	if !ic.Chain.CheckWitness(from) {
		return ErrWitnessFailed
	}

	if ic.Chain.ActiveValidatorCount() == 0 {
		if !ic.Chain.IsRootChain() {
			return ErrNotRootChain
		}
	} else {
		if !ic.Chain.IsKnownValidator(from) {
			return ErrUnknownValidator
		}
		if expected := b.CurrentValidator(ic); !from.Equals(expected) {
			return errors.Wrapf(ErrWrongValidator, "expected %s", expected.StringLE())
		}
	}

	ic.Notify(state.EventBlockCreate, from, nil)
	return nil
}

// CloseBlock checks that from may close the block and distributes the
// accumulated fees between the active validators: every validator gets
// floor(balance/activeCount) of the fuel token. Individual transfer
// failures are tolerated, the close only fails if nobody could be paid.
func (b *Block) CloseBlock(ic *runtime.Context, from util.Uint160) error {
	if expected := b.CurrentValidator(ic); !from.Equals(expected) {
		return errors.Wrapf(ErrWrongValidator, "expected %s", expected.StringLE())
	}
	if !ic.Chain.CheckWitness(from) {
		return ErrWitnessFailed
	}

	active := ic.Chain.ActiveValidatorCount()
	if active <= 0 {
		return ErrNoActiveValidators
	}

	balance := ic.Chain.BalanceOf(FuelSymbol, b.Address)
	amount := new(big.Int).Div(balance, big.NewInt(int64(active)))
	if amount.Sign() <= 0 {
		return ErrInsufficientFees
	}

	ic.Notify(state.EventBlockClose, from, nil)

	var paid int
	for _, v := range ic.Chain.Validators() {
		if !v.IsActive() {
			continue
		}
		if err := ic.Chain.Transfer(FuelSymbol, b.Address, v.Address, amount); err != nil {
			ic.Log.Warn("validator fee payout failed",
				zap.String("validator", v.Address.StringLE()),
				zap.String("amount", amount.String()),
				zap.Error(err))
			continue
		}
		ic.Notify(state.EventTokenReceive, v.Address, bigint.ToBytes(amount))
		paid++
	}
	if paid == 0 {
		return ErrNoPayouts
	}
	return nil
}
