// Package runtime provides the execution context native contract logic
// runs in. All chain state access goes through the Ledger interface, which
// keeps the contract functions pure and independently testable.
package runtime

import (
	"math/big"

	"github.com/vela-chain/vela-go/pkg/core/state"
	"github.com/vela-chain/vela-go/pkg/util"
	"go.uber.org/zap"
)

// Ledger is the chain/state surface the block-production rules execute
// against. It's implemented by the chain runtime; consensus logic only ever
// reads through it (Transfer being the single state-changing call, executed
// by the ledger itself).
type Ledger interface {
	// GetGovernanceValue returns the value of a named governance
	// parameter and whether it is set.
	GetGovernanceValue(name string) (int64, bool)
	// CurrentTime returns the chain time, seconds since the epoch. It
	// must stay fixed for the duration of one block open/close pair.
	CurrentTime() uint32
	// GenesisTime returns the timestamp of the genesis block.
	GenesisTime() uint32
	// GenesisAddress returns the address that bootstrapped the nexus.
	GenesisAddress() util.Uint160
	// Validators returns the ordered validator list, statuses included.
	Validators() []state.Validator
	// ActiveValidatorCount returns the number of validators in the
	// Active status.
	ActiveValidatorCount() int
	// IsKnownValidator tells whether the address is present in the
	// validator list, whatever its status.
	IsKnownValidator(addr util.Uint160) bool
	// LastBlock returns the most recently produced block or nil if the
	// chain has never produced one.
	LastBlock() *state.BlockInfo
	// IsRootChain tells whether the currently executing chain is the
	// nexus root chain.
	IsRootChain() bool
	// BalanceOf returns the token balance of the given address.
	BalanceOf(symbol string, addr util.Uint160) *big.Int
	// Transfer moves tokens between addresses, it's the ledger that
	// applies (or refuses) the state change.
	Transfer(symbol string, from, to util.Uint160, amount *big.Int) error
	// CheckWitness tells whether the current invocation was authorized
	// by the given address's signature.
	CheckWitness(addr util.Uint160) bool
}

// Context represents the context contract logic is executed in.
type Context struct {
	Chain         Ledger
	Notifications []state.NotificationEvent
	Log           *zap.Logger
}

// NewContext returns a new execution context with an empty notification
// set.
func NewContext(chain Ledger, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Chain:         chain,
		Notifications: []state.NotificationEvent{},
		Log:           log,
	}
}

// Notify appends an event to the context. Events only become visible once
// the enclosing operation succeeds; rolling them back on failure is the
// execution context's job.
func (ic *Context) Notify(kind state.EventKind, addr util.Uint160, payload []byte) {
	ic.Notifications = append(ic.Notifications, state.NotificationEvent{
		Kind:    kind,
		Address: addr,
		Payload: payload,
	})
}
