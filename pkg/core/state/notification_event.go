package state

import (
	"github.com/vela-chain/vela-go/pkg/io"
	"github.com/vela-chain/vela-go/pkg/util"
)

// EventKind is the type tag of a notification emitted by contract logic.
type EventKind byte

// Notification kinds emitted by the block contract.
const (
	// EventBlockCreate is emitted when a validator opens a block.
	EventBlockCreate EventKind = 1
	// EventBlockClose is emitted when a validator closes a block.
	EventBlockClose EventKind = 2
	// EventTokenReceive is emitted for every successful fee payout.
	EventTokenReceive EventKind = 3
)

// String implements the stringer interface.
func (k EventKind) String() string {
	switch k {
	case EventBlockCreate:
		return "BlockCreate"
	case EventBlockClose:
		return "BlockClose"
	case EventTokenReceive:
		return "TokenReceive"
	default:
		return "Unknown"
	}
}

// NotificationEvent is a tuple of the event kind, the address the event
// relates to and kind-specific payload bytes. Events are collected by the
// execution context, this core only appends them.
type NotificationEvent struct {
	Kind    EventKind
	Address util.Uint160
	Payload []byte
}

// DecodeBinary implements the io.Serializable interface.
func (ne *NotificationEvent) DecodeBinary(r *io.BinReader) {
	ne.Kind = EventKind(r.ReadB())
	r.ReadBytes(ne.Address[:])
	ne.Payload = r.ReadVarBytes()
}

// EncodeBinary implements the io.Serializable interface.
func (ne *NotificationEvent) EncodeBinary(w *io.BinWriter) {
	w.WriteB(byte(ne.Kind))
	w.WriteBytes(ne.Address[:])
	w.WriteVarBytes(ne.Payload)
}
