package state

import (
	"github.com/vela-chain/vela-go/pkg/util"
)

// BlockInfo is the slice of produced-block state the consensus rules need:
// when the block was made and who made it.
type BlockInfo struct {
	// Timestamp of the block, seconds since the epoch.
	Timestamp uint32
	// Validator that produced the block.
	Validator util.Uint160
	// Height of the block.
	Height uint64
}
