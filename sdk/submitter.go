package sdk

import (
	"context"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/types"
)

// Submitter delivers a VAA to the contracts of one chain.
//
// This must be implemented by any chain family that VAAs can be dispatched to.
type Submitter interface {
	// Submit sends raw, the signed VAA, to the contract that handles p on chain. p is the decoded
	// payload of raw. Implementations must not retry.
	Submit(ctx context.Context, chain types.ChainID, p payload.Payload, raw []byte) (types.TransactionResult, error)
}
