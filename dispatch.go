package vaa

import (
	"context"
	"sync"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/sdk"
	"github.com/wormhole-foundation/vaa/types"
)

// ResolveTarget picks the chain a payload is delivered to. The chain named by the payload and the
// override must agree when both are present. When neither is present the target is ambiguous; no
// chain is ever assumed.
func ResolveTarget(p payload.Payload, override *types.ChainID) (types.ChainID, error) {
	chain, named := p.TargetChain()

	switch {
	case named && override != nil:
		if chain != *override {
			return types.ChainIDUnset, NewChainMismatchError(chain, *override)
		}

		return chain, nil
	case named:
		return chain, nil
	case override != nil:
		return *override, nil
	default:
		return types.ChainIDUnset, ErrAmbiguousTarget
	}
}

// Dispatcher routes decoded VAAs to the submitter of their target chain.
type Dispatcher struct {
	mu         sync.RWMutex
	submitters map[types.ChainID]sdk.Submitter
}

// NewDispatcher creates a Dispatcher with no submitters.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{submitters: make(map[types.ChainID]sdk.Submitter)}
}

// Register sets the submitter for chain, replacing any previous one.
func (d *Dispatcher) Register(chain types.ChainID, submitter sdk.Submitter) *Dispatcher {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.submitters[chain] = submitter

	return d
}

// Dispatch resolves the target chain of m and submits raw to it once. raw must be the encoding of
// m. Failures of the submitter are returned as *SubmitError and are not retried.
func (d *Dispatcher) Dispatch(ctx context.Context, m *Message, raw []byte, override *types.ChainID) (types.TransactionResult, error) {
	chain, err := ResolveTarget(m.Payload, override)
	if err != nil {
		return types.TransactionResult{}, err
	}

	d.mu.RLock()
	submitter, ok := d.submitters[chain]
	d.mu.RUnlock()
	if !ok {
		return types.TransactionResult{}, NewSubmitterNotFoundError(chain)
	}

	sdk.LoggerFrom(ctx).Infof("Submitting %s %s VAA %s to %s",
		m.Payload.Module(), m.Payload.Type(), m.VAA.MessageID(), chain)

	res, err := submitter.Submit(ctx, chain, m.Payload, raw)
	if err != nil {
		return types.TransactionResult{}, NewSubmitError(chain, err)
	}

	return res, nil
}
