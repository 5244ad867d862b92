package vaa

import (
	"time"

	"github.com/wormhole-foundation/vaa/payload"
	"github.com/wormhole-foundation/vaa/types"
)

// GovernanceEmitter is the emitter of governance VAAs: address 4 on Solana.
var GovernanceEmitter = types.MustStringToAddress("04")

// GovernanceChain is the emitter chain of governance VAAs.
const GovernanceChain = types.ChainIDSolana

// Builder builds unsigned VAAs.
type Builder struct {
	vaa     VAA
	payload payload.Payload
}

// NewBuilder creates a Builder for an envelope of the current version with unix timestamp 1.
func NewBuilder() *Builder {
	return &Builder{
		vaa: VAA{
			Version:   SupportedVAAVersion,
			Timestamp: time.Unix(1, 0).UTC(),
		},
	}
}

// NewGovernanceBuilder creates a Builder preset with the governance emitter, nonce 1 and
// consistency level 0.
func NewGovernanceBuilder() *Builder {
	return NewBuilder().
		SetEmitter(GovernanceChain, GovernanceEmitter).
		SetNonce(1)
}

// SetGuardianSetIndex sets the guardian set the VAA will be signed by.
func (b *Builder) SetGuardianSetIndex(index uint32) *Builder {
	b.vaa.GuardianSetIndex = index
	return b
}

// SetTimestamp sets the timestamp, truncated to seconds.
func (b *Builder) SetTimestamp(ts time.Time) *Builder {
	b.vaa.Timestamp = ts.Truncate(time.Second).UTC()
	return b
}

// SetNonce sets the nonce.
func (b *Builder) SetNonce(nonce uint32) *Builder {
	b.vaa.Nonce = nonce
	return b
}

// SetSequence sets the sequence.
func (b *Builder) SetSequence(sequence uint64) *Builder {
	b.vaa.Sequence = sequence
	return b
}

// SetConsistencyLevel sets the consistency level.
func (b *Builder) SetConsistencyLevel(level uint8) *Builder {
	b.vaa.ConsistencyLevel = level
	return b
}

// SetEmitter sets the emitter chain and address.
func (b *Builder) SetEmitter(chain types.ChainID, address types.Address) *Builder {
	b.vaa.EmitterChain = chain
	b.vaa.EmitterAddress = address

	return b
}

// SetPayload sets the payload to encode into the VAA.
func (b *Builder) SetPayload(p payload.Payload) *Builder {
	b.payload = p
	return b
}

// Build encodes the payload, validates and returns the constructed VAA.
func (b *Builder) Build() (*VAA, error) {
	v := b.vaa.Clone()
	if b.payload != nil {
		raw, err := payload.Encode(b.payload)
		if err != nil {
			return nil, err
		}
		v.Payload = raw
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}

	return v, nil
}

// BuildSigned builds the VAA and signs it with signers, signers[i] being guardian i.
func (b *Builder) BuildSigned(signers []Signer) (*VAA, error) {
	v, err := b.Build()
	if err != nil {
		return nil, err
	}

	sigs, err := Sign(v, signers)
	if err != nil {
		return nil, err
	}
	v.Signatures = sigs

	return v, nil
}
